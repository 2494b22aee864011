// This file is part of govita.
//
// govita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// govita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with govita.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"errors"
	"testing"

	"github.com/govita/govita/curated"
	"github.com/govita/govita/prefs"
	"github.com/govita/govita/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality[prefs.Value](t, v.Get(), true)
	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality[prefs.Value](t, v.Get(), false)
	test.ExpectSuccess(t, v.Set(" On "))
	test.ExpectEquality(t, v.String(), "true")

	err := v.Set(1.5)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "false")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality[prefs.Value](t, v.Get(), 10)
	test.ExpectSuccess(t, v.Set("0x100"))
	test.ExpectEquality[prefs.Value](t, v.Get(), 256)
	test.ExpectSuccess(t, v.Set(int64(-3)))
	test.ExpectEquality(t, v.String(), "-3")

	err := v.Set("ten")
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotParse))
	test.ExpectEquality(t, v.String(), "-3")

	err = v.Set(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")

	test.ExpectSuccess(t, v.Set("1.25"))
	test.ExpectEquality[prefs.Value](t, v.Get(), 1.25)
	test.ExpectSuccess(t, v.Set(float32(0.5)))
	test.ExpectEquality(t, v.String(), "0.500")
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality[prefs.Value](t, v.Get(), 2.0)

	err := v.Set("x")
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotParse))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("hello world"))
	test.ExpectEquality(t, v.String(), "hello world")

	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")

	test.ExpectSuccess(t, v.Set(123456))
	test.ExpectEquality(t, v.String(), "12345")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post []int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = append(post, value.(int))
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.String(), "5")

	// post hook is called even if the value hasn't changed
	test.ExpectSuccess(t, v.Set("5"))
	test.ExpectEquality(t, len(post), 2)

	var _ prefs.Pref = &v
}
