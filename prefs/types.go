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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/govita/govita/curated"
)

// Sentinel errors.
const (
	CannotConvert = "prefs: cannot convert %T to %s"
	CannotParse   = "prefs: cannot parse %q as %s: %v"
)

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by every type in the prefs system.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Hook is a function called when a value is set.
type Hook func(value Value) error

// the storage and hooks common to every preference type
type live[T any] struct {
	value    atomic.Value
	hookPre  Hook
	hookPost Hook
}

func (p *live[T]) load() T {
	if v, ok := p.value.Load().(T); ok {
		return v
	}
	var zero T
	return zero
}

func (p *live[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// SetHookPre sets the function called before the value is stored. The value
// is not stored if the function returns an error. The function is called
// even if the value has not changed.
func (p *live[T]) SetHookPre(f Hook) {
	p.hookPre = f
}

// SetHookPost sets the function called after the value is stored. The
// function is called even if the value has not changed.
func (p *live[T]) SetHookPost(f Hook) {
	p.hookPost = f
}

// Bool is a boolean preference.
type Bool struct {
	live[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set accepts a bool or a string. The strings "true", "on", "yes" and "1"
// (in any case) are true. Anything else is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "yes", "1":
			return p.store(true)
		}
		return p.store(false)
	}
	return curated.Errorf(CannotConvert, v, "prefs.Bool")
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int is an integer preference.
type Int struct {
	live[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set accepts any signed integer type or a string. Strings can be in any base
// recognised by strconv.ParseInt() with a base of zero.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 0)
		if err != nil {
			return curated.Errorf(CannotParse, v, "prefs.Int", err)
		}
		return p.store(int(n))
	}
	return curated.Errorf(CannotConvert, v, "prefs.Int")
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float is a floating point preference.
type Float struct {
	live[float64]
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.load())
}

// Set accepts float64, float32, int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(v)
	case float32:
		return p.store(float64(v))
	case int:
		return p.store(float64(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(CannotParse, v, "prefs.Float", err)
		}
		return p.store(f)
	}
	return curated.Errorf(CannotConvert, v, "prefs.Float")
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// Reset sets the value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String is a string preference with an optional maximum length.
type String struct {
	live[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen sets the maximum length of the string. A value of zero or less
// means no limit. The current value is cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set accepts any value. Values that are not strings are formatted with the
// %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
