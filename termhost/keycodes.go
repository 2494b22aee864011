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

package termhost

import (
	"github.com/govita/govita/userinput"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeySpace          = 32
	KeyDelete         = 127
)

// Translate a byte read from the terminal into a host event. The bool is
// false if the byte has no meaning.
func Translate(b byte) (userinput.Event, bool) {
	switch b {
	case 'q', 'Q', KeyInterrupt:
		return userinput.EventQuit{}, true
	case KeyTab:
		return keyDown("tab"), true
	case KeyCarriageReturn:
		return keyDown("return"), true
	case KeyEsc:
		return keyDown("escape"), true
	case KeySpace:
		return keyDown("space"), true
	case KeyDelete:
		return keyDown("backspace"), true
	}

	switch {
	case b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return keyDown(string(b)), true
	case b >= 'A' && b <= 'Z':
		ev := keyDown(string(b - 'A' + 'a'))
		ev.Mod = userinput.KeyModShift
		return ev, true
	}

	return nil, false
}

// terminals do not report key releases
func keyDown(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: true}
}
