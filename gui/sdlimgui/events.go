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

package sdlimgui

import (
	"strings"

	"github.com/govita/govita/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// keyName returns the name of the key in the form used by
// userinput.EventKeyboard.
func keyName(sym sdl.Keycode) string {
	switch {
	case sym >= 'a' && sym <= 'z':
		return string(rune(sym))
	case sym >= '0' && sym <= '9':
		return string(rune(sym))
	}

	switch sym {
	case sdl.K_ESCAPE:
		return "escape"
	case sdl.K_RETURN:
		return "return"
	case sdl.K_TAB:
		return "tab"
	case sdl.K_SPACE:
		return "space"
	case sdl.K_BACKSPACE:
		return "backspace"
	}

	return strings.ToLower(sdl.GetKeyName(sym))
}

func keyMod(mod uint16) userinput.KeyMod {
	switch {
	case mod&sdl.KMOD_CTRL != 0:
		return userinput.KeyModCtrl
	case mod&sdl.KMOD_ALT != 0:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_SHIFT != 0:
		return userinput.KeyModShift
	}
	return userinput.KeyModNone
}

// translate converts an SDL event to a userinput event. Returns false if the
// event has no userinput equivalent.
//
// Window resize events carry the window size. The caller should replace it
// with the drawable size if the two differ.
func translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}, true

	case *sdl.KeyboardEvent:
		if ev.Type != sdl.KEYDOWN && ev.Type != sdl.KEYUP {
			return nil, false
		}
		return userinput.EventKeyboard{
			Key:    keyName(ev.Keysym.Sym),
			Mod:    keyMod(ev.Keysym.Mod),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}, true

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return userinput.EventWindowResized{Width: ev.Data1, Height: ev.Data2}, true
		}

	case *sdl.TouchFingerEvent:
		var phase userinput.FingerPhase
		switch ev.Type {
		case sdl.FINGERDOWN:
			phase = userinput.FingerDown
		case sdl.FINGERMOTION:
			phase = userinput.FingerMotion
		case sdl.FINGERUP:
			phase = userinput.FingerUp
		default:
			return nil, false
		}
		return userinput.EventFinger{
			Phase:    phase,
			ID:       int64(ev.FingerID),
			X:        ev.X,
			Y:        ev.Y,
			DX:       ev.DX,
			DY:       ev.DY,
			Pressure: ev.Pressure,
		}, true

	case *sdl.MouseButtonEvent:
		var button userinput.MouseButton
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = userinput.MouseButtonLeft
		case sdl.BUTTON_RIGHT:
			button = userinput.MouseButtonRight
		case sdl.BUTTON_MIDDLE:
			button = userinput.MouseButtonMiddle
		default:
			return nil, false
		}
		return userinput.EventMouseButton{
			Button: button,
			Down:   ev.State == sdl.PRESSED,
		}, true

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{X: ev.X, Y: ev.Y}, true
	}

	return nil, false
}
