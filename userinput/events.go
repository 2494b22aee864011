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

package userinput

import "fmt"

// Event is any host input or window event.
type Event interface{}

// EventQuit is sent when the user has asked for the application to end.
type EventQuit struct{}

// KeyMod is the modifier key state at the time of a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent when a key is pressed or released. Key names follow
// the SDL key names in lower case. For example "g", "escape", "f1".
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// EventWindowResized is sent when the host window changes size. The width and
// height are in drawable pixels.
type EventWindowResized struct {
	Width  int32
	Height int32
}

// FingerPhase is the stage of a touch gesture.
type FingerPhase int

// List of valid FingerPhase values.
const (
	FingerDown FingerPhase = iota
	FingerMotion
	FingerUp
)

func (ph FingerPhase) String() string {
	switch ph {
	case FingerDown:
		return "down"
	case FingerMotion:
		return "motion"
	case FingerUp:
		return "up"
	}
	return "unknown"
}

// EventFinger is the raw payload of a host touch event. X and Y are
// normalised to the range 0.0 to 1.0.
type EventFinger struct {
	Phase    FingerPhase
	ID       int64
	X, Y     float32
	DX, DY   float32
	Pressure float32
}

func (ev EventFinger) String() string {
	return fmt.Sprintf("finger %d %s (%.3f, %.3f)", ev.ID, ev.Phase, ev.X, ev.Y)
}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is sent when the mouse moves. X and Y are in window
// coordinates.
type EventMouseMotion struct {
	X, Y int32
}
