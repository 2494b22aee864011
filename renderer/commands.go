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

package renderer

import (
	"fmt"
	"strings"
)

// Colour is an RGBA colour.
type Colour struct {
	R, G, B, A uint8
}

// Rect in guest screen coordinates. The origin is the top left corner.
type Rect struct {
	X, Y, W, H int32
}

// Op is the operation performed by a Command.
type Op int

// List of valid Op values.
const (
	OpClear Op = iota
	OpFillRect
)

func (op Op) String() string {
	switch op {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill"
	}
	return "unknown"
}

// Command is one rendering operation.
type Command struct {
	Op     Op
	Colour Colour
	Rect   Rect
}

func (cmd Command) String() string {
	switch cmd.Op {
	case OpClear:
		return fmt.Sprintf("clear #%02x%02x%02x", cmd.Colour.R, cmd.Colour.G, cmd.Colour.B)
	case OpFillRect:
		return fmt.Sprintf("fill #%02x%02x%02x (%d,%d %dx%d)", cmd.Colour.R, cmd.Colour.G, cmd.Colour.B,
			cmd.Rect.X, cmd.Rect.Y, cmd.Rect.W, cmd.Rect.H)
	}
	return cmd.Op.String()
}

// CommandList is the commands recorded by one guest submission. A command
// list is transported whole.
type CommandList struct {
	// id of the guest thread that submitted the list
	Thread int32

	// sequence number given by Submit()
	Seq uint64

	Commands []Command
}

// Clear appends a clear command.
func (cl *CommandList) Clear(c Colour) {
	cl.Commands = append(cl.Commands, Command{Op: OpClear, Colour: c})
}

// FillRect appends a fill command.
func (cl *CommandList) FillRect(r Rect, c Colour) {
	cl.Commands = append(cl.Commands, Command{Op: OpFillRect, Colour: c, Rect: r})
}

func (cl CommandList) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "#%d (thread %d):", cl.Seq, cl.Thread)
	for _, cmd := range cl.Commands {
		s.WriteString(" ")
		s.WriteString(cmd.String())
	}
	return s.String()
}
