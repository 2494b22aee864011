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
	"strings"
	"sync"

	"github.com/govita/govita/curated"
)

// BackendKind is the closed set of rendering backends. The backend is chosen
// once at startup.
type BackendKind int

// List of valid BackendKind values.
const (
	Null BackendKind = iota
	OpenGL
)

// Sentinel errors.
const (
	UnknownBackend = "renderer: unknown backend: %s"
)

func (kind BackendKind) String() string {
	switch kind {
	case Null:
		return "null"
	case OpenGL:
		return "opengl"
	}
	return "unknown"
}

// ParseBackendKind converts a backend name to a BackendKind. The comparison
// is case insensitive.
func ParseBackendKind(s string) (BackendKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "null", "none":
		return Null, nil
	case "opengl", "gl", "gl32":
		return OpenGL, nil
	}
	return Null, curated.Errorf(UnknownBackend, s)
}

// Backend executes command lists on the host. Execute() is only ever called
// from the goroutine running State.ProcessBatches().
type Backend interface {
	Kind() BackendKind
	Execute(CommandList) error
}

// NullBackend discards command lists after counting them. The zero value is
// ready to use.
type NullBackend struct {
	crit     sync.Mutex
	lists    int
	commands int
	last     CommandList

	// optional function called for every command list
	OnExecute func(CommandList)
}

// Kind implements the Backend interface.
func (nb *NullBackend) Kind() BackendKind {
	return Null
}

// Execute implements the Backend interface.
func (nb *NullBackend) Execute(cl CommandList) error {
	nb.crit.Lock()
	nb.lists++
	nb.commands += len(cl.Commands)
	nb.last = cl
	nb.crit.Unlock()

	if nb.OnExecute != nil {
		nb.OnExecute(cl)
	}
	return nil
}

// Counts returns the number of command lists and the number of commands
// executed so far.
func (nb *NullBackend) Counts() (int, int) {
	nb.crit.Lock()
	defer nb.crit.Unlock()
	return nb.lists, nb.commands
}

// Last returns the most recently executed command list.
func (nb *NullBackend) Last() CommandList {
	nb.crit.Lock()
	defer nb.crit.Unlock()
	return nb.last
}
