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
	"fmt"
	"io"
	"sync"

	"github.com/govita/govita/logger"
)

// Window implements the app.Window interface for a terminal. The title is set
// with the xterm escape sequence.
type Window struct {
	crit sync.Mutex
	out  io.Writer
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(out io.Writer) *Window {
	return &Window{out: out}
}

// SetTitle implements the app.Window interface.
func (w *Window) SetTitle(title string) {
	w.crit.Lock()
	defer w.crit.Unlock()
	fmt.Fprintf(w.out, "\033]0;%s\007", title)
}

// ShowError implements the app.Window interface. The terminal is in raw mode
// so the line ends with a carriage return.
func (w *Window) ShowError(message string) {
	w.crit.Lock()
	defer w.crit.Unlock()
	if _, err := fmt.Fprintf(w.out, "Error: %s\r\n", message); err != nil {
		logger.Logf(logger.Allow, "termhost", "error: %s", message)
	}
}
