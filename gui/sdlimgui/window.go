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
	"github.com/govita/govita/logger"
	"github.com/govita/govita/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SetTitle implements the app.Window interface. The title is applied on the
// next call to Service().
func (img *SdlImgui) SetTitle(title string) {
	img.title.Store(title)
}

// ShowError implements the app.Window interface. The message box is shown
// from the main thread and ShowError() blocks until it has been dismissed. If
// the message box cannot be shown the message is logged.
func (img *SdlImgui) ShowError(message string) {
	var err error
	show := func() {
		err = sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, version.ApplicationName, message, img.plt.window)
	}

	if img.main.IsCurrent() {
		show()
	} else if !img.polling.Call(show) {
		logger.Logf(logger.Allow, "sdlimgui", "error: %s", message)
		return
	}
	if err != nil {
		logger.Logf(logger.Allow, "sdlimgui", "error: %s (%v)", message, err)
	}
}
