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

// Package renderer is the command pipeline between guest GPU emulation and
// the host rendering backend.
//
// Guest threads record rendering commands into a CommandList and Submit() it.
// Submitting never waits for the backend. Exactly one goroutine runs
// ProcessBatches(), which takes command lists from the queue in the order
// they were submitted and executes them on the Backend.
//
// After every command list the backend goroutine signals the finish
// condition. Goroutines that need the backend to have caught up with the
// guest wait on it with WaitCaughtUp(). The frame pacing goroutine calls
// FrameBoundary() once per frame to consume the count of command lists
// processed during the frame.
//
// Abort() stops the pipeline forever. ProcessBatches() returns and every
// goroutine blocked in WaitCaughtUp() or WaitPending() is released.
package renderer
