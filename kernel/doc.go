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

// Package kernel emulates the thread and module management of the guest
// kernel.
//
// Every guest thread is backed by its own goroutine. The goroutine is created
// idle by CreateThread() and waits on the thread's condition variable for its
// pending action to change. StartThread() sets the pending action to run and
// the goroutine runs the entry point on the thread's CPU. ExitThread() and
// StopAllThreads() set the pending action to exit.
//
// A thread is erased from the registry when it exits. This happens when the
// entry point returns, when ExitThread() is called or when StopAllThreads()
// is called. Erasing is idempotent. The goroutine releases the stack after
// the thread has been erased and WaitThreadEnd() returns once that is done.
//
// Module start routines are run with RunOnCurrent(), which runs an entry point
// on the calling goroutine using the CPU of an existing (idle) thread.
package kernel
