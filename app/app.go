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

package app

import (
	"github.com/govita/govita/curated"
	"github.com/govita/govita/kernel"
	"github.com/govita/govita/loader"
	"github.com/govita/govita/logger"
)

// Sentinel errors.
const (
	InitThreadFailed = "app: failed to init main thread: %v"
	RunThreadFailed  = "app: failed to run main thread: %v"
	InitConfigFailed = "app: failed to init config: %v"
)

// messages shown by the error dialog
const (
	initThreadMessage = "Failed to init main thread."
	runThreadMessage  = "Failed to run main thread."
)

// RunApp is the bootstrap sequence. The start routine of every loaded module
// that is not the main module is run to completion, in load order, on a
// transient thread. The main thread is then created and started.
//
// A fault in a module start routine is logged and bootstrap continues. If the
// main thread can not be created or started, the error is reported once with
// the host window's ShowError() and returned.
func RunApp(host *Host, entry loader.Entry) error {
	host.setEntry(entry)

	for _, m := range host.Kernel.LoadedModules() {
		if m.Main {
			continue
		}
		runModuleStart(host.Kernel, m)
	}

	id, err := host.Kernel.CreateThread(entry.Main, entry.TitleID, kernel.DefaultPriorityUser, kernel.StackSizeUserMain)
	if err != nil {
		host.Window.ShowError(initThreadMessage)
		return curated.Errorf(InitThreadFailed, err)
	}

	err = host.Kernel.StartThread(id, 0, 0)
	if err != nil {
		host.Window.ShowError(runThreadMessage)
		return curated.Errorf(RunThreadFailed, err)
	}

	logger.Logf(logger.Allow, "app", "main thread %d started for %s", id, entry)
	host.mainThread.Store(int32(id))

	return nil
}

func runModuleStart(k *kernel.Kernel, m kernel.LoadedModule) {
	logger.Logf(logger.Allow, "app", "running module_start of %s", m.Name)

	id, err := k.CreateThread(m.Start, m.Name, kernel.DefaultPriorityUser, kernel.StackSizeUserDefault)
	if err != nil {
		logger.Logf(logger.Allow, "app", "module %v: %v", m, err)
		return
	}

	// the thread must have released its stack before the next thread is
	// created
	defer func() {
		k.ExitThread(id)
		if _, err := k.WaitThreadEnd(id); err != nil {
			logger.Logf(logger.Allow, "app", "module %v: %v", m, err)
		}
	}()

	ret, err := k.RunOnCurrent(id, m.Start, 0, 0)
	if err != nil {
		logger.Logf(logger.Allow, "app", "module %v: %v", m, err)
		return
	}

	logger.Logf(logger.Allow, "app", "module %v module_start returned 0x%08x", m, ret)
}
