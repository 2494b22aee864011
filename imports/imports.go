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

// Package imports is the table of system functions that guest code can call.
// Functions are identified by NID. The Table's CallImport() function is given
// to the kernel as the import handler of every guest thread.
//
// Handlers read their arguments from registers zero to three and write the
// result to register zero. Calling an unknown NID is not fatal. The result is
// ResultUnknownImport and the NID is logged the first time it is seen.
package imports

import (
	"fmt"
	"sync"

	"github.com/dolthub/swiss"
	"github.com/govita/govita/cpu"
	"github.com/govita/govita/display"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/renderer"
	"github.com/govita/govita/signals"
	"github.com/govita/govita/touch"
)

// Results written to register zero.
const (
	ResultOK            uint32 = 0
	ResultAborted       uint32 = 0x80020001
	ResultUnknownImport uint32 = 0x80020002
)

// Env is the host state the system functions work with.
type Env struct {
	Signals  *signals.Signals
	Display  *display.Display
	Pipeline *renderer.State
	Touch    *touch.Touch
}

// Handler implements one system function.
type Handler func(env *Env, st cpu.State, thread int32)

type function struct {
	name    string
	handler Handler
}

// Table maps NIDs to handlers.
type Table struct {
	env Env

	crit      sync.Mutex
	functions *swiss.Map[uint32, function]
	unknown   *swiss.Map[uint32, int]
}

// NewTable is the preferred method of initialisation for the Table type. The
// table is populated with the functions in this package.
func NewTable(env Env) *Table {
	tab := &Table{
		env:       env,
		functions: swiss.NewMap[uint32, function](32),
		unknown:   swiss.NewMap[uint32, int](8),
	}
	registerKernel(tab)
	registerDisplay(tab)
	registerGxm(tab)
	registerTouch(tab)
	return tab
}

// Register a handler for the NID. An existing handler for the NID is
// replaced.
func (tab *Table) Register(nid uint32, name string, h Handler) {
	tab.crit.Lock()
	defer tab.crit.Unlock()
	tab.functions.Put(nid, function{name: name, handler: h})
}

// Name returns the name of the function registered for the NID.
func (tab *Table) Name(nid uint32) string {
	tab.crit.Lock()
	defer tab.crit.Unlock()
	if f, ok := tab.functions.Get(nid); ok {
		return f.name
	}
	return fmt.Sprintf("unknown (0x%08x)", nid)
}

// Unknown returns the number of calls made to the NID when it was unknown.
func (tab *Table) Unknown(nid uint32) int {
	tab.crit.Lock()
	defer tab.crit.Unlock()
	n, _ := tab.unknown.Get(nid)
	return n
}

// CallImport has the signature of cpu.CallImport.
func (tab *Table) CallImport(st cpu.State, nid uint32, thread int32) {
	tab.crit.Lock()
	f, ok := tab.functions.Get(nid)
	if !ok {
		n, _ := tab.unknown.Get(nid)
		tab.unknown.Put(nid, n+1)
		tab.crit.Unlock()

		if n == 0 {
			logger.Logf(logger.Allow, "imports", "thread %d called unknown NID 0x%08x", thread, nid)
		}
		st.SetReg(cpu.RegResult, ResultUnknownImport)
		return
	}
	tab.crit.Unlock()

	// handlers can block so they are called outside of the critical section
	f.handler(&tab.env, st, thread)
}
