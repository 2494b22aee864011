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

// Package hle is a high level emulation of guest code. Instead of decoding
// instructions, guest routines are Go functions registered in a Table at
// addresses in the guest address space. A CPU created by the Table runs the
// routine registered at the entry address.
//
// Routines behave like guest code: they see their arguments in a Context,
// call system functions by NID with Context.Call() and return a value that
// becomes register zero. Routines that loop must check Context.Stopped() or
// the result of their imports so that they end when the kernel stops them.
package hle

import (
	"fmt"
	"sync"

	"github.com/dolthub/swiss"
	"github.com/govita/govita/cpu"
	"github.com/govita/govita/curated"
	"github.com/govita/govita/memory"
)

// Sentinel errors.
const (
	UnknownEntry = "hle: no routine at %v"
	Fault        = "hle: fault in %s: %v"
	NoImports    = "hle: thread %d has no import handler"
)

// BaseAddress is the address of the first registered routine.
const BaseAddress memory.Address = 0x81000000

// spacing between routine addresses
const routineAlign = 0x10

// Routine is guest code written in Go.
type Routine func(ctx *Context) uint32

type entry struct {
	name    string
	routine Routine
}

// Table maps guest addresses to routines. It implements the cpu.Factory
// interface.
type Table struct {
	crit     sync.RWMutex
	routines *swiss.Map[memory.Address, entry]
	next     memory.Address
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		routines: swiss.NewMap[memory.Address, entry](64),
		next:     BaseAddress,
	}
}

// Register a routine under the name and return its address.
func (tab *Table) Register(name string, routine Routine) memory.Address {
	tab.crit.Lock()
	defer tab.crit.Unlock()

	addr := tab.next
	tab.next += routineAlign
	tab.routines.Put(addr, entry{name: name, routine: routine})
	return addr
}

// Name returns the name of the routine at the address.
func (tab *Table) Name(addr memory.Address) (string, bool) {
	tab.crit.RLock()
	defer tab.crit.RUnlock()
	e, ok := tab.routines.Get(addr)
	return e.name, ok
}

func (tab *Table) lookup(addr memory.Address) (entry, bool) {
	tab.crit.RLock()
	defer tab.crit.RUnlock()
	e, ok := tab.routines.Get(addr)
	return e, ok
}

// NewCPU implements the cpu.Factory interface.
func (tab *Table) NewCPU(thread int32, stack memory.Address, stackSize uint32, call cpu.CallImport) (cpu.CPU, error) {
	if call == nil {
		return nil, curated.Errorf(NoImports, thread)
	}
	return &CPU{
		tab:    tab,
		thread: thread,
		stack:  stack,
		size:   stackSize,
		call:   call,
		stop:   make(chan struct{}),
	}, nil
}

// CPU runs routines from a Table. It implements the cpu.CPU interface.
type CPU struct {
	tab    *Table
	thread int32
	stack  memory.Address
	size   uint32
	call   cpu.CallImport

	// registers are only touched by the goroutine in Run()
	regs [cpu.NumRegs]uint32

	stopOnce sync.Once
	stop     chan struct{}
}

// Reg implements the cpu.State interface.
func (c *CPU) Reg(n int) uint32 {
	return c.regs[n]
}

// SetReg implements the cpu.State interface.
func (c *CPU) SetReg(n int, v uint32) {
	c.regs[n] = v
}

// PC implements the cpu.State interface.
func (c *CPU) PC() uint32 {
	return c.regs[cpu.RegPC]
}

// SP implements the cpu.State interface.
func (c *CPU) SP() uint32 {
	return c.regs[cpu.RegSP]
}

// Stop implements the cpu.CPU interface.
func (c *CPU) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

// Stopped implements the cpu.CPU interface.
func (c *CPU) Stopped() bool {
	select {
	case <-c.stop:
		return true
	default:
		return false
	}
}

// Run implements the cpu.CPU interface. A panic in the routine is a fault
// and is returned as an error.
func (c *CPU) Run(entry memory.Address, args ...uint32) (ret uint32, err error) {
	e, ok := c.tab.lookup(entry)
	if !ok {
		return 0, curated.Errorf(UnknownEntry, entry)
	}

	c.regs = [cpu.NumRegs]uint32{}
	for i, a := range args {
		if i > 3 {
			break
		}
		c.regs[i] = a
	}
	c.regs[cpu.RegSP] = uint32(c.stack) + c.size
	c.regs[cpu.RegPC] = uint32(entry)

	ctx := &Context{
		cpu:  c,
		Name: e.name,
		Args: args,
	}

	defer func() {
		if r := recover(); r != nil {
			ret = 0
			err = curated.Errorf(Fault, e.name, r)
		}
	}()

	ret = e.routine(ctx)
	c.regs[cpu.RegResult] = ret

	return ret, nil
}

// Context is the view of the CPU given to a running routine.
type Context struct {
	cpu *CPU

	// Name of the running routine
	Name string

	// Args as given to cpu.Run()
	Args []uint32
}

// Thread returns the id of the guest thread running the routine.
func (ctx *Context) Thread() int32 {
	return ctx.cpu.thread
}

// Arg returns argument n or zero if there is no such argument.
func (ctx *Context) Arg(n int) uint32 {
	if n < 0 || n >= len(ctx.Args) {
		return 0
	}
	return ctx.Args[n]
}

// Reg returns the value of register n. After Call() the registers hold the
// values left by the system function.
func (ctx *Context) Reg(n int) uint32 {
	return ctx.cpu.regs[n]
}

// Call the system function identified by nid with up to four arguments.
// Returns the value of register zero after the call.
func (ctx *Context) Call(nid uint32, args ...uint32) uint32 {
	c := ctx.cpu
	for i := 0; i < 4; i++ {
		var v uint32
		if i < len(args) {
			v = args[i]
		}
		c.regs[i] = v
	}
	c.call(c, nid, c.thread)
	return c.regs[cpu.RegResult]
}

// Stopped returns true if the kernel has asked the thread to stop.
func (ctx *Context) Stopped() bool {
	return ctx.cpu.Stopped()
}

// Done returns a channel that is closed when the kernel asks the thread to
// stop.
func (ctx *Context) Done() <-chan struct{} {
	return ctx.cpu.stop
}

func (ctx *Context) String() string {
	return fmt.Sprintf("%s (thread %d)", ctx.Name, ctx.cpu.thread)
}
