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

// Package cpu defines the boundary between the kernel and the emulation of
// guest code. The kernel never interprets guest code itself. It asks a
// Factory for a CPU for every guest thread and runs entry points on it.
//
// Guest code reaches the emulated system libraries through the CallImport
// function given to the Factory. The import handler reads its arguments from
// the registers in State and writes its result to register zero.
package cpu

import (
	"github.com/govita/govita/memory"
)

// Register numbers with special meaning. Arguments are passed in registers
// zero to three and the result is returned in register zero.
const (
	RegResult = 0
	RegSP     = 13
	RegLR     = 14
	RegPC     = 15
	NumRegs   = 16
)

// State is the register view of a CPU. It is only valid on the goroutine
// running the CPU.
type State interface {
	Reg(n int) uint32
	SetReg(n int, v uint32)
	PC() uint32
	SP() uint32
}

// CallImport is invoked by guest code to call the system function identified
// by nid. The thread argument is the id of the guest thread making the call.
type CallImport func(st State, nid uint32, thread int32)

// CPU runs guest code for exactly one guest thread.
type CPU interface {
	State

	// Run executes the routine at entry with the arguments in registers zero
	// onwards. It returns the value of register zero when the routine
	// returns. An error is only returned for faults in the guest code.
	Run(entry memory.Address, args ...uint32) (uint32, error)

	// Stop requests that guest code running on the CPU stops at the earliest
	// opportunity. Stop can be called from any goroutine and more than once.
	Stop()

	// Stopped returns true once Stop() has been called.
	Stopped() bool
}

// Factory creates a CPU for a new guest thread. The stack has already been
// allocated by the kernel.
type Factory interface {
	NewCPU(thread int32, stack memory.Address, stackSize uint32, call CallImport) (CPU, error)
}
