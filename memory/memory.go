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

// Package memory manages the guest address space. Only allocation is
// modelled: stacks for guest threads and any other guest allocation are
// carved out of a fixed size address space with a first-fit allocator.
//
// Allocations are rounded up to the page size and are always page aligned.
// Address zero is never handed out so that it can be used as a null address by
// guest code.
package memory

import (
	"fmt"
	"sync"

	"github.com/govita/govita/curated"
	"golang.org/x/exp/slices"
)

// Address in the guest address space.
type Address uint32

func (a Address) String() string {
	return fmt.Sprintf("0x%08x", uint32(a))
}

// PageSize is the granularity of allocation.
const PageSize = 0x1000

// Sentinel errors.
const (
	OutOfMemory     = "memory: out of memory: cannot allocate %d bytes for %s"
	InvalidSize     = "memory: invalid allocation size: %d"
	UnknownAddress  = "memory: no allocation at %v"
	InvalidCapacity = "memory: invalid capacity: %d"
)

// Block describes one allocation.
type Block struct {
	Name    string
	Address Address
	Size    uint32
}

// End returns the first address after the block.
func (b Block) End() Address {
	return b.Address + Address(b.Size)
}

func (b Block) String() string {
	return fmt.Sprintf("%s [%v, %v)", b.Name, b.Address, b.End())
}

// Memory is the guest address space. It is safe for concurrent use.
type Memory struct {
	crit sync.Mutex

	capacity uint32

	// allocated blocks ordered by address
	blocks []Block
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// capacity is rounded down to a whole number of pages and must allow at least
// one allocation after the reserved null page.
func NewMemory(capacity uint32) (*Memory, error) {
	capacity &^= PageSize - 1
	if capacity < 2*PageSize {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}
	return &Memory{capacity: capacity}, nil
}

func align(size uint32) uint32 {
	return (size + PageSize - 1) &^ (PageSize - 1)
}

// Alloc reserves size bytes, rounded up to a whole number of pages. The name
// is used in error messages and by Blocks().
func (mem *Memory) Alloc(size uint32, name string) (Address, error) {
	if size == 0 || size > mem.capacity {
		return 0, curated.Errorf(InvalidSize, size)
	}
	size = align(size)

	mem.crit.Lock()
	defer mem.crit.Unlock()

	// the first page is never allocated
	addr := Address(PageSize)

	idx := 0
	for ; idx < len(mem.blocks); idx++ {
		b := mem.blocks[idx]
		if uint32(b.Address-addr) >= size {
			break
		}
		addr = b.End()
	}

	if uint64(addr)+uint64(size) > uint64(mem.capacity) {
		return 0, curated.Errorf(OutOfMemory, size, name)
	}

	mem.blocks = slices.Insert(mem.blocks, idx, Block{
		Name:    name,
		Address: addr,
		Size:    size,
	})

	return addr, nil
}

// Free releases the allocation starting at addr.
func (mem *Memory) Free(addr Address) error {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	idx, ok := slices.BinarySearchFunc(mem.blocks, addr, func(b Block, a Address) int {
		switch {
		case b.Address < a:
			return -1
		case b.Address > a:
			return 1
		}
		return 0
	})
	if !ok {
		return curated.Errorf(UnknownAddress, addr)
	}

	mem.blocks = slices.Delete(mem.blocks, idx, idx+1)
	return nil
}

// Capacity returns the size of the address space.
func (mem *Memory) Capacity() uint32 {
	return mem.capacity
}

// Used returns the number of bytes currently allocated.
func (mem *Memory) Used() uint32 {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	var n uint32
	for _, b := range mem.blocks {
		n += b.Size
	}
	return n
}

// Blocks returns a copy of the current allocations in address order.
func (mem *Memory) Blocks() []Block {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return slices.Clone(mem.blocks)
}
