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

package memory_test

import (
	"sync"
	"testing"

	"github.com/govita/govita/curated"
	"github.com/govita/govita/memory"
	"github.com/govita/govita/test"
)

func TestCapacity(t *testing.T) {
	_, err := memory.NewMemory(memory.PageSize)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidCapacity))

	mem, err := memory.NewMemory(4*memory.PageSize + 10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Capacity(), uint32(4*memory.PageSize))
}

func TestAlloc(t *testing.T) {
	mem, err := memory.NewMemory(8 * memory.PageSize)
	test.DemandSuccess(t, err)

	a, err := mem.Alloc(1, "a")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a, memory.Address(memory.PageSize))

	b, err := mem.Alloc(memory.PageSize+1, "b")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, memory.Address(2*memory.PageSize))
	test.ExpectEquality(t, mem.Used(), uint32(3*memory.PageSize))

	_, err = mem.Alloc(0, "zero")
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidSize))

	// free the first block and the hole is reused
	test.ExpectSuccess(t, mem.Free(a))
	c, err := mem.Alloc(memory.PageSize, "c")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, a)

	// a larger allocation does not fit in the hole
	test.ExpectSuccess(t, mem.Free(c))
	d, err := mem.Alloc(2*memory.PageSize, "d")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d, memory.Address(4*memory.PageSize))

	blocks := mem.Blocks()
	test.ExpectEquality(t, len(blocks), 2)
	test.ExpectEquality(t, blocks[0].Name, "b")
	test.ExpectEquality(t, blocks[1].Name, "d")
	test.ExpectEquality(t, blocks[1].End(), memory.Address(6*memory.PageSize))
}

func TestExhaustion(t *testing.T) {
	mem, err := memory.NewMemory(4 * memory.PageSize)
	test.DemandSuccess(t, err)

	_, err = mem.Alloc(3*memory.PageSize, "all")
	test.DemandSuccess(t, err)

	_, err = mem.Alloc(1, "more")
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfMemory))
	test.ExpectEquality(t, err.Error(), "memory: out of memory: cannot allocate 4096 bytes for more")
}

func TestFreeUnknown(t *testing.T) {
	mem, err := memory.NewMemory(4 * memory.PageSize)
	test.DemandSuccess(t, err)

	err = mem.Free(0x1234)
	test.ExpectSuccess(t, curated.Is(err, memory.UnknownAddress))

	a, err := mem.Alloc(1, "a")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mem.Free(a))
	test.ExpectFailure(t, mem.Free(a))
}

func TestConcurrentAlloc(t *testing.T) {
	const n = 32

	mem, err := memory.NewMemory((n + 1) * memory.PageSize)
	test.DemandSuccess(t, err)

	addrs := make([]memory.Address, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := mem.Alloc(memory.PageSize, "stack")
			test.ExpectSuccess(t, err)
			addrs[i] = a
		}()
	}
	wg.Wait()

	seen := make(map[memory.Address]bool)
	for _, a := range addrs {
		test.ExpectFailure(t, seen[a])
		seen[a] = true
	}
	test.ExpectEquality(t, mem.Used(), uint32(n*memory.PageSize))
}
