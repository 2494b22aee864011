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

package kernel

import (
	"fmt"
	"sync"

	"github.com/govita/govita/cpu"
	"github.com/govita/govita/memory"
)

// ThreadID identifies a guest thread.
type ThreadID int32

// Priority of a guest thread. Lower values are more urgent.
type Priority int32

// Values used when creating threads.
const (
	DefaultPriorityUser  Priority = 0x10000100
	StackSizeUserMain    uint32   = 256 * 1024
	StackSizeUserDefault uint32   = 4 * 1024
)

// ToDo is the pending action of a thread.
type ToDo int

// List of valid ToDo values. ToDoWait is the idle state.
const (
	ToDoWait ToDo = iota
	ToDoRun
	ToDoExit
)

func (td ToDo) String() string {
	switch td {
	case ToDoWait:
		return "wait"
	case ToDoRun:
		return "run"
	case ToDoExit:
		return "exit"
	}
	return "unknown"
}

// ThreadState is the kernel's record of a guest thread. The exported fields
// do not change after creation.
type ThreadState struct {
	ID        ThreadID
	Name      string
	Priority  Priority
	StackSize uint32
	Stack     memory.Address
	Entry     memory.Address

	cpu cpu.CPU

	crit sync.Mutex

	// broadcast whenever toDo changes
	cond *sync.Cond

	toDo    ToDo
	started bool
	args    []uint32

	// result of the entry point. valid once done is closed
	result uint32
	err    error
	done   chan struct{}
}

func newThreadState(id ThreadID, name string, priority Priority, stack memory.Address, stackSize uint32, entry memory.Address) *ThreadState {
	thread := &ThreadState{
		ID:        id,
		Name:      name,
		Priority:  priority,
		StackSize: stackSize,
		Stack:     stack,
		Entry:     entry,
		done:      make(chan struct{}),
	}
	thread.cond = sync.NewCond(&thread.crit)
	return thread
}

// ToDo returns the current pending action.
func (thread *ThreadState) ToDo() ToDo {
	thread.crit.Lock()
	defer thread.crit.Unlock()
	return thread.toDo
}

// setToDo changes the pending action and wakes the thread goroutine. once the
// pending action is exit it never changes
func (thread *ThreadState) setToDo(td ToDo) bool {
	thread.crit.Lock()
	defer thread.crit.Unlock()
	if thread.toDo == ToDoExit {
		return false
	}
	thread.toDo = td
	thread.cond.Broadcast()
	return true
}

func (thread *ThreadState) String() string {
	return fmt.Sprintf("%s (%d)", thread.Name, thread.ID)
}

// ThreadInfo is a snapshot of a thread.
type ThreadInfo struct {
	ID        ThreadID
	Name      string
	Priority  Priority
	StackSize uint32
	Stack     memory.Address
	Entry     memory.Address
	ToDo      ToDo
	Running   bool
}

func (thread *ThreadState) info(running bool) ThreadInfo {
	return ThreadInfo{
		ID:        thread.ID,
		Name:      thread.Name,
		Priority:  thread.Priority,
		StackSize: thread.StackSize,
		Stack:     thread.Stack,
		Entry:     thread.Entry,
		ToDo:      thread.ToDo(),
		Running:   running,
	}
}
