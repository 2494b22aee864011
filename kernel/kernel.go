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
	"io"
	"sync"

	"github.com/bradleyjkemp/memviz"
	"github.com/dolthub/swiss"
	"github.com/govita/govita/cpu"
	"github.com/govita/govita/curated"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/memory"
	"golang.org/x/exp/slices"
)

// Sentinel errors. InitThreadFailed and RunThreadFailed wrap one of the more
// specific errors below them.
const (
	InitThreadFailed = "kernel: init thread failed: %v"
	RunThreadFailed  = "kernel: run thread failed: %v"

	UnknownThread = "unknown thread %d"
	ThreadExited  = "thread %v has exited"
	ThreadStarted = "thread %v already started"
	Stopping      = "kernel is stopping"
	MultipleMain  = "kernel: more than one main module: %v and %v"
)

// the first thread id handed out
const firstThreadID ThreadID = 0x40010001

// Kernel is the guest thread registry and module list.
type Kernel struct {
	mem        *memory.Memory
	factory    cpu.Factory
	callImport cpu.CallImport

	crit sync.Mutex

	threads *swiss.Map[ThreadID, *ThreadState]

	// subset of threads that have been started
	running *swiss.Map[ThreadID, *ThreadState]

	// threads erased from the registry whose result has not been collected
	// by WaitThreadEnd()
	ended *swiss.Map[ThreadID, *ThreadState]

	nextID   ThreadID
	stopping bool

	modules []LoadedModule

	// one for every thread goroutine
	wg sync.WaitGroup
}

// NewKernel is the preferred method of initialisation for the Kernel type.
// Stacks for new threads are allocated from mem and CPUs are created by the
// factory. The callImport function is given to every CPU.
func NewKernel(mem *memory.Memory, factory cpu.Factory, callImport cpu.CallImport) *Kernel {
	return &Kernel{
		mem:        mem,
		factory:    factory,
		callImport: callImport,
		threads:    swiss.NewMap[ThreadID, *ThreadState](16),
		running:    swiss.NewMap[ThreadID, *ThreadState](16),
		ended:      swiss.NewMap[ThreadID, *ThreadState](16),
		nextID:     firstThreadID,
	}
}

// Memory returns the guest memory used for thread stacks.
func (k *Kernel) Memory() *memory.Memory {
	return k.mem
}

// CreateThread registers a new idle thread and returns its id. The thread
// goroutine is running by the time CreateThread returns but it does nothing
// until StartThread() is called.
func (k *Kernel) CreateThread(entry memory.Address, name string, priority Priority, stackSize uint32) (ThreadID, error) {
	k.crit.Lock()
	if k.stopping {
		k.crit.Unlock()
		return 0, curated.Errorf(InitThreadFailed, curated.Errorf(Stopping))
	}
	id := k.nextID
	k.nextID++
	k.crit.Unlock()

	stack, err := k.mem.Alloc(stackSize, fmt.Sprintf("stack: %s", name))
	if err != nil {
		return 0, curated.Errorf(InitThreadFailed, err)
	}

	c, err := k.factory.NewCPU(int32(id), stack, stackSize, k.callImport)
	if err != nil {
		k.freeStack(stack)
		return 0, curated.Errorf(InitThreadFailed, err)
	}

	thread := newThreadState(id, name, priority, stack, stackSize, entry)
	thread.cpu = c

	k.crit.Lock()

	// StopAllThreads() may have been called while the stack was being
	// allocated
	if k.stopping {
		k.crit.Unlock()
		k.freeStack(stack)
		return 0, curated.Errorf(InitThreadFailed, curated.Errorf(Stopping))
	}

	k.threads.Put(id, thread)
	k.wg.Add(1)
	k.crit.Unlock()

	go k.threadLoop(thread)

	return id, nil
}

func (k *Kernel) freeStack(stack memory.Address) {
	if err := k.mem.Free(stack); err != nil {
		logger.Log(logger.Allow, "kernel", err)
	}
}

// threadLoop is the body of every thread goroutine
func (k *Kernel) threadLoop(thread *ThreadState) {
	defer k.wg.Done()

	thread.crit.Lock()
	for thread.toDo == ToDoWait {
		thread.cond.Wait()
	}
	toDo := thread.toDo
	args := thread.args
	thread.crit.Unlock()

	var ret uint32
	var err error

	if toDo == ToDoRun {
		ret, err = thread.cpu.Run(thread.Entry, args...)
		if err != nil {
			logger.Logf(logger.Allow, "kernel", "thread %v: %v", thread, err)
		}
	}

	// acknowledge the exit
	thread.setToDo(ToDoExit)
	k.erase(thread)
	k.freeStack(thread.Stack)

	thread.crit.Lock()
	thread.result = ret
	thread.err = err
	thread.crit.Unlock()
	close(thread.done)
}

// erase moves the thread from the registry to the list of ended threads
func (k *Kernel) erase(thread *ThreadState) {
	k.crit.Lock()
	defer k.crit.Unlock()
	k.running.Delete(thread.ID)
	k.threads.Delete(thread.ID)
	k.ended.Put(thread.ID, thread)
}

func (k *Kernel) find(id ThreadID) (*ThreadState, bool) {
	k.crit.Lock()
	defer k.crit.Unlock()
	return k.threads.Get(id)
}

// StartThread sets the pending action of a dormant thread to run. The
// arguments are passed to the entry point in the first two registers.
func (k *Kernel) StartThread(id ThreadID, argSize uint32, argp memory.Address) error {
	k.crit.Lock()
	defer k.crit.Unlock()

	if k.stopping {
		return curated.Errorf(RunThreadFailed, curated.Errorf(Stopping))
	}

	thread, ok := k.threads.Get(id)
	if !ok {
		return curated.Errorf(RunThreadFailed, curated.Errorf(UnknownThread, id))
	}

	thread.crit.Lock()
	defer thread.crit.Unlock()

	if thread.toDo == ToDoExit {
		return curated.Errorf(RunThreadFailed, curated.Errorf(ThreadExited, thread))
	}
	if thread.started {
		return curated.Errorf(RunThreadFailed, curated.Errorf(ThreadStarted, thread))
	}

	thread.started = true
	thread.args = []uint32{argSize, uint32(argp)}
	thread.toDo = ToDoRun
	thread.cond.Broadcast()

	k.running.Put(id, thread)

	return nil
}

// RunOnCurrent runs the entry point on the calling goroutine using the CPU of
// the thread. The thread must not have been started.
func (k *Kernel) RunOnCurrent(id ThreadID, entry memory.Address, args ...uint32) (uint32, error) {
	thread, ok := k.find(id)
	if !ok {
		return 0, curated.Errorf(UnknownThread, id)
	}

	thread.crit.Lock()
	started := thread.started
	thread.crit.Unlock()
	if started {
		return 0, curated.Errorf(ThreadStarted, thread)
	}

	return thread.cpu.Run(entry, args...)
}

// ExitThread sets the pending action of the thread to exit, wakes it and
// erases it from the registry. If the thread is running, its CPU is stopped.
// Unknown ids are ignored.
//
// The stack is released by the thread goroutine when it acknowledges the
// exit. Use WaitThreadEnd() to wait for that.
func (k *Kernel) ExitThread(id ThreadID) {
	thread, ok := k.find(id)
	if !ok {
		return
	}
	thread.setToDo(ToDoExit)
	thread.cpu.Stop()
	k.erase(thread)
}

// StopAllThreads sets the pending action of every thread to exit, stops the
// CPU of every thread and wakes them all. Threads cannot be created or started
// afterwards.
func (k *Kernel) StopAllThreads() {
	k.crit.Lock()
	k.stopping = true
	threads := make([]*ThreadState, 0, k.threads.Count())
	k.threads.Iter(func(_ ThreadID, thread *ThreadState) bool {
		threads = append(threads, thread)
		return false
	})
	k.crit.Unlock()

	for _, thread := range threads {
		thread.setToDo(ToDoExit)
		thread.cpu.Stop()
	}

	logger.Logf(logger.Allow, "kernel", "stopping %d threads", len(threads))
}

// Stopping returns true if StopAllThreads() has been called.
func (k *Kernel) Stopping() bool {
	k.crit.Lock()
	defer k.crit.Unlock()
	return k.stopping
}

// WaitThreadEnd blocks until the thread goroutine has acknowledged the exit
// and returns the value returned by its entry point. The stack of the thread
// has been released by the time WaitThreadEnd returns.
//
// The result of a thread that has already ended is kept until it is
// collected. Only the first call after the thread has ended sees it. Later
// calls return UnknownThread.
func (k *Kernel) WaitThreadEnd(id ThreadID) (uint32, error) {
	k.crit.Lock()
	thread, ok := k.threads.Get(id)
	if !ok {
		thread, ok = k.ended.Get(id)
	}
	k.crit.Unlock()
	if !ok {
		return 0, curated.Errorf(UnknownThread, id)
	}

	<-thread.done

	// the thread goroutine has moved the thread to the ended list before
	// closing done. collecting the result removes it from that list
	k.crit.Lock()
	k.ended.Delete(id)
	k.crit.Unlock()

	thread.crit.Lock()
	defer thread.crit.Unlock()
	return thread.result, thread.err
}

// Wait blocks until every thread goroutine has ended.
func (k *Kernel) Wait() {
	k.wg.Wait()
}

// Find returns a snapshot of the thread.
func (k *Kernel) Find(id ThreadID) (ThreadInfo, bool) {
	k.crit.Lock()
	defer k.crit.Unlock()

	thread, ok := k.threads.Get(id)
	if !ok {
		return ThreadInfo{}, false
	}
	return thread.info(k.running.Has(id)), true
}

// Threads returns a snapshot of every registered thread ordered by id.
func (k *Kernel) Threads() []ThreadInfo {
	k.crit.Lock()
	defer k.crit.Unlock()

	info := make([]ThreadInfo, 0, k.threads.Count())
	k.threads.Iter(func(id ThreadID, thread *ThreadState) bool {
		info = append(info, thread.info(k.running.Has(id)))
		return false
	})

	slices.SortFunc(info, func(a, b ThreadInfo) int {
		return int(a.ID) - int(b.ID)
	})

	return info
}

// NumThreads returns the number of registered threads and the number of
// those that are running.
func (k *Kernel) NumThreads() (int, int) {
	k.crit.Lock()
	defer k.crit.Unlock()
	return k.threads.Count(), k.running.Count()
}

// LoadModule adds a module to the list of loaded modules. Only one module can
// be the main module.
func (k *Kernel) LoadModule(m LoadedModule) error {
	k.crit.Lock()
	defer k.crit.Unlock()

	if m.Main {
		for _, o := range k.modules {
			if o.Main {
				return curated.Errorf(MultipleMain, o, m)
			}
		}
	}

	k.modules = append(k.modules, m)
	return nil
}

// LoadedModules returns the loaded modules in load order.
func (k *Kernel) LoadedModules() []LoadedModule {
	k.crit.Lock()
	defer k.crit.Unlock()
	return slices.Clone(k.modules)
}

// MainModule returns the main module.
func (k *Kernel) MainModule() (LoadedModule, bool) {
	k.crit.Lock()
	defer k.crit.Unlock()
	for _, m := range k.modules {
		if m.Main {
			return m, true
		}
	}
	return LoadedModule{}, false
}

// Visualise writes a graphviz description of the kernel state.
func (k *Kernel) Visualise(w io.Writer) {
	snapshot := struct {
		Modules []LoadedModule
		Threads []ThreadInfo
		Memory  []memory.Block
	}{
		Modules: k.LoadedModules(),
		Threads: k.Threads(),
		Memory:  k.mem.Blocks(),
	}
	memviz.Map(w, &snapshot)
}
