package kernel

import "fmt"

// Kernel is the process-management and scheduling core: the task pool, its
// two queues, the tick counter, the next-PID counter, and the "current"
// pointer, all modeled as one aggregate rather than sprinkled across
// ad-hoc globals. A Kernel has no internal concurrency of its own: this is
// a uniprocessor where kernel code runs to completion without preemption,
// which this module realizes by simply never spawning a goroutine — every
// exported method runs synchronously to completion on whatever goroutine
// calls it, exactly one call in flight at a time by construction, not by a
// lock.
type Kernel struct {
	cfg Config

	tasks []*PCB
	free  *queue
	ready *queue

	nextPID int
	current *PCB
	idle    *PCB

	clock   *Clock
	frames  FrameAllocator
	console ConsoleWriter
	log     Logger
	debug   bool
}

// NewKernel boots a kernel: task[0] is the idle process (PID 0), task[1] is
// the initial process (PID 1, current), and slots 2..NRTasks-1 start on the
// freequeue in index order.
func NewKernel(cfg Config) *Kernel {
	cfg = cfg.withDefaults()

	k := &Kernel{
		cfg:     cfg,
		tasks:   make([]*PCB, cfg.NRTasks),
		free:    newQueue(),
		ready:   newQueue(),
		nextPID: 2,
		clock:   cfg.Clock,
		frames:  cfg.Frames,
		console: cfg.Console,
		log:     cfg.Logger,
		debug:   cfg.Debug,
	}

	for i := range k.tasks {
		pcb := &PCB{
			PID:       -1,
			State:     Free,
			KernelESP: uintptr(i),
		}
		pcb.link.owner = pcb
		k.tasks[i] = pcb
	}

	idle := k.tasks[0]
	idle.PID = IdlePID
	idle.State = Blocked // never runnable via the ready queue; scheduled only as sched_next_rr's fallback
	idle.Quantum = cfg.DefaultQuantum
	AllocateDIR(k, idle, nil)
	InitStats(k, idle)
	k.idle = idle

	initp := k.tasks[1]
	initp.PID = InitPID
	initp.State = Run
	initp.Quantum = cfg.DefaultQuantum
	initp.slice = cfg.DefaultQuantum
	AllocateDIR(k, initp, nil)
	InitStats(k, initp)
	k.current = initp

	k.InitFreequeue()
	k.InitReadyqueue()

	return k
}

// InitFreequeue places every slot except idle (0) and init (1) onto the
// freequeue, in index order.
func (k *Kernel) InitFreequeue() {
	for i := 2; i < len(k.tasks); i++ {
		pcb := k.tasks[i]
		pcb.State = Free
		if !pcb.link.linked() {
			k.free.pushBack(&pcb.link)
		}
	}
}

// InitReadyqueue resets the ready queue to empty.
func (k *Kernel) InitReadyqueue() {
	for !k.ready.empty() {
		k.ready.popFront()
	}
}

// Current returns the PCB owning the currently active context. This is a
// plain field updated only by the scheduler, not recovered via any
// stack-pointer trick.
func (k *Kernel) Current() *PCB {
	return k.current
}

// Idle returns the idle task (PID 0).
func (k *Kernel) Idle() *PCB {
	return k.idle
}

// Lookup performs the linear scan over the task array, skipping FREE slots.
// It is the implementation backing sys_get_stats's PID resolution.
func (k *Kernel) Lookup(pid int) (*PCB, bool) {
	for _, t := range k.tasks {
		if t.State != Free && t.PID == pid {
			return t, true
		}
	}
	return nil, false
}

// FreeQueueLen and ReadyQueueLen expose queue depth for tests and the CLI,
// as pure read-only introspection, in the spirit of arctir-proctor's
// Processes() snapshot.
func (k *Kernel) FreeQueueLen() int  { return k.free.len() }
func (k *Kernel) ReadyQueueLen() int { return k.ready.len() }

// Tasks returns every slot in the pool, for Snapshot/CLI use only.
func (k *Kernel) Tasks() []*PCB {
	out := make([]*PCB, len(k.tasks))
	copy(out, k.tasks)
	return out
}

// SlotView is a read-only projection of one task slot, grounded on
// arctir-proctor's plib.Process read-model (a value type separate from the
// live PCB, safe to hand to a renderer).
type SlotView struct {
	Index   int
	PID     int
	State   State
	Quantum int
	Remain  int
	Stats   Stats
}

func (s SlotView) String() string {
	return fmt.Sprintf("slot %d: pid=%d state=%s quantum=%d/%d",
		s.Index, s.PID, s.State, s.Remain, s.Quantum)
}

// Snapshot returns a SlotView for every task slot, in index order.
func (k *Kernel) Snapshot() []SlotView {
	views := make([]SlotView, len(k.tasks))
	for i, t := range k.tasks {
		views[i] = SlotView{
			Index:   i,
			PID:     t.PID,
			State:   t.State,
			Quantum: t.Quantum,
			Remain:  t.slice,
			Stats:   t.Stats,
		}
	}
	return views
}
