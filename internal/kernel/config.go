package kernel

// Architectural constants. These are not meant to be tuned at runtime on a
// real port (they describe the fixed layout of the task array and its
// stacks) but Config exposes the handful a test harness legitimately wants
// to vary.
const (
	// NRTasks is the default size of the task slot pool.
	NRTasks = 10
	// KernelStackSize is the default number of machine words per kernel
	// stack. This module simulates kernel stacks without any backing
	// memory, so the constant is not otherwise consulted.
	KernelStackSize = 1024
	// DefaultQuantum is the default number of ticks in a time slice.
	DefaultQuantum = 50
	// PageSize is the simulated MMU page size in bytes.
	PageSize = 4096
	// NumPagData is the default number of private data pages per process.
	NumPagData = 4

	// IdlePID and InitPID are the two boot processes' fixed PIDs.
	IdlePID = 0
	InitPID = 1
)

// Config configures a new Kernel. Zero-value fields are replaced by
// defaults in NewKernel.
type Config struct {
	// NRTasks is the size of the task slot pool.
	NRTasks int
	// DefaultQuantum is the quantum assigned to every process on fork.
	DefaultQuantum int
	// NumPagData is the number of private data pages per process.
	NumPagData int
	// Frames backs the simulated physical-frame allocator. If nil, a
	// FreeListAllocator sized for NRTasks*NumPagData*4 frames is used.
	Frames FrameAllocator
	// Console receives bytes written via the write(2) syscall. Defaults
	// to a discarding writer if nil.
	Console ConsoleWriter
	// Clock drives the tick counter read by update_stats and gettime(2).
	// Defaults to a Clock starting at tick 0 with no automatic advance.
	Clock *Clock
	// Logger receives diagnostic messages about scheduling and fork
	// decisions. Defaults to a no-op logger.
	Logger Logger
	// Debug enables the stats transition state-machine assertion.
	Debug bool
}

func (c Config) withDefaults() Config {
	if c.NRTasks <= 0 {
		c.NRTasks = NRTasks
	}
	if c.DefaultQuantum <= 0 {
		c.DefaultQuantum = DefaultQuantum
	}
	if c.NumPagData <= 0 {
		c.NumPagData = NumPagData
	}
	if c.Frames == nil {
		c.Frames = NewFreeListAllocator(c.NRTasks * c.NumPagData * 4)
	}
	if c.Console == nil {
		c.Console = discardConsole{}
	}
	if c.Clock == nil {
		c.Clock = NewClock()
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
	return c
}
