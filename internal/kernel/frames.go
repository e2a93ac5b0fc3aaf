package kernel

import "sync"

// Frame is a simulated physical page frame. A real port's frames are raw
// physical memory manipulated through set_ss_pag/get_frame; this module's
// frames are addressable Go byte slices so fork's data-page copy is a
// direct copy() instead of an alias-map-copy-unmap dance through a second
// address space.
type Frame []byte

// FrameAllocator is the external collaborator named alloc_frame/free_frame,
// narrowed to the two verbs this core actually calls.
type FrameAllocator interface {
	AllocFrame() (Frame, bool)
	FreeFrame(Frame)
}

// FreeListAllocator is a fixed pool of frames linked by a free list, in the
// shape of BiscuitOS's physmem_t free list (phys_init/pgcount use a
// physpg_t{refcnt, nexti} singly-linked free list over a preallocated
// []physpg_t; this is that same structure specialised to whole Frame
// buffers instead of page metadata).
type FreeListAllocator struct {
	mu     sync.Mutex
	pages  []Frame
	owned  map[*byte]int // frame identity (by backing array) -> index, for FreeFrame validation
	free   []int
	nalloc int
}

// NewFreeListAllocator returns an allocator backed by n frames of PageSize
// bytes each.
func NewFreeListAllocator(n int) *FreeListAllocator {
	if n <= 0 {
		n = 1
	}
	a := &FreeListAllocator{
		pages: make([]Frame, n),
		owned: make(map[*byte]int, n),
		free:  make([]int, n),
	}
	for i := range a.pages {
		a.pages[i] = make(Frame, PageSize)
		a.owned[&a.pages[i][0]] = i
		a.free[i] = n - 1 - i
	}
	return a
}

// AllocFrame removes a frame from the free list, or reports false if the
// pool is exhausted (the caller turns this into ENOMEM).
func (a *FreeListAllocator) AllocFrame() (Frame, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.free) == 0 {
		return nil, false
	}
	idx := a.free[len(a.free)-1]
	a.free = a.free[:len(a.free)-1]
	a.nalloc++
	f := a.pages[idx]
	for i := range f {
		f[i] = 0
	}
	return f, true
}

// FreeFrame returns a frame to the free list.
func (a *FreeListAllocator) FreeFrame(f Frame) {
	if len(f) == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	idx, ok := a.owned[&f[0]]
	if !ok {
		panic("free_frame: frame not owned by this allocator")
	}
	a.free = append(a.free, idx)
	a.nalloc--
}

// Free reports the number of frames currently unallocated, used by tests
// asserting fork/exit frame-accounting invariants.
func (a *FreeListAllocator) Free() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.free)
}

// Allocated reports the number of frames currently checked out.
func (a *FreeListAllocator) Allocated() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nalloc
}
