package kernel

// PageDirectory stands in for the MMU's page directory/page table pair.
// Code pages are shared between parent and every descendant that still
// references them (refcounted, never copied); data pages are private per
// process.
//
// A real port's directory is a physical frame mutated through
// set_ss_pag/del_ss_pag/get_frame; this one is a plain struct so fork's
// duplication logic (below) is expressible without a second address space
// to alias through.
type PageDirectory struct {
	code *codeRegion
	data []Frame
}

// codeRegion is the shared, refcounted code mapping. Every process created
// by fork from a common ancestor shares one codeRegion.
type codeRegion struct {
	frames []Frame
	refs   int
}

// AllocateDIR acquires a fresh page directory for pcb, sharing code with
// parent if parent is non-nil (fork), or allocating a brand-new code region
// otherwise (boot processes). It is the Go counterpart of allocate_DIR.
func AllocateDIR(k *Kernel, pcb *PCB, parent *PCB) {
	dir := &PageDirectory{}
	if parent != nil && parent.PageDir != nil {
		dir.code = parent.PageDir.code
		dir.code.refs++
	} else {
		dir.code = &codeRegion{refs: 1}
	}
	pcb.PageDir = dir
}

// GetPT returns the process's data-page table, in the convention of
// get_PT(pcb): a slice indexed by logical data-page number.
func GetPT(pcb *PCB) []Frame {
	return pcb.PageDir.data
}

// duplicateAddrSpace implements the fork-time address-space duplication:
// user code pages are shared (child's entries point at parent's existing
// frames); user data pages are private (fresh frames allocated, parent's
// content copied in). On allocation failure partway through, every frame
// reserved so far is freed with an explicit bounded reverse loop and ENOMEM
// is returned.
func duplicateAddrSpace(frames FrameAllocator, parent *PCB, child *PCB, numPagData int) Errno {
	child.PageDir.data = nil

	reserved := make([]Frame, 0, numPagData)
	for i := 0; i < numPagData; i++ {
		f, ok := frames.AllocFrame()
		if !ok {
			for j := len(reserved) - 1; j >= 0; j-- {
				frames.FreeFrame(reserved[j])
			}
			return ENOMEM
		}
		reserved = append(reserved, f)
	}

	childData := make([]Frame, numPagData)
	for i := 0; i < numPagData; i++ {
		if i < len(parent.PageDir.data) {
			copy(reserved[i], parent.PageDir.data[i])
		}
		childData[i] = reserved[i]
	}
	child.PageDir.data = childData
	return 0
}

// freeUserPages returns a process's private data frames to the allocator
// and drops its reference to the shared code region. Called from sys_exit.
func freeUserPages(frames FrameAllocator, pcb *PCB) {
	if pcb.PageDir == nil {
		return
	}
	for _, f := range pcb.PageDir.data {
		frames.FreeFrame(f)
	}
	pcb.PageDir.data = nil
	if pcb.PageDir.code != nil {
		pcb.PageDir.code.refs--
	}
	pcb.PageDir = nil
}
