package kernel

// Fork implements process creation: it pops a free slot, duplicates the
// parent's address space into it (code shared, data copied), assigns the
// child a fresh PID, readies it, and returns the child's PID to the parent.
// On any failure the slot goes back on the freequeue in state FREE and a
// negative errno is produced — fork never leaves a half-initialized slot
// outside the freequeue.
//
// A real port's fifth step forges the child's kernel stack so its first
// task_switch appears to return 0 from fork (sched.c's ret_from_fork
// trampoline). This module has no stack to forge; instead the child's PCB
// carries pendingForkReturn, consumed exactly once — the first time the
// child becomes current — by ConsumeForkReturn, giving the same observable
// contract without fabricating a stack frame.
func (k *Kernel) Fork() (int, Errno) {
	parent := k.current
	k.UpdateStats(parent, UserToSys)

	if k.free.empty() {
		k.UpdateStats(parent, SysToUser)
		return 0, EAGAIN
	}

	child := ListHeadToTaskStruct(k.free.popFront())

	child.Quantum = parent.Quantum
	child.slice = parent.Quantum
	saveRegs(child, restoreRegs(parent))

	AllocateDIR(k, child, parent)
	if errno := duplicateAddrSpace(k.frames, parent, child, k.cfg.NumPagData); errno != 0 {
		if child.PageDir != nil && child.PageDir.code != nil {
			child.PageDir.code.refs--
		}
		child.PageDir = nil
		child.State = Free
		k.free.pushBack(&child.link)

		k.UpdateStats(parent, SysToUser)
		return 0, errno
	}

	child.PID = k.nextPID
	k.nextPID++
	InitStats(k, child)
	child.pendingForkReturn = true

	child.State = Ready
	k.ready.pushBack(&child.link)

	k.log.Printf("fork: pid %d forked pid %d", parent.PID, child.PID)

	k.UpdateStats(parent, SysToUser)
	return child.PID, 0
}

// ConsumeForkReturn reports whether pcb is resuming for the first time after
// a fork, and if so clears the flag. The caller (the syscall layer, on
// behalf of whichever process sched_next_rr has just made current) uses
// this to decide whether this entry into user mode is fork's return path
// (observed return value 0) or an ordinary syscall return.
func (k *Kernel) ConsumeForkReturn(pcb *PCB) bool {
	if !pcb.pendingForkReturn {
		return false
	}
	pcb.pendingForkReturn = false
	return true
}
