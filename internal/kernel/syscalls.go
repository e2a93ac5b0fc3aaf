package kernel

// This file implements the syscall core hooks: the small set of entry
// points a user process reaches the kernel through. Every handler brackets
// its body with UpdateStats(current, USER_TO_SYS) at entry and
// UpdateStats(current, SYS_TO_USER) at every return path — each handler
// does its own bracketing (a deferred SYS_TO_USER, or in Fork an explicit
// call before each return) rather than sharing one wrapper. The return
// convention: a non-negative result on success, a negated Errno on
// failure.

// SysExit implements sys_exit. It is the one handler that never returns to
// its own caller: it enters the kernel (USER_TO_SYS), frees the process's
// user pages and slot, and lets the scheduler pick a successor — which,
// being freshly entered from the ready queue, gets its own
// READY_TO_SYS/SYS_TO_USER bracketing in place of the exiting process's
// absent SYS_TO_USER.
func (k *Kernel) SysExit() {
	cur := k.current
	k.UpdateStats(cur, UserToSys)

	cur.State = Free
	freeUserPages(k.frames, cur)
	k.UpdateCurrentStateRR(k.free, Free)

	k.SchedNextRR()
	k.enterSuccessor(readyToSysAndUser)
}

// SysFork implements sys_fork: the ABI wrapper around Fork that applies the
// negated-errno return convention.
func (k *Kernel) SysFork() int {
	pid, errno := k.Fork()
	if errno != 0 {
		return errno.negated()
	}
	return pid
}

// SysWrite implements sys_write(fd, buffer, size). Only fd 1 (the console)
// is supported; buffer must be non-nil and size non-negative and no larger
// than the buffer actually holds. The caller's bytes are copied into a
// kernel-owned buffer before being handed to the console driver, so the
// driver never holds a reference into memory the caller still owns.
func (k *Kernel) SysWrite(fd int, buffer []byte, size int) int {
	k.UpdateStats(k.current, UserToSys)
	defer k.UpdateStats(k.current, SysToUser)

	if fd != 1 {
		return EBADF.negated()
	}
	if buffer == nil {
		return EFAULT.negated()
	}
	if size < 0 {
		return EINVAL.negated()
	}
	if size > len(buffer) {
		return EFAULT.negated()
	}

	sysBuffer := make([]byte, size)
	copy(sysBuffer, buffer[:size])

	n, err := k.console.WriteConsole(sysBuffer)
	if err != nil {
		return EACCES.negated()
	}
	return n
}

// SysGetTime implements sys_gettime: the current tick count. It cannot
// fail, but is still bracketed like every other hook.
func (k *Kernel) SysGetTime() int {
	k.UpdateStats(k.current, UserToSys)
	defer k.UpdateStats(k.current, SysToUser)

	return k.clock.Now()
}

// SysGetPid implements sys_getpid: the caller's own PID.
func (k *Kernel) SysGetPid() int {
	k.UpdateStats(k.current, UserToSys)
	defer k.UpdateStats(k.current, SysToUser)

	return k.current.PID
}

// SysGetStats implements sys_get_stats(pid, out): it copies the named
// process's accounting record into out. A negative pid or a nil out is a
// usage error caught before any lookup; an unresolved pid is ESRCH.
func (k *Kernel) SysGetStats(pid int, out *Stats) int {
	k.UpdateStats(k.current, UserToSys)
	defer k.UpdateStats(k.current, SysToUser)

	if pid < 0 {
		return EINVAL.negated()
	}
	if out == nil {
		return EFAULT.negated()
	}

	pcb, ok := k.Lookup(pid)
	if !ok {
		return ESRCH.negated()
	}

	*out = pcb.Stats
	return 0
}

// SysNi implements ni_syscall, the catch-all for an unimplemented syscall
// number: it always returns -ENOSYS.
func (k *Kernel) SysNi() int {
	k.UpdateStats(k.current, UserToSys)
	defer k.UpdateStats(k.current, SysToUser)

	return ENOSYS.negated()
}
