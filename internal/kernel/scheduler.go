package kernel

// UpdateSchedDataRR is called on every timer tick: it decrements the
// running process's remaining slice.
func (k *Kernel) UpdateSchedDataRR() {
	k.current.slice--
}

// NeedsSchedRR reports whether the running process's slice has reached
// zero and the ready queue is non-empty.
func (k *Kernel) NeedsSchedRR() bool {
	return k.current.slice <= 0 && !k.ready.empty()
}

// UpdateCurrentStateRR removes the current process from any queue it might
// be on, sets its state, and enqueues it at the tail of dst unless dst is
// nil — the no-op destination used for the idle task, which never goes on
// the ready queue.
func (k *Kernel) UpdateCurrentStateRR(dst *queue, state State) {
	cur := k.current
	removeLink(&cur.link)
	cur.State = state
	if dst != nil {
		dst.pushBack(&cur.link)
	}
}

// SchedNextRR dequeues the ready queue head as the successor, or falls back
// to the idle task if the ready queue is empty. The successor is marked RUN
// and its slice reset to its configured quantum. If the successor is the
// same PCB that was already current, no context switch is performed.
func (k *Kernel) SchedNextRR() {
	var next *PCB
	if !k.ready.empty() {
		next = ListHeadToTaskStruct(k.ready.popFront())
	} else {
		next = k.idle
	}

	prev := k.current
	next.State = Run
	next.slice = next.Quantum

	if next == prev {
		return
	}

	k.current = next
	k.taskSwitch(prev, next)
}

// TimerTick is the timer-interrupt entry point, and like every other
// user/kernel boundary it is bracketed by USER_TO_SYS on entry and
// SYS_TO_USER on exit for whichever PCB is current at each point — which
// may differ across the call if a switch happens in between. The idle task
// is exempted from this bracketing: it never occupies the ready queue this
// transition cycle is built around, so its stats simply never run through
// the USER/SYS/READY cycle.
func (k *Kernel) TimerTick() {
	k.clock.Advance()

	interrupted := k.current
	if interrupted != k.idle {
		k.UpdateStats(interrupted, UserToSys)
	}

	k.UpdateSchedDataRR()
	if k.NeedsSchedRR() {
		if interrupted == k.idle {
			k.UpdateCurrentStateRR(nil, Blocked)
		} else {
			k.UpdateStats(interrupted, SysToReady)
			k.UpdateCurrentStateRR(k.ready, Ready)
		}
		k.SchedNextRR()
		k.enterSuccessor(onlyReadyToSys)
	}

	if k.current != k.idle {
		k.UpdateStats(k.current, SysToUser)
	}
}

type successorBracket int

const (
	onlyReadyToSys successorBracket = iota
	readyToSysAndUser
)

// enterSuccessor accounts for the newly-scheduled current process entering
// kernel mode from the ready queue (the READY_TO_SYS bucket), optionally
// also completing the matching SYS_TO_USER as part of the same call when
// the caller (sys_exit; see syscalls.go) has no further kernel work of its own
// left to bracket. The idle task never took this path in (it never goes on
// the ready queue) so it is exempted here too.
func (k *Kernel) enterSuccessor(bracket successorBracket) {
	if k.current == k.idle {
		return
	}
	k.UpdateStats(k.current, ReadyToSys)
	if bracket == readyToSysAndUser {
		k.UpdateStats(k.current, SysToUser)
	}
}
