package kernel

import "fmt"

// InitStats zeroes every field of pcb's accounting record and stamps
// last_event_tick with the current tick.
func InitStats(k *Kernel, pcb *PCB) {
	pcb.Stats = Stats{LastEventTick: k.clock.Now()}
	pcb.hasLastTransition = false
}

// validNext encodes the stats transition state machine: the four
// transitions form a cycle USER -> SYS -> {USER, READY} -> SYS. It is
// consulted only when Config.Debug is set; release builds never assert on
// it.
var validNext = map[Transition][]Transition{
	UserToSys:  {SysToUser, SysToReady},
	SysToUser:  {UserToSys},
	SysToReady: {ReadyToSys},
	ReadyToSys: {SysToUser, SysToReady},
}

// UpdateStats records a user/kernel or ready/running boundary crossing. now
// is read once from the kernel's tick counter; delta is added to the bucket
// for the state *left* by trans:
//
//	USER->SYS   adds to UserTicks
//	SYS->USER   adds to SystemTicks
//	SYS->READY  adds to SystemTicks
//	READY->SYS  adds to ReadyTicks
//
// the corresponding transition counter is incremented, LastEventTick is
// advanced to now, and on SYS->READY RemainingTicks snapshots the PCB's
// current quantum slice.
func (k *Kernel) UpdateStats(pcb *PCB, trans Transition) {
	if k.debug {
		k.assertTransition(pcb, trans)
	}

	now := k.clock.Now()
	delta := now - pcb.Stats.LastEventTick

	switch trans {
	case UserToSys:
		pcb.Stats.UserTicks += delta
		pcb.Stats.TotalTransUserToSys++
	case SysToUser:
		pcb.Stats.SystemTicks += delta
		pcb.Stats.TotalTransSysToUser++
	case SysToReady:
		pcb.Stats.SystemTicks += delta
		pcb.Stats.TotalTransSysToReady++
		pcb.Stats.RemainingTicks = pcb.slice
	case ReadyToSys:
		pcb.Stats.ReadyTicks += delta
		pcb.Stats.TotalTransReadyToSys++
	}

	pcb.Stats.ElapsedTotalTicks = pcb.Stats.UserTicks + pcb.Stats.SystemTicks + pcb.Stats.ReadyTicks
	pcb.Stats.LastEventTick = now
}

// assertTransition panics if trans does not follow the PCB's previous
// transition in the USER->SYS->{USER,READY}->SYS cycle. It is a debug-only
// aid, never consulted in release mode.
func (k *Kernel) assertTransition(pcb *PCB, trans Transition) {
	if !pcb.hasLastTransition {
		pcb.hasLastTransition = true
		pcb.lastTransition = trans
		return
	}
	allowed := validNext[pcb.lastTransition]
	ok := false
	for _, a := range allowed {
		if a == trans {
			ok = true
			break
		}
	}
	if !ok {
		panic(fmt.Sprintf("update_stats: pid %d: unexpected transition %s after %s",
			pcb.PID, trans, pcb.lastTransition))
	}
	pcb.lastTransition = trans
}
