package kernel

// taskSwitch implements task_switch in a hosted simulation:
//
//  1. save callee-preserved registers on the outgoing PCB (saveRegs)
//  2. (kernel_esp bookkeeping is implicit: this module has no raw stack to
//     point a pointer at, so "storing kernel_esp" is represented by the
//     PCB remaining the authoritative owner of its own simulated context)
//  3. load the incoming PCB's page directory — a real flush is a no-op here
//     since each PCB already owns a distinct *PageDirectory value; there is
//     no second address space aliased into the current one to invalidate
//  4. the "current kernel stack" indicator is exactly Kernel.current,
//     reassigned by the caller (SchedNextRR) before taskSwitch runs
//  5. restore the incoming PCB's callee-preserved registers (restoreRegs)
//
// Both the save and the restore step funnel through the single
// saveRegs/restoreRegs pair also used to fabricate a child's first-ever
// switch target (fork.go): the set of registers saved matches the set
// restored in both cases.
func (k *Kernel) taskSwitch(prev, next *PCB) {
	saveRegs(prev, SavedRegs{})
	restoreRegs(next)
	k.log.Printf("task_switch: pid %d -> pid %d", prev.PID, next.PID)
}
