package kernel

import "testing"

// TestRoundRobinRotatesReadyProcesses checks that with two ready processes
// and a short quantum, the scheduler visits each of them in turn and never
// places the idle task on the ready queue.
func TestRoundRobinRotatesReadyProcesses(t *testing.T) {
	k := NewKernel(Config{NRTasks: 5, DefaultQuantum: 2})

	pidA := k.SysFork()
	pidB := k.SysFork()
	if pidA < 0 || pidB < 0 {
		t.Fatalf("fork failed: a=%d b=%d", pidA, pidB)
	}

	// init (current) still has the full quantum; run it down so the first
	// ready process gets picked up.
	var seen []int
	for i := 0; i < 2; i++ {
		k.TimerTick()
	}
	seen = append(seen, k.Current().PID)
	if got := k.Current().PID; got != pidA {
		t.Fatalf("after init's quantum expires, current = %d, want %d (first forked)", got, pidA)
	}

	for i := 0; i < 2; i++ {
		k.TimerTick()
	}
	seen = append(seen, k.Current().PID)
	if got := k.Current().PID; got != pidB {
		t.Fatalf("after pidA's quantum expires, current = %d, want %d", got, pidB)
	}

	for i := 0; i < 2; i++ {
		k.TimerTick()
	}
	seen = append(seen, k.Current().PID)
	if got := k.Current().PID; got != InitPID {
		t.Fatalf("after pidB's quantum expires, current = %d, want init back (%d)", got, InitPID)
	}

	for _, pid := range seen {
		if _, ok := k.Lookup(pid); !ok {
			t.Fatalf("pid %d vanished from the task pool mid-rotation", pid)
		}
	}

	for _, pcb := range k.Tasks() {
		if pcb == k.idle {
			continue
		}
		if pcb.State == Ready {
			for _, q := range k.ready.toSlice() {
				if q == k.idle {
					t.Fatalf("idle task found on the ready queue")
				}
			}
		}
	}
}

// TestSchedNextRRFallsBackToIdle checks that once the only runnable process
// exits and the ready queue is empty, the scheduler falls back to idle
// rather than leaving current unset.
func TestSchedNextRRFallsBackToIdle(t *testing.T) {
	k := NewKernel(Config{NRTasks: 3, DefaultQuantum: 1})

	k.SysExit()

	if k.Current() != k.idle {
		t.Fatalf("current = pid %d, want idle (no ready process exists)", k.Current().PID)
	}
}

// TestTimerTickNoSwitchWhenReadyQueueEmpty covers the common case: a
// process's quantum may run out, but with nothing else ready it simply
// keeps running.
func TestTimerTickNoSwitchWhenReadyQueueEmpty(t *testing.T) {
	k := NewKernel(Config{NRTasks: 3, DefaultQuantum: 1})

	for i := 0; i < 5; i++ {
		k.TimerTick()
	}

	if k.Current().PID != InitPID {
		t.Fatalf("current = pid %d, want init (%d) to keep running uncontested", k.Current().PID, InitPID)
	}
}

func TestUpdateCurrentStateRRNoOpDstLeavesProcessOffQueues(t *testing.T) {
	k := NewKernel(Config{NRTasks: 3})
	cur := k.Current()
	k.UpdateCurrentStateRR(nil, Blocked)

	if cur.State != Blocked {
		t.Fatalf("state = %s, want BLOCKED", cur.State)
	}
	if cur.link.linked() {
		t.Fatalf("process still linked into a queue after nil-dst update")
	}
}
