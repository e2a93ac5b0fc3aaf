package kernel

import "testing"

// TestNewKernelBootScenario checks that idle is PID 0 and blocked, init is
// PID 1 and current, and every other slot starts on the freequeue.
func TestNewKernelBootScenario(t *testing.T) {
	k := NewKernel(Config{NRTasks: 6})

	if got := k.Idle().PID; got != IdlePID {
		t.Fatalf("idle pid = %d, want %d", got, IdlePID)
	}
	if got := k.Idle().State; got != Blocked {
		t.Fatalf("idle state = %s, want BLOCKED", got)
	}

	cur := k.Current()
	if cur.PID != InitPID {
		t.Fatalf("current pid = %d, want %d", cur.PID, InitPID)
	}
	if cur.State != Run {
		t.Fatalf("init state = %s, want RUN", cur.State)
	}

	if got, want := k.FreeQueueLen(), 4; got != want {
		t.Fatalf("freequeue len = %d, want %d", got, want)
	}
	if got := k.ReadyQueueLen(); got != 0 {
		t.Fatalf("readyqueue len = %d, want 0", got)
	}
}

func TestLookupSkipsFreeSlots(t *testing.T) {
	k := NewKernel(Config{NRTasks: 4})

	if _, ok := k.Lookup(99); ok {
		t.Fatalf("lookup(99) ok = true, want false")
	}
	if pcb, ok := k.Lookup(InitPID); !ok || pcb.PID != InitPID {
		t.Fatalf("lookup(%d) = (%v, %v), want init", InitPID, pcb, ok)
	}

	pid := k.SysFork()
	if pid < 0 {
		t.Fatalf("fork failed: %s", Errno(-pid))
	}
	if pcb, ok := k.Lookup(pid); !ok || pcb.State == Free {
		t.Fatalf("lookup(%d) = (%v, %v), want a non-free slot", pid, pcb, ok)
	}
}

func TestSnapshotReflectsSlotCount(t *testing.T) {
	k := NewKernel(Config{NRTasks: 5})
	if got := len(k.Snapshot()); got != 5 {
		t.Fatalf("snapshot len = %d, want 5", got)
	}
}
