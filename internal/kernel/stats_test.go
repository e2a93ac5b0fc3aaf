package kernel

import "testing"

// TestUpdateStatsBucketsSumToElapsedTotal checks the bucket mapping and
// that user+system+ready equal elapsed_total once every tick is accounted
// for.
func TestUpdateStatsBucketsSumToElapsedTotal(t *testing.T) {
	k := NewKernel(Config{NRTasks: 4})
	p := k.Current()
	InitStats(k, p)

	k.clock.Advance() // tick 1, user time
	k.UpdateStats(p, UserToSys)
	if p.Stats.UserTicks != 1 || p.Stats.TotalTransUserToSys != 1 {
		t.Fatalf("after USER->SYS: user=%d count=%d, want 1,1", p.Stats.UserTicks, p.Stats.TotalTransUserToSys)
	}

	k.clock.Advance() // tick 2, system time
	k.UpdateStats(p, SysToReady)
	if p.Stats.SystemTicks != 1 || p.Stats.RemainingTicks != p.slice {
		t.Fatalf("after SYS->READY: system=%d remaining=%d, want 1,%d", p.Stats.SystemTicks, p.Stats.RemainingTicks, p.slice)
	}

	k.clock.Advance() // tick 3, ready time
	k.UpdateStats(p, ReadyToSys)
	if p.Stats.ReadyTicks != 1 {
		t.Fatalf("after READY->SYS: ready=%d, want 1", p.Stats.ReadyTicks)
	}

	k.UpdateStats(p, SysToUser)

	sum := p.Stats.UserTicks + p.Stats.SystemTicks + p.Stats.ReadyTicks
	if sum != p.Stats.ElapsedTotalTicks {
		t.Fatalf("user+system+ready = %d, elapsed_total = %d, want equal", sum, p.Stats.ElapsedTotalTicks)
	}
}

func TestAssertTransitionPanicsInDebugMode(t *testing.T) {
	k := NewKernel(Config{NRTasks: 4, Debug: true})
	p := k.Current()
	InitStats(k, p)

	k.UpdateStats(p, UserToSys)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on USER->SYS followed directly by READY->SYS")
		}
	}()
	k.UpdateStats(p, ReadyToSys)
}

func TestAssertTransitionIsSkippedOutsideDebugMode(t *testing.T) {
	k := NewKernel(Config{NRTasks: 4, Debug: false})
	p := k.Current()
	InitStats(k, p)

	k.UpdateStats(p, UserToSys)
	k.UpdateStats(p, ReadyToSys) // invalid sequence, but must not panic
}
