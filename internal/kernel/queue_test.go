package kernel

import "testing"

func newTestPCB(pid int) *PCB {
	p := &PCB{PID: pid}
	p.link.owner = p
	return p
}

func TestQueueFIFOOrder(t *testing.T) {
	q := newQueue()
	a, b, c := newTestPCB(1), newTestPCB(2), newTestPCB(3)

	q.pushBack(&a.link)
	q.pushBack(&b.link)
	q.pushBack(&c.link)

	if got := q.len(); got != 3 {
		t.Fatalf("len = %d, want 3", got)
	}

	for _, want := range []*PCB{a, b, c} {
		got := ListHeadToTaskStruct(q.popFront())
		if got != want {
			t.Fatalf("popFront = pid %d, want pid %d", got.PID, want.PID)
		}
	}
	if !q.empty() {
		t.Fatalf("queue not empty after draining")
	}
}

func TestRemoveLinkDetachesFromAnyQueue(t *testing.T) {
	q := newQueue()
	a, b, c := newTestPCB(1), newTestPCB(2), newTestPCB(3)
	q.pushBack(&a.link)
	q.pushBack(&b.link)
	q.pushBack(&c.link)

	// remove the middle node without the caller ever naming which queue it
	// is on — the point of an intrusive list.
	removeLink(&b.link)

	if q.len() != 2 {
		t.Fatalf("len after remove = %d, want 2", q.len())
	}
	got := q.toSlice()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("toSlice after remove = %v, want [a c]", got)
	}

	// removing an already-detached node is a no-op, matching
	// update_current_state_rr's "remove from any queue it might be on".
	removeLink(&b.link)
}

func TestPushBackPanicsOnAlreadyLinkedNode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic pushing an already-linked node")
		}
	}()
	q := newQueue()
	a := newTestPCB(1)
	q.pushBack(&a.link)
	q.pushBack(&a.link)
}
