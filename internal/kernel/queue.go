package kernel

// queueLink is the intrusive, doubly-linked list node every PCB carries, in
// the shape of list_head/list_add_tail/list_del/list_first. Go has no
// pointer arithmetic, so unlike the C list_head this node carries a direct
// back-pointer to its owning PCB instead of being recovered by offset
// subtraction — the list_head_to_task_struct equivalent is simply
// link.owner (see ListHeadToTaskStruct in pcb.go).
type queueLink struct {
	next, prev *queueLink
	owner      *PCB
}

// linked reports whether the node is currently on some queue.
func (l *queueLink) linked() bool {
	return l.next != nil
}

// queue is an intrusive FIFO built from queueLink nodes around a sentinel,
// giving O(1) PushBack/Remove without needing to know which queue a node is
// on.
type queue struct {
	sentinel queueLink
}

func newQueue() *queue {
	q := &queue{}
	q.sentinel.next = &q.sentinel
	q.sentinel.prev = &q.sentinel
	return q
}

func (q *queue) empty() bool {
	return q.sentinel.next == &q.sentinel
}

func (q *queue) len() int {
	n := 0
	for l := q.sentinel.next; l != &q.sentinel; l = l.next {
		n++
	}
	return n
}

// pushBack appends l at the tail. l must not already be linked.
func (q *queue) pushBack(l *queueLink) {
	if l.linked() {
		panic("queue: pushBack of already-linked node")
	}
	tail := q.sentinel.prev
	tail.next = l
	l.prev = tail
	l.next = &q.sentinel
	q.sentinel.prev = l
}

// popFront removes and returns the head node, or nil if empty.
func (q *queue) popFront() *queueLink {
	if q.empty() {
		return nil
	}
	l := q.sentinel.next
	q.remove(l)
	return l
}

// remove detaches l from whichever queue it is on.
func (q *queue) remove(l *queueLink) {
	removeLink(l)
}

// removeLink detaches l from whichever queue it is currently linked into,
// without needing a reference to that queue — the whole point of an
// intrusive list. It is a no-op on an already-detached node, matching
// update_current_state_rr's "remove from any queue it might be on"
// contract.
func removeLink(l *queueLink) {
	if !l.linked() {
		return
	}
	l.prev.next = l.next
	l.next.prev = l.prev
	l.next = nil
	l.prev = nil
}

// toSlice returns owners head-to-tail, for Snapshot/test introspection only.
func (q *queue) toSlice() []*PCB {
	var out []*PCB
	for l := q.sentinel.next; l != &q.sentinel; l = l.next {
		out = append(out, l.owner)
	}
	return out
}
