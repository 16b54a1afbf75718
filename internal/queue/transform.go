package queue

import "bytes"

// DeleteMid removes and releases the element at 0-based index ⌊n/2⌋,
// found with a two-speed traversal from the first node. It reports
// false when the queue is nil or empty.
func (q *Queue) DeleteMid() bool {
	if q == nil || q.isEmpty() {
		return false
	}

	slow := q.root.next
	fast := q.root.next
	for fast != &q.root && fast.next != &q.root {
		slow = slow.next
		fast = fast.next.next
	}

	q.detach(slow)
	slow.Release()
	return true
}

// DeleteDup removes every element whose payload occurs more than
// once, in a single forward pass over adjacent pairs. Values that
// repeat do not survive at all; only values occurring exactly once
// remain. The queue must already be sorted ascending, which is the
// caller's responsibility and is not checked here. It reports false
// only when the queue is nil.
func (q *Queue) DeleteDup() bool {
	if q == nil {
		return false
	}
	if q.isEmpty() || q.isSingular() {
		return true
	}

	foundDup := false
	for e := q.root.next; e != &q.root; {
		next := e.next
		// An element goes when it matches its successor, or when it
		// matched its predecessor on the previous step (carry flag).
		dup := next != &q.root && bytes.Equal(e.value, next.value)
		if dup || foundDup {
			q.detach(e)
			e.Release()
			foundDup = dup
		}
		e = next
	}
	return true
}

// SwapPairs relinks each adjacent pair (0,1), (2,3), … so the two
// elements trade places. Only link fields move; nothing is allocated
// or copied, and a trailing unpaired element stays put. No-op on
// nil, empty, or singleton queues.
func (q *Queue) SwapPairs() {
	if q == nil || q.isEmpty() || q.isSingular() {
		return
	}

	a := q.root.next
	for a != &q.root && a.next != &q.root {
		b := a.next

		a.prev.next = b
		b.prev = a.prev
		a.prev = b
		a.next = b.next
		b.next.prev = a
		b.next = a

		a = a.next
	}
}

// Reverse exchanges the successor and predecessor fields of every
// node in the ring, the sentinel included, so the queue reads in the
// opposite direction. Reversing twice restores the original order
// exactly. No-op on nil, empty, or singleton queues.
func (q *Queue) Reverse() {
	if q == nil || q.isEmpty() || q.isSingular() {
		return
	}

	node := &q.root
	for {
		node.next, node.prev = node.prev, node.next
		node = node.prev // the old successor
		if node == &q.root {
			break
		}
	}
}
