package queue

import "bytes"

// Sort orders the queue ascending by payload, byte-lexicographically.
// The sort is stable: elements with equal payloads keep their
// relative order. No-op on nil, empty, or singleton queues.
//
// The ring is first opened into a successor-only, nil-terminated
// chain. Sorted runs are then built bottom-up: a pending stack of
// runs is threaded through the idle predecessor fields, with each
// run's size an implicit power of two tracked by a binary counter,
// so at most O(log n) runs are pending and total comparisons stay
// O(n log n). The final merge rebuilds the predecessor links and
// closes the ring through the sentinel again.
func (q *Queue) Sort() {
	if q == nil || q.isEmpty() || q.isSingular() {
		return
	}

	list := q.openRing()

	var pending *Element
	count := uint(0)
	for list != nil {
		next := list.next
		list.next = nil

		// Binary-counter carry: a run of trailing one bits means two
		// equal-size pending runs must merge before the new
		// single-element run is pushed.
		bits := count
		tail := &pending
		for ; bits&1 != 0; bits >>= 1 {
			tail = &(*tail).prev
		}
		if bits != 0 {
			a := *tail
			b := a.prev
			a = merge(b, a)
			a.prev = b.prev
			*tail = a
		}

		list.prev = pending
		pending = list
		list = next
		count++
	}

	// Fold the remaining pending runs, oldest first, into one chain,
	// then restore the ring with the last merge.
	list = pending
	pending = pending.prev
	for {
		next := pending.prev
		if next == nil {
			break
		}
		list = merge(pending, list)
		pending = next
	}
	q.mergeRestore(pending, list)
}

// openRing breaks the ring at the sentinel and returns the head of a
// successor-only, nil-terminated chain. Predecessor fields must not
// be trusted until mergeRestore rebuilds them.
func (q *Queue) openRing() *Element {
	first := q.root.next
	q.root.prev.next = nil
	return first
}

// merge joins two sorted successor-only runs into one. Equal
// payloads take the node from a, which keeps the sort stable because
// a is always the older run.
func merge(a, b *Element) *Element {
	var head Element
	tail := &head
	for a != nil && b != nil {
		if bytes.Compare(a.value, b.value) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return head.next
}

// mergeRestore performs the final merge of runs a and b while
// rebuilding predecessor links and re-closing the ring through the
// sentinel, leaving a fully valid circular doubly-linked list.
func (q *Queue) mergeRestore(a, b *Element) {
	head := &q.root
	tail := head

	for a != nil && b != nil {
		if bytes.Compare(a.value, b.value) <= 0 {
			tail.next = a
			a.prev = tail
			tail = a
			a = a.next
		} else {
			tail.next = b
			b.prev = tail
			tail = b
			b = b.next
		}
	}
	if a == nil {
		a = b
	}
	for a != nil {
		tail.next = a
		a.prev = tail
		tail = a
		a = a.next
	}

	tail.next = head
	head.prev = tail
}
