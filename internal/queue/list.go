package queue

// Low-level ring primitives. Every helper preserves the ring
// invariant: for each reachable node x, x.next.prev == x and
// x.prev.next == x.

func (q *Queue) isEmpty() bool {
	return q.root.next == &q.root
}

func (q *Queue) isSingular() bool {
	return !q.isEmpty() && q.root.next == q.root.prev
}

// insertAt links e into the ring between at and at.next.
func (q *Queue) insertAt(e, at *Element) {
	n := at.next
	at.next = e
	e.prev = at
	e.next = n
	n.prev = e
	e.queue = q
}

// unlink takes e out of the ring. Its own link fields keep their old
// targets; use detach when the element leaves the package.
func unlink(e *Element) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

// detach unlinks e and severs it from the queue entirely.
func (q *Queue) detach(e *Element) {
	unlink(e)
	e.next = nil
	e.prev = nil
	e.queue = nil
}
