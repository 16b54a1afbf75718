// Package queue implements a double-ended queue of string payloads
// over an intrusive circular doubly-linked list, together with a set
// of in-place structural transforms: middle deletion, elimination of
// duplicated values in a sorted queue, pairwise swap, reversal, a
// stable bottom-up merge sort, and a uniform shuffle.
//
// All Queue methods tolerate a nil receiver, which stands in for an
// absent queue: queries report zero or failure, transforms are pure
// no-ops, and nothing is ever partially mutated.
package queue

// Queue is a double-ended queue. The sentinel root closes the list
// into a ring and never holds a payload; the queue is empty iff the
// sentinel is linked to itself. Create queues with New, the zero
// value is not ready for use.
type Queue struct {
	root Element
}

// New returns an empty queue.
func New() *Queue {
	q := &Queue{}
	q.root.next = &q.root
	q.root.prev = &q.root
	return q
}

// Free detaches and releases every element and leaves the queue
// empty. No-op on a nil queue.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for e := q.root.next; e != &q.root; {
		next := e.next
		e.next = nil
		e.prev = nil
		e.queue = nil
		e.value = nil
		e = next
	}
	q.root.next = &q.root
	q.root.prev = &q.root
}

// InsertHead copies s into a new element linked as the first entry.
// It reports false, mutating nothing, when the queue is nil.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}
	q.insertAt(newElement(s), &q.root)
	return true
}

// InsertTail copies s into a new element linked as the last entry.
// It reports false, mutating nothing, when the queue is nil.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}
	q.insertAt(newElement(s), q.root.prev)
	return true
}

// RemoveHead unlinks and returns the first element, or nil when the
// queue is nil or empty. When buf is non-empty, up to len(buf)-1
// payload bytes are copied into it followed by one NUL terminator.
// Ownership of the element transfers to the caller, who must call
// Release exactly once; removing never frees.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil || q.isEmpty() {
		return nil
	}
	e := q.root.next
	copyOut(buf, e.value)
	q.detach(e)
	return e
}

// RemoveTail unlinks and returns the last element. Everything else
// is as for RemoveHead.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil || q.isEmpty() {
		return nil
	}
	e := q.root.prev
	copyOut(buf, e.value)
	q.detach(e)
	return e
}

func copyOut(buf, value []byte) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], value)
	buf[n] = 0
}

// Size counts the elements by traversal. It returns 0 for a nil
// queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	n := 0
	for e := q.root.next; e != &q.root; e = e.next {
		n++
	}
	return n
}

// Values returns the payloads in queue order, head first. It returns
// nil for a nil or empty queue.
func (q *Queue) Values() []string {
	if q == nil || q.isEmpty() {
		return nil
	}
	values := make([]string, 0, 8)
	for e := q.root.next; e != &q.root; e = e.next {
		values = append(values, string(e.value))
	}
	return values
}
