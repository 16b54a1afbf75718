package queue

import "math/rand/v2"

// randIntN draws from the process-wide generator, which the runtime
// seeds once at startup. Reseeding on every call would repeat
// permutations for calls landing in the same clock tick.
var randIntN = rand.IntN

// Shuffle rearranges the elements into a uniformly random
// permutation using only link relocation; no element is allocated,
// freed, or copied. For each position from the tail forward it draws
// a uniform index into the not-yet-shuffled prefix, walks
// predecessor links to the chosen element, and relocates it to the
// front of the shuffled suffix. The position walk makes the whole
// pass O(n²). No-op when the queue holds fewer than two elements.
func (q *Queue) Shuffle() {
	if q == nil {
		return
	}
	n := q.Size()
	if n < 2 {
		return
	}

	// stop is the first node of the shuffled suffix; the unshuffled
	// prefix is everything from the first node up to stop.
	stop := &q.root
	for remaining := n; remaining > 1; remaining-- {
		target := stop.prev
		for j := randIntN(remaining); j > 0; j-- {
			target = target.prev
		}
		unlink(target)
		q.insertAt(target, stop.prev)
		stop = target
	}
}
