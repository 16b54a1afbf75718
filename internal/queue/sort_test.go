package queue

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"
)

func TestSortBasic(t *testing.T) {
	q := New()
	fill(t, q, "banana", "apple", "cherry")

	q.Sort()
	checkRing(t, q, "apple", "banana", "cherry")
}

func TestSortByteLexicographic(t *testing.T) {
	q := New()
	fill(t, q, "b", "B", "a", "10", "2", "")

	q.Sort()
	checkRing(t, q, "", "10", "2", "B", "a", "b")
}

func TestSortSizes(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 100} {
		q := New()
		in := make([]string, n)
		for i := range in {
			// small alphabet so duplicates are common
			in[i] = string(rune('a' + r.IntN(4)))
			fill(t, q, in[i])
		}

		q.Sort()

		want := slices.Clone(in)
		slices.Sort(want)
		checkRing(t, q, want...)
	}
}

func TestSortStability(t *testing.T) {
	q := New()
	fill(t, q, "b", "a", "b", "a", "a", "b")

	// group the input nodes by payload, keeping insertion order
	byValue := map[string][]*Element{}
	for e := q.root.next; e != &q.root; e = e.next {
		byValue[string(e.value)] = append(byValue[string(e.value)], e)
	}
	want := append(byValue["a"], byValue["b"]...)

	q.Sort()

	i := 0
	for e := q.root.next; e != &q.root; e = e.next {
		if e != want[i] {
			t.Fatalf("node %d out of order: equal payloads must keep insertion order", i)
		}
		i++
	}
	checkRing(t, q, "a", "a", "a", "b", "b", "b")
}

func TestSortAlreadySorted(t *testing.T) {
	q := New()
	fill(t, q, "a", "b", "c", "d")

	q.Sort()
	checkRing(t, q, "a", "b", "c", "d")
}

func TestSortReversed(t *testing.T) {
	q := New()
	for i := 20; i > 0; i-- {
		fill(t, q, strconv.Itoa(100+i))
	}

	q.Sort()
	want := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		want = append(want, strconv.Itoa(100+i))
	}
	checkRing(t, q, want...)
}

func TestSortBoundary(t *testing.T) {
	var nilQ *Queue
	nilQ.Sort() // must not panic

	q := New()
	q.Sort()
	checkRing(t, q)

	fill(t, q, "a")
	q.Sort()
	checkRing(t, q, "a")
}
