package queue

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestShuffleBoundary(t *testing.T) {
	var nilQ *Queue
	nilQ.Shuffle() // must not panic

	q := New()
	q.Shuffle()
	checkRing(t, q)

	fill(t, q, "a")
	q.Shuffle()
	checkRing(t, q, "a")
}

func TestShuffleZeroDrawsKeepOrder(t *testing.T) {
	// A draw of 0 always picks the last unshuffled element, which is
	// already in place, so the permutation is the identity.
	restore := SetRandForTest(func(int) int { return 0 })
	defer restore()

	q := New()
	fill(t, q, "a", "b", "c", "d")
	q.Shuffle()
	checkRing(t, q, "a", "b", "c", "d")
}

func TestShuffleMaxDrawsReverse(t *testing.T) {
	// A draw of n-1 always picks the current first element, so the
	// result is the exact reversal.
	restore := SetRandForTest(func(n int) int { return n - 1 })
	defer restore()

	q := New()
	fill(t, q, "a", "b", "c", "d")
	q.Shuffle()
	checkRing(t, q, "d", "c", "b", "a")
}

func TestShuffleKeepsElements(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	restore := SetRandForTest(r.IntN)
	defer restore()

	in := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	q := New()
	fill(t, q, in...)

	q.Shuffle()

	got := q.Values()
	checkRing(t, q, got...)
	slices.Sort(got)
	want := slices.Clone(in)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("payload multiset changed: got %v, want %v", got, want)
	}
}

func TestShuffleUniform(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 29))
	restore := SetRandForTest(r.IntN)
	defer restore()

	const trials = 24000
	counts := make(map[string]int, 24)
	for i := 0; i < trials; i++ {
		q := New()
		fill(t, q, "a", "b", "c", "d")
		q.Shuffle()
		counts[strings.Join(q.Values(), "")]++
		q.Free()
	}

	if len(counts) != 24 {
		t.Fatalf("observed %d permutations, want 24", len(counts))
	}

	// chi-square against the uniform distribution over 4! outcomes;
	// 60 is far beyond the 0.999 quantile for 23 degrees of freedom.
	expected := float64(trials) / 24
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > 60 {
		t.Fatalf("chi-square = %.2f, distribution too far from uniform", chi2)
	}
}
