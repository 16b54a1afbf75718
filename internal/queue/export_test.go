package queue

// SetRandForTest overrides the shuffle's random draw and returns a
// restore function.
func SetRandForTest(f func(n int) int) func() {
	prev := randIntN
	randIntN = f
	return func() {
		randIntN = prev
	}
}
