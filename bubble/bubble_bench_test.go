package bubble

import "testing"

func reversed(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = n - i
	}
	return v
}

func BenchmarkSortReversed100(b *testing.B) {
	for b.Loop() {
		Sort(reversed(100))
	}
}

func BenchmarkSortAlreadySorted100(b *testing.B) {
	v := Sort(reversed(100))
	for b.Loop() {
		Sort(v)
	}
}

// The adaptive variant's win is the already-sorted case: one pass instead
// of a hundred.
func BenchmarkSortAdaptiveAlreadySorted100(b *testing.B) {
	v := Sort(reversed(100))
	for b.Loop() {
		SortAdaptive(v)
	}
}
