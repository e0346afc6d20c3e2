// Package bubble implements bubble sort over slices of ordered elements.
// Equal elements are never swapped (comparisons use strict greater-than),
// so the sort is stable.
package bubble

import "cmp"

// Sort sorts s in place in non-decreasing order and returns it.
//
// This is the classic presentation: after pass i the i largest elements
// occupy the tail of the slice, so the inner bound shrinks by one each
// pass. All len(s) passes run even when the slice becomes sorted early;
// use SortAdaptive for the early-exit variant.
func Sort[E cmp.Ordered](s []E) []E {
	n := len(s)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
	return s
}

// SortAdaptive is Sort with the textbook early-exit enhancement: a pass
// that performs no swap proves the slice is sorted, so remaining passes
// are skipped. Ordering behavior is identical to Sort.
func SortAdaptive[E cmp.Ordered](s []E) []E {
	n := len(s)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return s
}

// Sorted returns a sorted copy of s, leaving s untouched.
func Sorted[E cmp.Ordered](s []E) []E {
	out := make([]E, len(s))
	copy(out, s)
	return Sort(out)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[E cmp.Ordered](s []E) bool {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
