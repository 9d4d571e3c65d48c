// Package slice implements set operations over index slices.
package slice

// IntersectionUint64 of two uint64 slices with time complexity of
// approximately O(n) leveraging a map to check for element existence off by a
// constant factor of underlying map efficiency. Duplicates in the inputs
// produce a duplicate-free result.
func IntersectionUint64(a []uint64, b []uint64) []uint64 {
	set := make([]uint64, 0)
	m := make(map[uint64]bool)

	for i := 0; i < len(a); i++ {
		m[a[i]] = true
	}
	for i := 0; i < len(b); i++ {
		if m[b[i]] {
			set = append(set, b[i])
			m[b[i]] = false
		}
	}
	return set
}

// IsUint64SortedAndUnique verifies that a uint64 slice is sorted in strictly
// ascending order, which also rules out duplicates.
func IsUint64SortedAndUnique(a []uint64) bool {
	for i := 0; i+1 < len(a); i++ {
		if a[i] >= a[i+1] {
			return false
		}
	}
	return true
}
