package slice

import (
	"testing"

	"github.com/seaham/beacond/testing/assert"
)

func TestIntersectionUint64(t *testing.T) {
	testCases := []struct {
		setA []uint64
		setB []uint64
		out  []uint64
	}{
		{[]uint64{2, 3, 5}, []uint64{3}, []uint64{3}},
		{[]uint64{2, 3, 5}, []uint64{3, 5}, []uint64{3, 5}},
		{[]uint64{2, 3, 5}, []uint64{5, 3, 2}, []uint64{5, 3, 2}},
		{[]uint64{2, 3, 5}, []uint64{2, 3, 5}, []uint64{2, 3, 5}},
		{[]uint64{2, 3, 5}, []uint64{}, []uint64{}},
		{[]uint64{}, []uint64{2, 3, 5}, []uint64{}},
		{[]uint64{}, []uint64{}, []uint64{}},
		{[]uint64{1}, []uint64{1}, []uint64{1}},
		// Duplicates in either input do not duplicate the output.
		{[]uint64{1, 1, 2}, []uint64{1, 2}, []uint64{1, 2}},
		{[]uint64{1, 2}, []uint64{1, 1, 2}, []uint64{1, 2}},
	}
	for _, tt := range testCases {
		result := IntersectionUint64(tt.setA, tt.setB)
		assert.DeepEqual(t, tt.out, result)
	}
}

func TestIsUint64SortedAndUnique(t *testing.T) {
	testCases := []struct {
		in  []uint64
		out bool
	}{
		{[]uint64{}, true},
		{[]uint64{9}, true},
		{[]uint64{1, 2, 3}, true},
		{[]uint64{1, 1, 2}, false},
		{[]uint64{3, 2, 1}, false},
		{[]uint64{0, 0}, false},
	}
	for _, tt := range testCases {
		assert.Equal(t, tt.out, IsUint64SortedAndUnique(tt.in), "IsUint64SortedAndUnique(%v)", tt.in)
	}
}
