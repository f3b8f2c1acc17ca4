package sorting

import "golang.org/x/exp/constraints"

// BinarySearch looks for needle in the sorted slice s. It returns (index, found)
// where if found = false, needle is not present in s and index is where it
// would be inserted, and if found = true, s[index] == needle.
//
// If needle appears multiple times in s, the first of those indices is
// returned.
func BinarySearch[T constraints.Ordered](s []T, needle T) (int, bool) {
	var i = 0
	var j = len(s)
	for i < j {
		mid := i + (j-i)/2
		if s[mid] < needle {
			i = mid + 1
		} else {
			j = mid
		}
	}
	if i < len(s) {
		return i, s[i] == needle
	}
	return i, false
}
