// sort.go -- in-place sort of a mmap'd table by chain endpoint
//
// (c) 2024 opencoff contributors

package rtcrack

// Sort orders table in place so that table[i].End <= table[i+1].End
// for every i -- the precondition the Lookup Engine's binary search
// relies on. It uses a median-of-one (first element) pivot and a
// single-direction Lomuto partition, descending into the smaller of
// the two partitions by recursion and looping on the larger one so
// stack depth stays O(log n) regardless of input order -- the same
// shape the corpus's own quicksort
// (SnellerInc/sneller/internal/sort/uint64_quicksort_impl.go) uses,
// adapted from its two-pointer Hoare partition to the single-direction
// Lomuto partition this contract requires.
func Sort(table []Chain) {
	sortRange(table, 0, len(table)-1)
}

func sortRange(a []Chain, lo, hi int) {
	for lo < hi {
		p := partition(a, lo, hi)

		if p-lo < hi-p {
			sortRange(a, lo, p-1)
			lo = p + 1
		} else {
			sortRange(a, p+1, hi)
			hi = p - 1
		}
	}
}

// partition places every element with End <= the pivot (a[lo].End) to
// the left of the returned index, and every element with End > pivot
// to its right.
func partition(a []Chain, lo, hi int) int {
	pivot := a[lo].End

	i := lo
	for j := lo + 1; j <= hi; j++ {
		if a[j].End <= pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[lo], a[i] = a[i], a[lo]
	return i
}
