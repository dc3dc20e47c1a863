// lookup.go -- walk a target digest through every possible chain
// position and confirm candidates against a sorted table
//
// (c) 2024 opencoff contributors

package rtcrack

import "sort"

// binarySearchFirst returns the lowest index in table (which must
// already be sorted non-decreasingly by End) whose End equals target,
// and true. If no chain has that endpoint it returns (0, false).
// Duplicate endpoints are all adjacent after Sort, so the caller can
// enumerate every one of them linearly from this index.
func binarySearchFirst(table []Chain, target Seed) (int, bool) {
	idx := sort.Search(len(table), func(i int) bool {
		return table[i].End >= target
	})
	if idx >= len(table) || table[idx].End != target {
		return 0, false
	}
	return idx, true
}

// Search recovers the seed that produced targetDigest by trying every
// possible position j of the digest within an unknown chain: for each
// j it replays the remaining chainLen-1-j steps, reduces to a
// candidate endpoint, and looks that endpoint up in table. Every chain
// sharing that endpoint is regenerated from its start to reject false
// positives caused by reduction collisions, until one of them actually
// reproduces targetDigest.
func Search(table []Chain, chainLen int, h HashFunc, digestLen int, targetDigest []byte) (Result, error) {
	var scratch [ScratchSize]byte

	target := targetDigest[:digestLen]
	tmp := make([]byte, digestLen)

	for j := chainLen - 1; j >= 0; j-- {
		copy(tmp, target)

		for i := j; i <= chainLen-2; i++ {
			r := Reduce(tmp, uint32(i))
			d := h(r, scratch[:])
			copy(tmp, d[:digestLen])
		}
		r := Reduce(tmp, uint32(chainLen-1))

		idx, ok := binarySearchFirst(table, r)
		if !ok {
			continue
		}

		for idx < len(table) && table[idx].End == r {
			if seed, ok := Regenerate(table[idx].Start, chainLen, h, digestLen, target); ok {
				return Result{Seed: seed, Found: true}, nil
			}
			idx++
		}
	}

	return Result{}, nil
}
