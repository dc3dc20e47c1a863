// reduce.go -- deterministic digest -> seed reduction
//
// (c) 2024 opencoff contributors

package rtcrack

import "encoding/binary"

// seedWidth is the byte width of a Seed (w in spec terms).
const seedWidth = 4

// Reduce deterministically compresses digest into a Seed, salted by
// round so that chain positions sharing a digest value still diverge.
//
// The algorithm XOR-folds every complete little-endian 4-byte word of
// digest into an accumulator, then *adds* (not XORs) whatever trailing
// bytes are left over -- read from the tail of digest, last byte
// first -- before XOR-ing in round. The XOR/add asymmetry between the
// word-fold and the tail-mix is part of the contract: tables produced
// by one implementation are unreadable by another that "fixes" it.
func Reduce(digest []byte, round uint32) Seed {
	n := len(digest)
	var acc uint32

	nWords := n / seedWidth
	for w := 0; w < nWords; w++ {
		off := w * seedWidth
		acc ^= binary.LittleEndian.Uint32(digest[off : off+seedWidth])
	}

	rem := n % seedWidth
	for i := 0; i < rem; i++ {
		pos := n - 1 - i
		acc += uint32(digest[pos])
	}

	return acc ^ round
}
