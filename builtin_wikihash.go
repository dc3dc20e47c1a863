// builtin_wikihash.go -- a Mersenne-Twister emulation used as the
// canonical built-in hash for the package's generate/search test
// scenarios.
//
// (c) 2024 opencoff contributors

package rtcrack

import "encoding/binary"

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff

	// mtFillWords is how much of the mtN-word state array the
	// initializer actually fills. A full MT19937 init walks all
	// mtN words, but the only output this hash ever extracts is
	// the very first tempered value, which depends solely on
	// mt[0], mt[1] and mt[mtM]. Stopping the fill at mtN-200
	// skips part of the words this hash never reads; any value
	// above mtM yields the same digests.
	mtFillWords = mtN - 200
)

func init() {
	Register(Entry{Name: "wikihash", Fn: wikihash, DigestLen: 4})
}

// wikihash emulates a target language's seeded Mersenne-Twister PRNG
// and returns its first generated 32-bit output as a 4-byte digest.
func wikihash(seed Seed, scratch []byte) []byte {
	var mt [mtFillWords]uint32

	mt[0] = seed
	for i := 1; i < mtFillWords; i++ {
		prev := mt[i-1]
		mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}

	y := (mt[0] & mtUpperMask) | (mt[1] & mtLowerMask)
	var mag uint32
	if y&1 != 0 {
		mag = mtMatrixA
	}
	next := mt[mtM] ^ (y >> 1) ^ mag

	next ^= next >> 11
	next ^= (next << 7) & 0x9d2c5680
	next ^= (next << 15) & 0xefc60000
	next ^= next >> 18

	binary.LittleEndian.PutUint32(scratch, next)
	return scratch[:4]
}
