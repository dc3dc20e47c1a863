// builtin_fasthash.go -- a third built-in hash function, wiring the
// teacher's go-fasthash dependency into the registry.
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"encoding/binary"

	"github.com/opencoff/go-fasthash"
)

// fasthashSalt mirrors the teacher's own use of fasthash.Hash64 with a
// fixed salt (see example/text.go's makeRecord); here it just keeps
// this built-in distinguishable from a bare unsalted hash.
const fasthashSalt uint64 = 0xf00dcafef00dcafe

func init() {
	Register(Entry{Name: "fasthash", Fn: fasthashHash, DigestLen: 8})
}

func fasthashHash(seed Seed, scratch []byte) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], seed)

	v := fasthash.Hash64(fasthashSalt, buf[:])
	binary.LittleEndian.PutUint64(scratch, v)
	return scratch[:8]
}
