// builtin_siphash.go -- a second built-in hash function, wiring the
// teacher's siphash dependency into the registry as an 8-byte-digest
// option.
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// siphashK0/siphashK1 are a fixed process-wide key. There is no
// secrecy requirement here -- this is a hash-function plug-in, not an
// authentication primitive -- so a constant key keeps tables
// reproducible across runs and machines.
const (
	siphashK0 = 0x736970686173682d
	siphashK1 = 0x3234206b6579
)

func init() {
	Register(Entry{Name: "siphash", Fn: siphashHash, DigestLen: 8})
}

func siphashHash(seed Seed, scratch []byte) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], seed)

	v := siphash.Hash(siphashK0, siphashK1, buf[:])
	binary.LittleEndian.PutUint64(scratch, v)
	return scratch[:8]
}
