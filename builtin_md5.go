// builtin_md5.go -- the built-in 128-bit MD5 hash function.
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"crypto/md5"
	"encoding/binary"
)

func init() {
	Register(Entry{Name: "md5", Fn: md5Hash, DigestLen: md5.Size})
}

// md5Hash hashes the little-endian encoding of seed with MD5. Its
// 16-byte digest is given to the CLI's "search"/"crack" commands as
// 32 hex characters.
func md5Hash(seed Seed, scratch []byte) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], seed)

	sum := md5.Sum(buf[:])
	n := copy(scratch, sum[:])
	return scratch[:n]
}
