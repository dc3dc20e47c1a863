// types.go -- core data types shared across the engine
//
// (c) 2024 opencoff contributors

package rtcrack

// Seed is the canonical name for a 32-bit PRNG input: everything this
// engine produces, stores and recovers is a Seed.
type Seed = uint32

// ScratchSize is the minimum size of the scratch buffer a caller must
// supply to a HashFunc. Only the first DigestLen bytes of whatever the
// function writes are meaningful.
const ScratchSize = 64

// HashFunc computes the digest of seed and writes it into the first
// DigestLen(fn) bytes of scratch, returning that prefix. scratch must
// be at least ScratchSize bytes; the returned slice aliases it and is
// only valid until the next call. Implementations must be pure and
// reentrant: no mutable shared state, safe to call concurrently from
// many goroutines with distinct scratch buffers.
type HashFunc func(seed Seed, scratch []byte) []byte

// Entry names a single registered hash function and the digest width
// it produces.
type Entry struct {
	Name      string
	Fn        HashFunc
	DigestLen int
}

// Chain is a single precomputed walk through alternations of a
// HashFunc and Reduce: eight bytes on disk, host-native byte order,
// no padding.
type Chain struct {
	Start Seed
	End   Seed
}

// Result is the outcome of a Search or Crack: either a recovered seed
// or "not found" -- which is a successful result, not an error.
type Result struct {
	Seed  Seed
	Found bool
}
