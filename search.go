// search.go -- exhaustive parallel search of the full 32-bit seed
// space, used as a fallback when no table covers the target digest.
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"bytes"
	"runtime"
	"sync"
	"sync/atomic"
)

// seedSpace is the size of the full 32-bit seed space.
const seedSpace = uint64(1) << 32

// Crack partitions the full 32-bit seed space into T = max(1,
// runtime.GOMAXPROCS(0)) contiguous, non-overlapping ranges and scans
// each in its own goroutine, comparing H(i) against targetDigest. The
// shared found/seed state is plain atomics with relaxed semantics:
// that is sound here because seed is only ever read by the caller
// after every worker has returned from Wait.
func Crack(h HashFunc, digestLen int, targetDigest []byte) Result {
	t := runtime.GOMAXPROCS(0)
	if t < 1 {
		t = 1
	}
	tu := uint64(t)

	var found atomic.Bool
	var foundSeed atomic.Uint32

	target := targetDigest[:digestLen]
	chunk := seedSpace / tu

	var wg sync.WaitGroup
	for w := uint64(0); w < tu; w++ {
		lo := w * chunk
		hi := lo + chunk
		if w == tu-1 {
			hi = seedSpace
		}

		wg.Add(1)
		go func(lo, hi uint64) {
			defer wg.Done()
			crackRange(lo, hi, h, digestLen, target, &found, &foundSeed)
		}(lo, hi)
	}
	wg.Wait()

	return Result{Seed: foundSeed.Load(), Found: found.Load()}
}

func crackRange(lo, hi uint64, h HashFunc, digestLen int, target []byte, found *atomic.Bool, foundSeed *atomic.Uint32) {
	var scratch [ScratchSize]byte

	for s := lo; s < hi; s++ {
		if found.Load() {
			return
		}

		d := h(uint32(s), scratch[:])
		if bytes.Equal(d[:digestLen], target) {
			foundSeed.Store(uint32(s))
			found.Store(true)
			return
		}
	}
}
