// chain.go -- chain walking: the alternation of a HashFunc and Reduce
// that turns a start seed into a chain endpoint
//
// (c) 2024 opencoff contributors

package rtcrack

import "bytes"

// Walk advances start through chainLen rounds of H -> Reduce and
// returns the resulting seed (the chain's endpoint). Two invocations
// with identical arguments always return the same value.
func Walk(start Seed, chainLen int, h HashFunc, digestLen int) Seed {
	var scratch [ScratchSize]byte

	s := start
	for i := 0; i < chainLen; i++ {
		d := h(s, scratch[:])
		s = Reduce(d[:digestLen], uint32(i))
	}
	return s
}

// Endpoint is an alias for Walk, named for the call sites that care
// about the chain's terminal seed rather than the act of walking it.
func Endpoint(start Seed, chainLen int, h HashFunc, digestLen int) Seed {
	return Walk(start, chainLen, h, digestLen)
}

// Regenerate re-walks the chain rooted at start, comparing H(s)
// against target *before* each reduction step. On the first match it
// returns the seed that produced target and true. If no step matches
// by the time chainLen rounds are exhausted, the chain's endpoint was
// a false positive -- some other start seed produced the same
// endpoint by reduction collision -- and Regenerate reports that via
// the second return value being false.
func Regenerate(start Seed, chainLen int, h HashFunc, digestLen int, target []byte) (Seed, bool) {
	var scratch [ScratchSize]byte

	want := target[:digestLen]
	s := start
	for i := 0; i < chainLen; i++ {
		d := h(s, scratch[:])
		if bytes.Equal(d[:digestLen], want) {
			return s, true
		}
		s = Reduce(d[:digestLen], uint32(i))
	}
	return 0, false
}
