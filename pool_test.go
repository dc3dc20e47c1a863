// pool_test.go -- test suite for the Generator Pool
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"os"
	"testing"
)

func TestGenerateWorkerProducesExactCount(t *testing.T) {
	assert := newAsserter(t)

	h, digestLen, err := Resolve("wikihash")
	assert(err == nil, "resolve: %s", err)

	dir := t.TempDir()
	path := dir + "/worker.rt"

	w, err := CreateTable(path)
	assert(err == nil, "create table: %s", err)

	src := &Source{}
	const n = uint64(500)
	err = generateWorker(n, 10, h, digestLen, w, src)
	assert(err == nil, "generateWorker: %s", err)
	assert(w.Close() == nil, "close")

	st, err := os.Stat(path)
	assert(err == nil, "stat: %s", err)
	assert(st.Size() == int64(n)*chainSize, "got size %d, want %d", st.Size(), int64(n)*chainSize)
}

func TestGenerateSplitsAcrossWorkersAndWritesAll(t *testing.T) {
	assert := newAsserter(t)

	h, digestLen, err := Resolve("wikihash")
	assert(err == nil, "resolve: %s", err)

	dir := t.TempDir()
	path := dir + "/pool.rt"

	w, err := CreateTable(path)
	assert(err == nil, "create table: %s", err)

	const chainNum = uint64(10000)
	err = Generate(chainNum, 16, h, digestLen, w, DefaultSource())
	assert(err == nil, "generate: %s", err)
	assert(w.Close() == nil, "close")

	st, err := os.Stat(path)
	assert(err == nil, "stat: %s", err)
	assert(st.Size() == int64(chainNum)*chainSize, "got size %d, want %d", st.Size(), int64(chainNum)*chainSize)

	mt, err := OpenTableRO(path)
	assert(err == nil, "open: %s", err)
	defer mt.Close()

	assert(len(mt.Chains) == int(chainNum), "got %d chains, want %d", len(mt.Chains), chainNum)

	for _, c := range mt.Chains {
		want := Walk(c.Start, 16, h, digestLen)
		assert(c.End == want, "chain start %#x: got end %#x, want %#x", c.Start, c.End, want)
	}
}

func TestGenerateWorkerBufferFlushesAtBoundary(t *testing.T) {
	assert := newAsserter(t)

	h, digestLen, err := Resolve("wikihash")
	assert(err == nil, "resolve: %s", err)

	dir := t.TempDir()
	path := dir + "/flush.rt"

	w, err := CreateTable(path)
	assert(err == nil, "create table: %s", err)

	// one more than a full buffer forces exactly one mid-run flush plus
	// a final partial flush.
	const n = uint64(generatorBufSize + 1)
	src := &Source{}
	err = generateWorker(n, 4, h, digestLen, w, src)
	assert(err == nil, "generateWorker: %s", err)
	assert(w.Close() == nil, "close")

	st, err := os.Stat(path)
	assert(err == nil, "stat: %s", err)
	assert(st.Size() == int64(n)*chainSize, "got size %d, want %d", st.Size(), int64(n)*chainSize)
}
