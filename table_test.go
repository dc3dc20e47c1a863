// table_test.go -- test suite for TableWriter and MmappedTable
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"os"
	"testing"
)

func TestTableWriterAppendAndReopenRO(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	path := dir + "/basic.rt"

	w, err := CreateTable(path)
	assert(err == nil, "create: %s", err)

	chains := []Chain{
		{Start: 1, End: 100},
		{Start: 2, End: 50},
		{Start: 3, End: 75},
	}
	assert(w.Append(chains) == nil, "append")
	assert(w.Close() == nil, "close")

	mt, err := OpenTableRO(path)
	assert(err == nil, "open ro: %s", err)
	defer mt.Close()

	assert(len(mt.Chains) == len(chains), "got %d chains, want %d", len(mt.Chains), len(chains))
	for i, c := range chains {
		assert(mt.Chains[i] == c, "chain %d: got %+v, want %+v", i, mt.Chains[i], c)
	}
}

func TestTableWriterAppendAfterCloseReturnsErrFrozen(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	path := dir + "/frozen.rt"

	w, err := CreateTable(path)
	assert(err == nil, "create: %s", err)
	assert(w.Append([]Chain{{Start: 1, End: 1}}) == nil, "append")
	assert(w.Close() == nil, "close")

	err = w.Append([]Chain{{Start: 2, End: 2}})
	assert(err == ErrFrozen, "expected ErrFrozen, got %v", err)
}

func TestTableWriterAppendEmptyIsNoop(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	path := dir + "/empty.rt"

	w, err := CreateTable(path)
	assert(err == nil, "create: %s", err)
	assert(w.Append(nil) == nil, "append nil")
	assert(w.Close() == nil, "close")

	st, err := os.Stat(path)
	assert(err == nil, "stat: %s", err)
	assert(st.Size() == 0, "expected empty file, got size %d", st.Size())
}

func TestOpenTableRejectsEmptyFile(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	path := dir + "/zero.rt"

	f, err := os.Create(path)
	assert(err == nil, "create: %s", err)
	assert(f.Close() == nil, "close")

	_, err = OpenTableRO(path)
	assert(err != nil, "expected error opening a zero-length table")
}

func TestOpenTableRejectsMisalignedSize(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	path := dir + "/misaligned.rt"

	assert(os.WriteFile(path, make([]byte, chainSize+1), 0644) == nil, "write")

	_, err := OpenTableRO(path)
	assert(err != nil, "expected error opening a table whose size is not a multiple of chainSize")
}

func TestOpenTableRWMutationPersists(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	path := dir + "/rw.rt"

	w, err := CreateTable(path)
	assert(err == nil, "create: %s", err)
	chains := []Chain{
		{Start: 1, End: 3},
		{Start: 2, End: 1},
		{Start: 3, End: 2},
	}
	assert(w.Append(chains) == nil, "append")
	assert(w.Close() == nil, "close")

	mt, err := OpenTableRW(path)
	assert(err == nil, "open rw: %s", err)
	Sort(mt.Chains)
	assert(mt.Close() == nil, "close rw")

	reread, err := OpenTableRO(path)
	assert(err == nil, "reopen ro: %s", err)
	defer reread.Close()

	for i := 1; i < len(reread.Chains); i++ {
		assert(reread.Chains[i-1].End <= reread.Chains[i].End, "sort did not persist to disk at %d", i)
	}
}

func TestBytesToChainsAndBackRoundTrip(t *testing.T) {
	assert := newAsserter(t)

	chains := []Chain{
		{Start: 10, End: 20},
		{Start: 30, End: 40},
	}
	buf := chainsToBytes(chains)
	assert(len(buf) == len(chains)*chainSize, "got %d bytes, want %d", len(buf), len(chains)*chainSize)

	back := bytesToChains(buf)
	assert(len(back) == len(chains), "round trip length mismatch")
	for i, c := range chains {
		assert(back[i] == c, "round trip %d: got %+v, want %+v", i, back[i], c)
	}
}
