// table.go -- on-disk chain table: sequential writer and mmap'd
// readers/sorter.
//
// The byte-slice <-> []Chain reinterpretation below follows the same
// reflect.SliceHeader + unsafe technique the teacher's mmap.go uses
// for its seed tables, generalized from a single uint32/uint16 word
// to the 8-byte (start, end) Chain record.
//
// (c) 2024 opencoff contributors

package rtcrack

import (
	"fmt"
	"os"
	"reflect"
	"sync"
	"syscall"
	"unsafe"
)

// chainSize is the on-disk size of a single Chain record: two 4-byte
// Seeds, no padding, host-native byte order.
const chainSize = 8

// TableWriter appends Chain records sequentially to a table file
// created empty. Append is safe for concurrent use: the Generator
// Pool's workers all share one TableWriter and rely on its internal
// lock to serialize their buffer flushes.
type TableWriter struct {
	mu     sync.Mutex
	fd     *os.File
	path   string
	closed bool
}

// CreateTable creates (truncating if necessary) the table file at
// path and returns a writer ready to accept Append calls.
func CreateTable(path string) (*TableWriter, error) {
	fd, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, ioError(OpOpen, path, err)
	}
	return &TableWriter{fd: fd, path: path}, nil
}

// Append writes chains to the end of the file under the writer's
// lock. It is the only method on TableWriter safe to call from
// multiple goroutines concurrently.
func (w *TableWriter) Append(chains []Chain) error {
	if len(chains) == 0 {
		return nil
	}

	buf := chainsToBytes(chains)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrFrozen
	}

	n, err := w.fd.Write(buf)
	if err != nil {
		return ioError(OpWrite, w.path, err)
	}
	if n != len(buf) {
		return errShortWrite(w.path, n, len(buf))
	}
	return nil
}

// Close closes the underlying file. No separate flush is required:
// this is a plain sequential writer, not a mapping. Once Close
// returns, further Append calls fail with ErrFrozen rather than
// writing to (or panicking on) a closed file descriptor.
func (w *TableWriter) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	if err := w.fd.Close(); err != nil {
		return ioError(OpClose, w.path, err)
	}
	return nil
}

// MmappedTable is a table file memory-mapped in its entirety and
// reinterpreted as a []Chain, with no intervening copy.
type MmappedTable struct {
	Chains []Chain

	raw  []byte
	fd   *os.File
	path string
}

// OpenTableRW opens path for reading and writing and maps it
// MAP_SHARED so in-place mutation (the Sorter) is visible to the
// backing file once the mapping is torn down.
func OpenTableRW(path string) (*MmappedTable, error) {
	return openTable(path, os.O_RDWR, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
}

// OpenTableRO opens path read-only and maps it for the Lookup Engine.
func OpenTableRO(path string) (*MmappedTable, error) {
	return openTable(path, os.O_RDONLY, syscall.PROT_READ, syscall.MAP_PRIVATE)
}

func openTable(path string, flag int, prot, mapFlags int) (*MmappedTable, error) {
	fd, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, ioError(OpOpen, path, err)
	}

	st, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, ioError(OpStat, path, err)
	}

	size := st.Size()
	if size == 0 || size%chainSize != 0 {
		fd.Close()
		return nil, ioError(OpMmap, path, fmt.Errorf("file size %d is not a multiple of %d", size, chainSize))
	}
	if int64(int(size)) != size {
		// the file is too large to address with a single int-sized
		// mapping on this platform (only reachable on 32-bit builds).
		fd.Close()
		return nil, ioError(OpMmap, path, ErrAlloc)
	}

	raw, err := syscall.Mmap(int(fd.Fd()), 0, int(size), prot, mapFlags)
	if err != nil {
		fd.Close()
		return nil, ioError(OpMmap, path, err)
	}

	return &MmappedTable{
		Chains: bytesToChains(raw),
		raw:    raw,
		fd:     fd,
		path:   path,
	}, nil
}

// Close unmaps the table and closes the file. For a table opened with
// OpenTableRW, the MAP_SHARED mapping means dirty pages are flushed to
// disk by the OS as part of (or before) the unmap -- no explicit write
// call is needed.
func (t *MmappedTable) Close() error {
	if err := syscall.Munmap(t.raw); err != nil {
		return ioError(OpMmap, t.path, err)
	}
	if err := t.fd.Close(); err != nil {
		return ioError(OpClose, t.path, err)
	}
	return nil
}

// bytesToChains reinterprets a raw byte slice -- typically an mmap'd
// table file -- as a slice of Chain records in place.
func bytesToChains(b []byte) []Chain {
	n := len(b) / chainSize
	bh := (*reflect.SliceHeader)(unsafe.Pointer(&b))

	var v []Chain
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&v))
	sh.Data = bh.Data
	sh.Len = n
	sh.Cap = n
	return v
}

// chainsToBytes is the inverse of bytesToChains, used to hand freshly
// produced chains to a plain io.Writer.
func chainsToBytes(c []Chain) []byte {
	n := len(c)
	ch := (*reflect.SliceHeader)(unsafe.Pointer(&c))

	var v []byte
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&v))
	sh.Data = ch.Data
	sh.Len = n * chainSize
	sh.Cap = n * chainSize
	return v
}
