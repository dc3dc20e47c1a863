// errors.go -- error taxonomy for go-rtcrack
//
// (c) 2024 opencoff contributors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package rtcrack

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownHash is returned when Resolve() is given a name that no
	// registered hash function (builtin or plug-in) publishes.
	ErrUnknownHash = errors.New("rtcrack: unknown hash function")

	// ErrBadTableName is returned when a table filename does not match
	// the "<hash>.<chain_num>.<chain_len>.<index>.rt" convention.
	ErrBadTableName = errors.New("rtcrack: malformed table filename")

	// ErrAlloc is returned when a required buffer or mapping could not
	// be allocated -- e.g. a table file too large to fit an int-sized
	// mmap length on the current platform.
	ErrAlloc = errors.New("rtcrack: allocation failure")

	// ErrFrozen is returned when attempting to append to a table file
	// that has already been closed for writing.
	ErrFrozen = errors.New("rtcrack: table already closed")
)

// IoOp names the syscall class that failed inside an IoError.
type IoOp string

const (
	OpOpen  IoOp = "open"
	OpStat  IoOp = "stat"
	OpMmap  IoOp = "mmap"
	OpRead  IoOp = "read"
	OpWrite IoOp = "write"
	OpClose IoOp = "close"
)

// IoError wraps a low-level I/O failure with the operation that caused
// it and the path involved, so callers can tell "can't open" from
// "short write" without string-matching.
type IoError struct {
	Op   IoOp
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("rtcrack: %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

func ioError(op IoOp, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Op: op, Path: path, Err: err}
}

func errShortWrite(path string, n, want int) error {
	return ioError(OpWrite, path, fmt.Errorf("incomplete write; exp %d, saw %d", want, n))
}

// WorkerFailure aggregates the errors returned by a pool of parallel
// workers (the Generator Pool). Any single worker
// failure makes the whole operation fail; WorkerFailure preserves all
// of them rather than just the first.
type WorkerFailure []error

func (w WorkerFailure) Error() string {
	if len(w) == 1 {
		return fmt.Sprintf("rtcrack: worker failed: %s", w[0])
	}
	return fmt.Sprintf("rtcrack: %d workers failed, first: %s", len(w), w[0])
}

// Unwrap lets errors.Is/As walk into the first recorded failure.
func (w WorkerFailure) Unwrap() error {
	if len(w) == 0 {
		return nil
	}
	return w[0]
}

// joinWorkerErrors folds a slice that may contain nils into either nil
// (no failures) or a WorkerFailure.
func joinWorkerErrors(errs []error) error {
	var w WorkerFailure
	for _, e := range errs {
		if e != nil {
			w = append(w, e)
		}
	}
	if len(w) == 0 {
		return nil
	}
	return w
}
