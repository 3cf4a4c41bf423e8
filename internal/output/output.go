// Package output persists encoded audio to disk.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// FileMode is the permission used when creating output files.
const FileMode = 0o644

// ErrIncompleteWrite is returned when fewer bytes than requested were written.
var ErrIncompleteWrite = errors.New("incomplete write")

// Error describes a failed open, write or close of an output file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WriteFile creates or truncates path and writes buf to it in full.
// A partially written file is left in place on failure.
func WriteFile(path string, buf []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return &Error{Op: "open", Path: path, Err: unwrapPathError(err)}
	}

	if err := Write(f, buf); err != nil {
		f.Close()
		return &Error{Op: "write", Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &Error{Op: "close", Path: path, Err: unwrapPathError(err)}
	}
	return nil
}

// Write writes buf to w in a single call and treats a short write as failure.
func Write(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if n < len(buf) {
		if err == nil || errors.Is(err, io.ErrShortWrite) {
			return fmt.Errorf("%w: wrote %d of %d bytes", ErrIncompleteWrite, n, len(buf))
		}
		return fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrIncompleteWrite, n, len(buf), err)
	}
	return err
}

// unwrapPathError strips the *os.PathError layer so the path is not repeated.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
