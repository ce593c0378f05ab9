package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
)

// Operations reported in Error.Op.
const (
	OpOpen  = "open"
	OpRead  = "read"
	OpApply = "apply"
)

var (
	// ErrIO matches any Error raised while opening or reading the source.
	ErrIO = errors.New("dotenv i/o error")

	// ErrInvalidUTF8 indicates a line that is not valid UTF-8
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrUnknownPolicy indicates a Policy value other than Override or Skip
	ErrUnknownPolicy = errors.New("unknown policy")
)

// Error describes a failed load. The first failure aborts the load, so at
// most one Error is returned per call.
type Error struct {
	Op   string // OpOpen, OpRead or OpApply
	Path string // empty when loading from a reader
	Line int    // 1-based, 0 when no line was read
	Key  string // set for OpApply
	Err  error
}

func (e *Error) Error() string {
	loc := e.Path
	if e.Line > 0 {
		if loc == "" {
			loc = fmt.Sprintf("line %d", e.Line)
		} else {
			loc = fmt.Sprintf("%s:%d", loc, e.Line)
		}
	}
	msg := "dotenv: " + e.Op
	if loc != "" {
		msg += " " + loc
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" (key %q)", e.Key)
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap allows errors.Is and errors.As to reach the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports open and read failures as ErrIO.
func (e *Error) Is(target error) bool {
	return target == ErrIO && (e.Op == OpOpen || e.Op == OpRead)
}

// IsIO checks if err came from opening or reading the source
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsNotExist checks if err was caused by a missing file
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
