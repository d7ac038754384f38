package edgedetect

import (
	"errors"
	"fmt"
)

// Kind classifies processing failures.
type Kind string

const (
	// KindRead means the source could not be opened or decoded.
	KindRead Kind = "read"

	// KindWrite means the edge map could not be encoded or persisted.
	KindWrite Kind = "write"
)

// Result strings handed to callers that only speak strings.
const (
	ReadFailureMessage  = "Error: Failed to read image"
	WriteFailureMessage = "Error: Failed to write image"
)

// Sentinel errors for errors.Is checks against an *Error.
var (
	ErrReadImage          = errors.New("failed to read image")
	ErrWriteImage         = errors.New("failed to write image")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// Error is returned by ProcessFile. It keeps the underlying cause, so
// errors.Is(err, fs.ErrNotExist) separates a missing source from a corrupt one
// even though both are KindRead.
type Error struct {
	Kind Kind
	Path string // source for KindRead, output for KindWrite
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches ErrReadImage or ErrWriteImage according to Kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindRead:
		return target == ErrReadImage
	case KindWrite:
		return target == ErrWriteImage
	}
	return false
}

func readError(path string, err error) *Error {
	return &Error{Kind: KindRead, Path: path, Err: err}
}

func writeError(path string, err error) *Error {
	return &Error{Kind: KindWrite, Path: path, Err: err}
}

// Message converts an error from ProcessFile into the string result form.
// It returns "" for a nil error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrReadImage):
		return ReadFailureMessage
	case errors.Is(err, ErrWriteImage):
		return WriteFailureMessage
	default:
		return "Error: " + err.Error()
	}
}
