package source

import (
	"errors"
	"fmt"
	"io/fs"
)

// errStdinUnavailable is the cause recorded when standard input cannot be read
var errStdinUnavailable = errors.New("standard input is not available")

// errIsDirectory is the cause recorded when a directory is opened as a file
var errIsDirectory = errors.New("is a directory")

// SourceUnavailableError is returned when a source cannot be opened or stops
// being readable part way through.
type SourceUnavailableError struct {
	Name string // Display name of the source
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, reason(e.Err))
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// IsADirectoryError is returned for a directory target when recursion is off.
// It unwraps to a *SourceUnavailableError so callers handling the general case
// also handle this one.
type IsADirectoryError struct {
	Name string
}

func (e *IsADirectoryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, errIsDirectory)
}

func (e *IsADirectoryError) Unwrap() error {
	return &SourceUnavailableError{Name: e.Name, Err: errIsDirectory}
}

// reason strips the operation and path from filesystem errors, since the
// source name is already part of the message
func reason(err error) string {
	if err == nil {
		return "unknown error"
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
