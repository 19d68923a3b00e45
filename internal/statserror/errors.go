// Package statserror defines the error taxonomy of the statistic pipeline:
// caller errors, read faults and write faults. Parse anomalies are not errors
// for callers; ParseError exists only to describe them in debug logs.
package statserror

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinels for errors.Is classification.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRead            = errors.New("read failed")
	ErrWrite           = errors.New("write failed")
)

// ArgumentError reports an invalid caller-supplied identifier, such as a
// blank input or output path. It is raised before any resource is touched.
type ArgumentError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ReadError wraps a failure to open or read the input source.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("can't read file %s: %v", e.Path, causeFor(e.Path, e.Err))
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRead.
func (e *ReadError) Is(target error) bool {
	return target == ErrRead
}

// WriteError wraps a failure to write the report destination.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("can't write file %s: %v", e.Path, causeFor(e.Path, e.Err))
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// causeFor drops the path from a *fs.PathError naming the same file, so the
// message carries it once.
func causeFor(path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Path == path {
		return pathErr.Err
	}
	return err
}

// ParseError describes an input line the aggregator tolerated, either by
// skipping it or by substituting a zero amount.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("line %d: unusable %s='%s'", e.Line, e.Field, e.Value)
	}
	return fmt.Sprintf("line %d: failed to parse %s='%s': %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
