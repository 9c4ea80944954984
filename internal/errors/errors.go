// Package errors provides standardized error handling for mixtape.
// It defines common error types, kinds, and helper functions for
// consistent error creation, wrapping, and handling across the
// application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
	// New creates a plain error with the given message
	New = errors.New
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	NotADirectory
	NoMatchingFiles
	// Combine error kinds
	DecodeFailed
	NoValidInput
	EncodeFailed
	// Config error kinds
	InvalidConfig
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to listing and reading input files
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// CombineError represents errors raised while combining tracks
type CombineError struct {
	ApplicationError
	track string
}

// NewCombineError creates a new combine error. track may be empty for
// errors that are not tied to a single input file.
func NewCombineError(msg string, track string, kind ErrorKind, err error) *CombineError {
	return &CombineError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		track: track,
	}
}

// Error returns the combine error message
func (e *CombineError) Error() string {
	if e.track != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.track, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.track)
	}
	return e.ApplicationError.Error()
}

// Track returns the input file associated with the error
func (e *CombineError) Track() string {
	return e.track
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
}

// NewConfigError creates a new config error
func NewConfigError(msg string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
	}
}

// kinder is implemented by all application errors
type kinder interface {
	Kind() ErrorKind
}

// KindOf returns the kind of the first application error in err's
// chain, or Unknown if there is none.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(kinder); ok {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsKind reports whether any error in err's chain has the given kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if k, ok := err.(kinder); ok && k.Kind() == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
