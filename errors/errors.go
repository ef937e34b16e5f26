// Package errors provides error handling for gircheck.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints shown to the user next to fatal CLI errors
//
// Usage:
//
//	// Wrap with context
//	if err := parse(path); err != nil {
//	    return errors.Wrapf(err, "failed to parse %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "create the directory before running gircheck")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)

// Sentinel errors for the fatal conditions of a gircheck run.
// Use these with errors.Is() and wrap them with errors.Wrap() to add context.
var (
	// ErrNoSuchFile indicates a referenced input, list or exclusion file is missing
	ErrNoSuchFile = New("no such file or directory")

	// ErrOutputDirMissing indicates the --output directory does not exist
	ErrOutputDirMissing = New("output path does not exist")

	// ErrMalformedRecord indicates a metadata row has the wrong number of fields
	ErrMalformedRecord = New("malformed record")

	// ErrInvalidArgument indicates a flag or argument value could not be used
	ErrInvalidArgument = New("invalid argument")
)

// IsNoSuchFile checks if an error is or wraps ErrNoSuchFile
func IsNoSuchFile(err error) bool {
	return err != nil && Is(err, ErrNoSuchFile)
}

// IsMalformedRecord checks if an error is or wraps ErrMalformedRecord
func IsMalformedRecord(err error) bool {
	return err != nil && Is(err, ErrMalformedRecord)
}

// NewNoSuchFileError reports a missing file. what describes the role of the
// file ("filelist", "excludegtypes", "type information", ...).
func NewNoSuchFileError(path, what string) error {
	return Wrapf(ErrNoSuchFile, "%s: no such %s file", path, what)
}

// NewMalformedRecordError reports a row whose field count does not match.
func NewMalformedRecordError(source string, line, want, got int) error {
	return WithDetailf(
		Wrapf(ErrMalformedRecord, "%s:%d: expected %d fields, got %d", source, line, want, got),
		"rows are comma separated and values must not contain commas",
	)
}
