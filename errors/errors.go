// Package errors provides error handling for mwn.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, error wrapping, and hint/detail annotations, plus the sentinel
// errors shared across the module.
//
// Usage:
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check error kinds
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle absence
//	}
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors for use across mwn.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the kind.
var (
	// ErrNotFound indicates the requested entity does not exist in any
	// consulted store. Absence is an ordinary outcome, not a failure.
	ErrNotFound = New("not found")

	// ErrAmbiguous indicates a uniqueness-required lookup matched more
	// than one candidate. The wrapping error carries the candidate keys.
	ErrAmbiguous = New("ambiguous")

	// ErrMalformedID indicates a synset identifier or tag string that
	// cannot be decoded by the fixed-layout rules.
	ErrMalformedID = New("malformed identifier")

	// ErrInvalidRelationType indicates a relation type requested for a
	// part of speech that does not define it. This signals caller misuse,
	// distinct from "no such relations exist".
	ErrInvalidRelationType = New("invalid relation type")
)

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsAmbiguous checks if an error is or wraps ErrAmbiguous.
func IsAmbiguous(err error) bool {
	return err != nil && Is(err, ErrAmbiguous)
}

// IsMalformedID checks if an error is or wraps ErrMalformedID.
func IsMalformedID(err error) bool {
	return err != nil && Is(err, ErrMalformedID)
}

// IsInvalidRelationType checks if an error is or wraps ErrInvalidRelationType.
func IsInvalidRelationType(err error) bool {
	return err != nil && Is(err, ErrInvalidRelationType)
}

// NewNotFound creates a not-found error with a formatted message.
func NewNotFound(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}
