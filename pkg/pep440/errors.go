package pep440

import (
	"errors"
)

// Sentinel errors, for errors.Is.  Errors returned by this package wrap one
// of these and quote the offending input.
var (
	// ErrInvalidVersion is reported by ParseVersion (and nothing else:
	// Parse never fails) for strings that do not match the version
	// grammar.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrInvalidSpecifier is reported by ParseSpecifier for unrecognized
	// operators, operands that the operator does not permit, and operands
	// that fail version parsing.
	ErrInvalidSpecifier = errors.New("invalid specifier")
)
