// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates malformed SAN or UCI move text.
	ErrParseFailure = errors.New("parse failure")

	// ErrNoMatchingMove indicates move text that matches no legal move.
	ErrNoMatchingMove = errors.New("no matching legal move")

	// ErrAmbiguousMove indicates move text that matches several legal moves.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrInvalidDepth indicates a search depth that is not positive.
	ErrInvalidDepth = errors.New("search depth must be positive")

	// ErrKingMissing indicates a position without a king for a queried colour.
	ErrKingMissing = errors.New("king missing from position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotLastMove indicates an attempt to unmake a move that is not the latest one.
	ErrNotLastMove = errors.New("move is not the last move played")

	// ErrSearchFailed indicates that a search task failed and no move was chosen.
	ErrSearchFailed = errors.New("search failed")
)

// ParseError represents a failure to parse FEN, SAN or UCI text.
// Text always carries the offending input.
type ParseError struct {
	Err    error  // The underlying error
	Text   string // The text that failed to parse
	Field  string // The FEN field or notation component (if known)
	Reason string // Human readable detail (if any)
}

// Error returns a formatted error message with the offending text.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, fmt.Sprintf("%q", e.Text))
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError builds a ParseError for text with an optional reason.
func NewParseError(err error, text, reason string) *ParseError {
	return &ParseError{Err: err, Text: text, Reason: reason}
}

// InvariantError reports a broken internal invariant. It is used as a panic
// payload: the condition is a programming or data error, never a normal result.
type InvariantError struct {
	Err    error
	Detail string
}

// Error returns the invariant violation message.
func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("internal invariant violated: %v", e.Err)
	}
	return fmt.Sprintf("internal invariant violated: %s: %v", e.Detail, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
