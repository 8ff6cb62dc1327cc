// Package errors provides sentinel errors and error types for the rules engine.
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
	// ErrMalformedInput indicates a position record that could not be decoded.
	ErrMalformedInput = errors.New("malformed input")

	// ErrIllegalMove indicates a move absent from the legal-move map.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation indicates a corrupted position, such as a
	// missing king. The game session cannot continue past it.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move request after the game has ended.
	ErrGameOver = errors.New("game is over")
)

// MalformedInputError describes why a serialized position was rejected.
// Field is the 1-based field index (0 if the whole record is at fault),
// Row is the 1-based placement row counted from rank 8 (0 if not
// applicable) and Char is the offending character (0 if none).
type MalformedInputError struct {
	Field     int
	FieldName string
	Row       int
	Char      rune
	Value     string
	Reason    string
}

// Error returns a formatted error message including all available context.
func (e *MalformedInputError) Error() string {
	var parts []string

	if e.Field > 0 {
		if e.FieldName != "" {
			parts = append(parts, fmt.Sprintf("field %d (%s)", e.Field, e.FieldName))
		} else {
			parts = append(parts, fmt.Sprintf("field %d", e.Field))
		}
	}
	if e.Row > 0 {
		parts = append(parts, fmt.Sprintf("row %d", e.Row))
	}
	if e.Char != 0 {
		parts = append(parts, fmt.Sprintf("character %q", e.Char))
	} else if e.Value != "" {
		parts = append(parts, fmt.Sprintf("value %q", e.Value))
	}

	reason := e.Reason
	if reason == "" {
		reason = "invalid"
	}
	parts = append(parts, reason)

	return fmt.Sprintf("%v: %s", ErrMalformedInput, strings.Join(parts, ": "))
}

// Unwrap returns ErrMalformedInput.
func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// IllegalMoveError reports a move request that is not in the legal-move
// map. The caller's position is unchanged.
type IllegalMoveError struct {
	Piece  string // description of the piece, e.g. "White Knight g1"
	From   string
	To     string
	Reason string
}

// Error returns a formatted error message.
func (e *IllegalMoveError) Error() string {
	var parts []string
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if len(parts) == 0 {
		return ErrIllegalMove.Error()
	}
	return fmt.Sprintf("%v: %s", ErrIllegalMove, strings.Join(parts, ": "))
}

// Unwrap returns ErrIllegalMove.
func (e *IllegalMoveError) Unwrap() error {
	return ErrIllegalMove
}

// InvariantViolation reports engine-internal corruption of a position.
type InvariantViolation struct {
	Colour string // side whose invariant failed, if any
	Reason string
}

// Error returns a formatted error message.
func (e *InvariantViolation) Error() string {
	if e.Colour != "" {
		return fmt.Sprintf("%v: %s: %s", ErrInvariantViolation, e.Colour, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrInvariantViolation, e.Reason)
}

// Unwrap returns ErrInvariantViolation.
func (e *InvariantViolation) Unwrap() error {
	return ErrInvariantViolation
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
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
