// Package errors provides sentinel errors and error types for chessington.
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
	// ErrPieceNotFound indicates a piece that is not placed on the board.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrInvalidCoordinate indicates a row or column outside the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrEmptySquare indicates a relocation from a square holding no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrInvalidFEN indicates a malformed FEN placement string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed algebraic square name.
	ErrInvalidSquare = errors.New("invalid square name")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors raised while locating or relocating a piece.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	Piece string // Piece description, e.g. "White Pawn"
	From  string // Origin square (if known)
	To    string // Destination square (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("%s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, "from "+e.From)
	case e.To != "":
		parts = append(parts, "to "+e.To)
	}

	context := strings.Join(parts, " ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with position context.
// It's used for FEN placements and square names.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Offset   int    // Byte offset into Input (0-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q at offset %d", e.Input, e.Offset))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
