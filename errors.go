package bitmatch

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeBitCount is returned when a pattern is compiled with a
	// negative number of significant bits.
	ErrNegativeBitCount = errors.New("bit count must be non-negative")
)

// MalformedPatternError indicates an invalid hex digit or nibble value in
// the pattern input.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type MalformedPatternError struct {
	// Position is the zero-based index of the offending digit.
	Position int
	// Char is the offending input byte, if the pattern came from text.
	Char  byte
	cause error
}

func (e *MalformedPatternError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("malformed pattern: invalid hex digit %q at position %d", e.Char, e.Position)
	}
	return fmt.Sprintf("malformed pattern: invalid nibble at position %d", e.Position)
}

func (e *MalformedPatternError) Unwrap() error { return e.cause }

// PatternLengthError indicates that the pattern input holds fewer bits than
// the requested bit count.
type PatternLengthError struct {
	BitCount int
	Digits   int
}

func (e *PatternLengthError) Error() string {
	return fmt.Sprintf("pattern too short: %d hex digits cannot supply %d bits", e.Digits, e.BitCount)
}
