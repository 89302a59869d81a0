package conllu

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four ways a data line can be rejected.
// Use these with errors.Is() to classify a parse failure.
var (
	// ErrMalformedLine indicates a non-blank, non-comment line that does not
	// split into exactly ten tab-separated fields.
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidTokenID indicates an ID field that matches none of the
	// single, range or empty-node shapes, or a range with start >= end.
	ErrInvalidTokenID = errors.New("invalid token id")

	// ErrInvalidHead indicates a HEAD field that is neither "_" nor a
	// non-negative integer.
	ErrInvalidHead = errors.New("invalid head")

	// ErrInvalidField indicates a FEATS or DEPS entry that cannot be split
	// into its key/value or head/relation parts.
	ErrInvalidField = errors.New("invalid field")
)

// ParseError describes the rejection of one sentence. It wraps one of the
// sentinel errors above and records where in the input the offending line
// was found. It supports unwrapping with errors.Is() and errors.As().
type ParseError struct {
	Err      error  // the underlying error
	Line     int    // 1-based line number in the input
	Sentence int    // 1-based ordinal of the sentence being built
	Text     string // the raw offending line
}

// Error returns a formatted message with line and sentence context.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d", e.Line)
	if e.Sentence > 0 {
		msg += fmt.Sprintf(" (sentence %d)", e.Sentence)
	}
	msg += ": " + e.Err.Error()
	if e.Text != "" {
		msg += fmt.Sprintf(": %q", e.Text)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
