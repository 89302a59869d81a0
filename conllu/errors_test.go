package conllu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/conllu-go/internal/testutil"
)

func TestParseError_Message(t *testing.T) {
	err := &ParseError{
		Err:      fmt.Errorf("%w: %q", ErrInvalidTokenID, "x"),
		Line:     12,
		Sentence: 3,
		Text:     "x\tbad\t_\t_\t_\t_\t_\t_\t_\t_",
	}

	msg := err.Error()
	testutil.AssertContains(t, msg, "line 12")
	testutil.AssertContains(t, msg, "sentence 3")
	testutil.AssertContains(t, msg, "invalid token id")
	testutil.AssertContains(t, msg, "x\\tbad")
}

func TestParseError_MessageWithoutContext(t *testing.T) {
	err := &ParseError{Err: ErrMalformedLine, Line: 1}
	testutil.AssertEqual(t, err.Error(), "line 1: malformed line")
}

func TestParseError_Unwrap(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"malformed line", ErrMalformedLine},
		{"invalid token id", ErrInvalidTokenID},
		{"invalid head", ErrInvalidHead},
		{"invalid field", ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ParseError{Err: fmt.Errorf("%w: detail", tt.sentinel), Line: 7, Sentence: 2}

			testutil.AssertErrorIs(t, err, tt.sentinel)

			var perr *ParseError
			testutil.AssertTrue(t, errors.As(error(err), &perr))
			testutil.AssertEqual(t, perr.Line, 7)
			testutil.AssertEqual(t, perr.Sentence, 2)
		})
	}
}

func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{ErrMalformedLine, ErrInvalidTokenID, ErrInvalidHead, ErrInvalidField}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
