package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
}

func TestAssertEqual_WithMessage(t *testing.T) {
	AssertEqual(t, "hello", "hello", "custom message")
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertError_Success(t *testing.T) {
	AssertError(t, errors.New("test error"))
	AssertError(t, errors.New("test"), "expected error from %s", "operation")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, sentinel, sentinel)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "hello world", "hello")
	AssertContains(t, "test", "")
}

func TestAssertTrue_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, len("hello") == 5)
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, nil)
	AssertNil(t, p)

	var s []int
	AssertNil(t, s)
}

func TestIsNil(t *testing.T) {
	var p *int
	var s []int
	var m map[string]int

	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", p, true},
		{"nil slice", s, true},
		{"nil map", m, true},
		{"non-nil value", 42, false},
		{"non-nil string", "x", false},
		{"non-empty slice", []int{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"message"}, "message"},
		{"single non-string", []interface{}{42}, "42"},
		{"format string", []interface{}{"value %d", 7}, "value 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
