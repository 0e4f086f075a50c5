package errors

import (
	"fmt"
	"testing"
)

func TestCradleError_Error(t *testing.T) {
	err := &CradleError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "note not found",
	}

	expected := "NOT_FOUND: note not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidArgument(t *testing.T) {
	err := NewInvalidArgument("mood level must be between 1 and 5")

	if err.Code != ErrInvalidArgument {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidArgument)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "mood level must be between 1 and 5" {
		t.Errorf("Message = %q, want %q", err.Message, "mood level must be between 1 and 5")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("mood", "01ABC")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["kind"] != "mood" {
		t.Errorf("Details[kind] = %v, want %q", err.Details["kind"], "mood")
	}
	if err.Details["id"] != "01ABC" {
		t.Errorf("Details[id] = %v, want %q", err.Details["id"], "01ABC")
	}
}

func TestNewInternal(t *testing.T) {
	err := NewInternal(fmt.Errorf("disk full"))

	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
	if err.Status != 500 {
		t.Errorf("Status = %d, want 500", err.Status)
	}
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)

	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "matching code",
			err:      NewNotFound("note", "x"),
			code:     ErrNotFound,
			expected: true,
		},
		{
			name:     "different code",
			err:      NewInvalidArgument("bad level"),
			code:     ErrNotFound,
			expected: false,
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("plain"),
			code:     ErrInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}
