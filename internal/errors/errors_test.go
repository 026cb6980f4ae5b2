package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      stderrors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "validation error",
			err:      NewValidationError("achievement", "text cannot be empty"),
			expected: "Error: invalid achievement: text cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load %s", "user")
	if got != "Error: failed to load user" {
		t.Errorf("unexpected result: %q", got)
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := fmt.Errorf("saving user: %w", NewStorageError("set", "ia_resource_user", cause))

	if !IsStorage(err) {
		t.Fatal("expected wrapped StorageError to be detected")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}

	var se *StorageError
	if !stderrors.As(err, &se) {
		t.Fatal("expected errors.As to find StorageError")
	}
	if se.Op != "set" || se.Key != "ia_resource_user" {
		t.Errorf("unexpected fields: op=%s key=%s", se.Op, se.Key)
	}
}

func TestNewStorageError_Nil(t *testing.T) {
	if err := NewStorageError("get", "k", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(fmt.Errorf("wrap: %w", NewValidationError("", "bad"))) {
		t.Error("expected wrapped ValidationError to be detected")
	}
	if IsValidation(stderrors.New("plain")) {
		t.Error("plain error is not a ValidationError")
	}
	if IsStorage(NewValidationError("x", "y")) {
		t.Error("ValidationError is not a StorageError")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain", err: stderrors.New("boom"), want: ExitFailure},
		{name: "not onboarded", err: fmt.Errorf("remind: %w", ErrNotOnboarded), want: ExitNotOnboarded},
		{name: "validation", err: NewValidationError("user", "name cannot be empty"), want: ExitInvalidInput},
		{name: "storage", err: NewStorageError("set", "ia_resource_moods", stderrors.New("disk full")), want: ExitStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFatal_ExitsWithCode(t *testing.T) {
	old := exit
	t.Cleanup(func() { exit = old })

	var codes []int
	exit = func(code int) { codes = append(codes, code) }

	Fatal(nil)
	Fatal(NewValidationError("achievement", "text cannot be empty"))
	if len(codes) != 1 || codes[0] != ExitInvalidInput {
		t.Errorf("exit codes = %v, want [%d]", codes, ExitInvalidInput)
	}
}
