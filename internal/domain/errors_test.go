package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("code", "required")

	if got := err.Error(); got != "validation: code: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "code", Message: "required"},
		{Field: "requester_id", Message: "must be non-zero"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("lookup: %w", NewValidationError("code", "digits only"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find *ValidationError through wrapping")
	}
	if ve.Errors[0].Field != "code" {
		t.Errorf("field: got %q, want %q", ve.Errors[0].Field, "code")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrLookupFailed}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
