package common

import (
	"errors"
	"testing"
)

func TestValidationErrorsWrapErrValidation(t *testing.T) {
	for _, err := range []error{ErrRequiredField, ErrPasswordMismatch} {
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%v must match ErrValidation", err)
		}
	}
	if errors.Is(ErrRequiredField, ErrPasswordMismatch) {
		t.Fatalf("validation causes must stay distinguishable")
	}
}
