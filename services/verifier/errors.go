package verifier

import (
	"errors"
	"fmt"
)

var ErrVerificationMismatch = errors.New("value read back differs from the value written")

type MismatchError struct {
	Method   string
	Expected any
	Actual   any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s returned %v, expected %v", ErrVerificationMismatch, e.Method, e.Actual, e.Expected)
}

func (e *MismatchError) Unwrap() error {
	return ErrVerificationMismatch
}
