// Package check holds assertions for programmer errors.
// Anything that can fail at run time because of user input must return an error instead.
package check

import (
	"fmt"
)

// PanicIfErr panics with the error if it is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfNot panics on false.
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

// PanicIfNotf panics on false with the formatted message.
func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}
