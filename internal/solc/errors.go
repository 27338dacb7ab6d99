package solc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCompilation       = errors.New("compilation failed")
	ErrCompilerNotFound  = errors.New("solidity compiler not found")
	ErrVersionMismatch   = errors.New("compiler version does not satisfy the source pragma")
	ErrContractNotFound  = errors.New("contract not found in compiler output")
	ErrAmbiguousContract = errors.New("contract name is ambiguous")
	ErrNoBytecode        = errors.New("contract has no bytecode")
)

// CompilationError is returned for every failure that happens before any network call:
// bad source, missing toolchain or a version mismatch.
type CompilationError struct {
	Messages []string
	Err      error
}

func (e *CompilationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrCompilation.Error())
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	for _, m := range e.Messages {
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(m, "\n"))
	}
	return sb.String()
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *CompilationError) Is(target error) bool {
	return target == ErrCompilation
}
