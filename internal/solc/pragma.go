package solc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	pragmaRe  = regexp.MustCompile(`pragma\s+solidity\s+([^;]+);`)
	commentRe = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`)
)

// CheckPragma verifies that version satisfies every `pragma solidity` constraint of the source.
// Sources without a pragma are accepted. Pragmas inside comments are ignored.
func CheckPragma(source string, version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: invalid compiler version %q: %w", ErrVersionMismatch, version, err)
	}

	for _, m := range pragmaRe.FindAllStringSubmatch(commentRe.ReplaceAllString(source, ""), -1) {
		expr := strings.TrimSpace(m[1])
		constraint, err := semver.NewConstraint(expr)
		if err != nil {
			return fmt.Errorf("invalid pragma %q: %w", expr, err)
		}
		if !constraint.Check(v) {
			return fmt.Errorf("%w: %s does not satisfy %q", ErrVersionMismatch, version, expr)
		}
	}
	return nil
}
