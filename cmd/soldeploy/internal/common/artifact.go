package common

import (
	"fmt"
	"strings"

	"github.com/NilFoundation/soldeploy/internal/solc"
)

// SelectArtifact picks the named contract, or the only one when name is empty.
func SelectArtifact(out *solc.Output, name string) (*solc.Artifact, error) {
	if name != "" {
		return out.Contract(name)
	}
	names := out.ContractNames()
	switch len(names) {
	case 0:
		return nil, solc.ErrContractNotFound
	case 1:
		return out.Contract(names[0])
	default:
		return nil, fmt.Errorf("%w: use --contract with one of %s", solc.ErrAmbiguousContract, strings.Join(names, ", "))
	}
}

// LoadArtifact reads the compiler output persisted by a previous compile or deploy.
func LoadArtifact(cfg *Config, name string) (*solc.Artifact, error) {
	out, err := solc.LoadOutput(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to load compiler output (run `compile` first): %w", err)
	}
	return SelectArtifact(out, name)
}
