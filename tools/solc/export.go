package solc

import (
	"fmt"
	"os"
	"path/filepath"

	compiler "github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ExportArtifacts writes <Name>.abi and <Name>.bin for every deployable contract of the output.
// An empty contractName exports all of them. Abstract contracts and interfaces are skipped.
func ExportArtifacts(out *compiler.Output, dir, contractName string) ([]string, error) {
	var written []string
	for _, id := range out.ContractNames() {
		artifact, err := out.Contract(id)
		if err != nil {
			continue
		}
		if contractName != "" && contractName != artifact.Name {
			continue
		}

		abiFile := filepath.Join(dir, artifact.Name+".abi")
		codeFile := filepath.Join(dir, artifact.Name+".bin")
		if err := os.WriteFile(abiFile, append(artifact.RawABI, '\n'), 0o644); err != nil { //nolint:gosec
			return written, fmt.Errorf("failed to write abi of %s: %w", id, err)
		}
		code := hexutil.Encode(artifact.Bytecode)[2:]
		if err := os.WriteFile(codeFile, []byte(code+"\n"), 0o644); err != nil { //nolint:gosec
			return written, fmt.Errorf("failed to write code of %s: %w", id, err)
		}
		written = append(written, abiFile, codeFile)
	}

	if len(written) == 0 {
		return nil, fmt.Errorf("%w: nothing to export", compiler.ErrContractNotFound)
	}
	return written, nil
}
