package solc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NilFoundation/soldeploy/contracts"
	compiler "github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportArtifacts(t *testing.T) {
	t.Parallel()

	out, err := compiler.LoadOutput(filepath.Join("..", "..", "internal", "solc", "testdata", "storage_output.json"))
	require.NoError(t, err)

	dir := t.TempDir()
	written, err := ExportArtifacts(out, dir, "")
	require.NoError(t, err)
	require.Len(t, written, 2)

	// the exported pair is readable the same way as the bundled contracts
	code, err := os.ReadFile(filepath.Join(dir, contracts.NameSimpleStorage+".bin"))
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	abi, err := os.ReadFile(filepath.Join(dir, contracts.NameSimpleStorage+".abi"))
	require.NoError(t, err)
	assert.Contains(t, string(abi), "retrieve")

	_, err = ExportArtifacts(out, dir, "Missing")
	require.ErrorIs(t, err, compiler.ErrContractNotFound)
}
