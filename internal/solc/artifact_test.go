package solc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadLibraryOutput(t *testing.T) *Output {
	t.Helper()
	out, err := LoadOutput("testdata/library_output.json")
	require.NoError(t, err)
	return out
}

func TestArtifactLookup(t *testing.T) {
	t.Parallel()

	out := loadLibraryOutput(t)

	_, err := out.Contract("Missing")
	require.ErrorIs(t, err, ErrContractNotFound)

	_, err = out.Contract("Shared")
	require.ErrorIs(t, err, ErrAmbiguousContract)

	artifact, err := out.Contract("B.sol:Shared")
	require.NoError(t, err)
	assert.Equal(t, "B.sol", artifact.SourceFile)
	assert.Equal(t, []byte{0x60, 0x80}, artifact.Bytecode)

	_, err = out.Contract("Ownable")
	require.ErrorIs(t, err, ErrNoBytecode)

	_, err = out.Contract("UsesLib")
	require.ErrorIs(t, err, ErrNoBytecode)
}

func TestArtifactAbiFromMetadata(t *testing.T) {
	t.Parallel()

	artifact, err := loadLibraryOutput(t).Contract("FromMetadata")
	require.NoError(t, err)
	assert.Contains(t, artifact.ABI.Methods, "ping")
}

func TestWriteOutputKeepsCompilerBytes(t *testing.T) {
	t.Parallel()

	out, err := LoadOutput("testdata/storage_output.json")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "compiled_code.json")
	require.NoError(t, WriteOutput(path, out))

	expected, err := os.ReadFile("testdata/storage_output.json")
	require.NoError(t, err)
	actual, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	loaded, err := LoadOutput(path)
	require.NoError(t, err)
	assert.Equal(t, out.ContractNames(), loaded.ContractNames())
}

func TestWriteOutputWithoutRaw(t *testing.T) {
	t.Parallel()

	out := &Output{Contracts: map[string]map[string]ContractOutput{
		"A.sol": {"A": {Evm: EvmOutput{Bytecode: BytecodeOutput{Object: "6080"}}}},
	}}
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteOutput(path, out))

	loaded, err := LoadOutput(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol:A"}, loaded.ContractNames())
}

func TestPersistBestEffort(t *testing.T) {
	t.Parallel()

	out, err := LoadOutput("testdata/storage_output.json")
	require.NoError(t, err)

	// parent is a regular file, so the write fails
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	path := filepath.Join(blocker, "compiled_code.json")

	require.NotPanics(t, func() {
		PersistBestEffort(logging.Nop(), path, out)
	})
	assert.NoFileExists(t, path)
}
