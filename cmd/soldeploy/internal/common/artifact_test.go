package common

import (
	"path/filepath"
	"testing"

	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestOutput(t *testing.T, name string) *solc.Output {
	t.Helper()
	out, err := solc.LoadOutput(filepath.Join("..", "..", "..", "..", "internal", "solc", "testdata", name))
	require.NoError(t, err)
	return out
}

func TestSelectArtifact(t *testing.T) {
	t.Parallel()

	single := loadTestOutput(t, "storage_output.json")
	artifact, err := SelectArtifact(single, "")
	require.NoError(t, err)
	assert.Equal(t, "SimpleStorage", artifact.Name)

	several := loadTestOutput(t, "library_output.json")
	_, err = SelectArtifact(several, "")
	require.ErrorIs(t, err, solc.ErrAmbiguousContract)

	_, err = SelectArtifact(several, "Missing")
	require.ErrorIs(t, err, solc.ErrContractNotFound)
}

func TestLoadArtifactMissingOutput(t *testing.T) {
	t.Parallel()

	_, err := LoadArtifact(&Config{Output: filepath.Join(t.TempDir(), "none.json")}, "")
	require.Error(t, err)
}
