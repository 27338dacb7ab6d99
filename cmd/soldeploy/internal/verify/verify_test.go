package verify

import (
	"path/filepath"
	"testing"

	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArtifactFallsBackToBundledAbi(t *testing.T) {
	t.Parallel()

	cfg := &common.Config{Output: filepath.Join(t.TempDir(), "missing.json")}

	artifact, err := loadArtifact(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, contracts.NameSimpleStorage, artifact.Name)
	assert.Contains(t, artifact.ABI.Methods, "retrieve")
	assert.Contains(t, artifact.ABI.Methods, "store")

	// an explicitly requested contract is never substituted
	_, err = loadArtifact(cfg, "Token")
	require.Error(t, err)
}
