package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleStorage(t *testing.T) {
	t.Parallel()

	source, err := GetSource(NameSimpleStorage)
	require.NoError(t, err)
	assert.Contains(t, source, "contract SimpleStorage")

	artifact, err := GetArtifact(NameSimpleStorage)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.Bytecode)
	assert.Contains(t, artifact.ABI.Methods, "store")
	assert.Contains(t, artifact.ABI.Methods, "retrieve")

	_, err = GetArtifact("Missing")
	require.Error(t, err)
}
