package keygen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/internal/secrets"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "4f3edf983ac636a65a842ce7c78d9aa706d3b113bce9c46f30d7d21715b23b1d"

func TestStoreKeyPatchesConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.ini")
	keystorePath := filepath.Join(dir, "keys", "deployer.json")

	viper.Reset()
	t.Cleanup(viper.Reset)
	common.SetConfigFile(configPath)
	t.Setenv("TEST_KEYSTORE_PASSWORD", "secret")

	key, err := secrets.ParseHexKey(testKeyHex)
	require.NoError(t, err)

	p := &params{keystorePath: keystorePath, passwordEnv: "TEST_KEYSTORE_PASSWORD", key: key}
	require.NoError(t, storeKey(p))

	restored, err := secrets.ReadKeystore(keystorePath, "secret")
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(restored.PublicKey))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "key_source = keystore\n")
	assert.Contains(t, string(data), "keystore_path = "+keystorePath+"\n")
	assert.Contains(t, string(data), "keystore_password_env = TEST_KEYSTORE_PASSWORD\n")
}

func TestStoreKeyWithoutKey(t *testing.T) {
	t.Parallel()

	require.NoError(t, storeKey(&params{}))
}

func TestDefaultKeystorePath(t *testing.T) {
	t.Parallel()

	key, err := secrets.ParseHexKey(testKeyHex)
	require.NoError(t, err)

	path := defaultKeystorePath(key)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex()+".json", filepath.Base(path))
	assert.Equal(t, "keystore", filepath.Base(filepath.Dir(path)))
}
