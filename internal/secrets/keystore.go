package secrets

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type keystoreProvider struct {
	path        string
	passwordEnv string
}

func newKeystoreProvider(cfg *Config, _ zerolog.Logger) (KeyProvider, error) {
	if err := requireParam(cfg.KeystorePath, "keystore_path"); err != nil {
		return nil, err
	}
	passwordEnv := cfg.KeystorePasswordEnv
	if passwordEnv == "" {
		passwordEnv = DefaultKeystorePasswordEnv
	}
	return &keystoreProvider{path: cfg.KeystorePath, passwordEnv: passwordEnv}, nil
}

func (p *keystoreProvider) Source() Source {
	return SourceKeystore
}

func (p *keystoreProvider) PrivateKey(context.Context) (*ecdsa.PrivateKey, error) {
	return ReadKeystore(p.path, os.Getenv(p.passwordEnv))
}

// ReadKeystore decrypts a go-ethereum JSON key file.
func ReadKeystore(path, password string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := keystore.DecryptKey(data, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s: %w", path, err)
	}
	return key.PrivateKey, nil
}

// WriteKeystore encrypts the key with light scrypt parameters and stores it at path.
func WriteKeystore(path string, key *ecdsa.PrivateKey, password string) (common.Address, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return common.Address{}, err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)
	data, err := keystore.EncryptKey(&keystore.Key{
		Id:         id,
		Address:    address,
		PrivateKey: key,
	}, password, keystore.LightScryptN, keystore.LightScryptP)
	if err != nil {
		return common.Address{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return common.Address{}, err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return common.Address{}, err
	}
	return address, nil
}
