package secrets

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

// Source names where the deployer private key is loaded from.
type Source string

const (
	SourceNone     Source = ""
	SourceEnv      Source = "env"
	SourceConfig   Source = "config"
	SourceKeystore Source = "keystore"
	SourceVault    Source = "vault"
	SourceAwsSsm   Source = "aws-ssm"
)

const (
	DefaultPrivateKeyEnv       = "SOLDEPLOY_PRIVATE_KEY"
	DefaultKeystorePasswordEnv = "SOLDEPLOY_KEYSTORE_PASSWORD"
	DefaultVaultMount          = "secret"
	DefaultVaultKey            = "private_key"
	DefaultVaultApproleMount   = "approle"
)

var (
	ErrUnknownSource  = errors.New("unknown key source")
	ErrSecretNotFound = errors.New("secret not found")
	ErrInvalidKey     = errors.New("invalid private key")
	ErrMissingParam   = errors.New("missing key source parameter")
)

// Config holds the parameters of every provider. Only the ones of the selected source are used.
type Config struct {
	Source Source `mapstructure:"key_source"`

	PrivateKey    string `mapstructure:"private_key"`
	PrivateKeyEnv string `mapstructure:"private_key_env"`

	KeystorePath        string `mapstructure:"keystore_path"`
	KeystorePasswordEnv string `mapstructure:"keystore_password_env"`

	VaultAddress      string `mapstructure:"vault_address"`
	VaultMount        string `mapstructure:"vault_mount"`
	VaultPath         string `mapstructure:"vault_path"`
	VaultKey          string `mapstructure:"vault_key"`
	VaultRoleId       string `mapstructure:"vault_role_id"`
	VaultSecretId     string `mapstructure:"vault_secret_id"`
	VaultApproleMount string `mapstructure:"vault_approle_mount"`

	AwsRegion          string `mapstructure:"aws_region"`
	AwsEndpoint        string `mapstructure:"aws_endpoint"`
	AwsAccessKeyId     string `mapstructure:"aws_access_key_id"`
	AwsSecretAccessKey string `mapstructure:"aws_secret_access_key"`
	SsmParameter       string `mapstructure:"ssm_parameter"`
}

// KeyProvider loads the private key used for local signing.
type KeyProvider interface {
	Source() Source
	PrivateKey(ctx context.Context) (*ecdsa.PrivateKey, error)
}

type factoryFunc func(cfg *Config, logger zerolog.Logger) (KeyProvider, error)

var factories = map[Source]factoryFunc{
	SourceEnv:      newEnvProvider,
	SourceConfig:   newConfigProvider,
	SourceKeystore: newKeystoreProvider,
	SourceVault:    newVaultProvider,
	SourceAwsSsm:   newSsmProvider,
}

func Sources() []Source {
	return []Source{SourceEnv, SourceConfig, SourceKeystore, SourceVault, SourceAwsSsm}
}

func NewKeyProvider(cfg *Config, logger zerolog.Logger) (KeyProvider, error) {
	factory, ok := factories[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
	return factory(cfg, logger.With().Str(logging.FieldKeySource, string(cfg.Source)).Logger())
}

// LoadKey resolves the provider for cfg and fetches the key.
func LoadKey(ctx context.Context, cfg *Config, logger zerolog.Logger) (*ecdsa.PrivateKey, error) {
	provider, err := NewKeyProvider(cfg, logger)
	if err != nil {
		return nil, err
	}
	key, err := provider.PrivateKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key from %s: %w", provider.Source(), err)
	}
	return key, nil
}

// ParseHexKey accepts a hex private key with or without the 0x prefix.
func ParseHexKey(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

func requireParam(value, name string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	return nil
}
