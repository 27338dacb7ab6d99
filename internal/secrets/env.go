package secrets

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

type envProvider struct {
	variable string
}

func newEnvProvider(cfg *Config, _ zerolog.Logger) (KeyProvider, error) {
	variable := cfg.PrivateKeyEnv
	if variable == "" {
		variable = DefaultPrivateKeyEnv
	}
	return &envProvider{variable: variable}, nil
}

func (p *envProvider) Source() Source {
	return SourceEnv
}

func (p *envProvider) PrivateKey(context.Context) (*ecdsa.PrivateKey, error) {
	value, ok := os.LookupEnv(p.variable)
	if !ok {
		return nil, fmt.Errorf("%w: environment variable %s is not set", ErrSecretNotFound, p.variable)
	}
	return ParseHexKey(value)
}

type configProvider struct {
	key string
}

func newConfigProvider(cfg *Config, logger zerolog.Logger) (KeyProvider, error) {
	if err := requireParam(cfg.PrivateKey, "private_key"); err != nil {
		return nil, err
	}
	logger.Warn().Msg("Private key is stored in the config file; prefer env, keystore, vault or aws-ssm")
	return &configProvider{key: cfg.PrivateKey}, nil
}

func (p *configProvider) Source() Source {
	return SourceConfig
}

func (p *configProvider) PrivateKey(context.Context) (*ecdsa.PrivateKey, error) {
	return ParseHexKey(p.key)
}
