package secrets

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	hashicorp "github.com/hashicorp/vault/api"
	"github.com/hashicorp/vault/api/auth/approle"
	"github.com/rs/zerolog"
)

type vaultProvider struct {
	client *hashicorp.Client
	logger zerolog.Logger

	mount string
	path  string
	key   string

	approleRoleId    string
	approleSecretId  string
	approleMountPath string
}

func newVaultProvider(cfg *Config, logger zerolog.Logger) (KeyProvider, error) {
	if err := requireParam(cfg.VaultPath, "vault_path"); err != nil {
		return nil, err
	}

	config := hashicorp.DefaultConfig()
	if cfg.VaultAddress != "" {
		config.Address = cfg.VaultAddress
	}

	// the token is picked up from VAULT_TOKEN unless approle login replaces it
	client, err := hashicorp.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("hashicorp.NewClient: %w", err)
	}

	p := &vaultProvider{
		client:           client,
		logger:           logger,
		mount:            cfg.VaultMount,
		path:             cfg.VaultPath,
		key:              cfg.VaultKey,
		approleRoleId:    cfg.VaultRoleId,
		approleSecretId:  cfg.VaultSecretId,
		approleMountPath: cfg.VaultApproleMount,
	}
	if p.mount == "" {
		p.mount = DefaultVaultMount
	}
	if p.key == "" {
		p.key = DefaultVaultKey
	}
	if p.approleMountPath == "" {
		p.approleMountPath = DefaultVaultApproleMount
	}
	return p, nil
}

func (p *vaultProvider) Source() Source {
	return SourceVault
}

func (p *vaultProvider) login(ctx context.Context) error {
	p.logger.Debug().Msg("Vault login: begin")

	appRoleAuth, err := approle.NewAppRoleAuth(
		p.approleRoleId,
		&approle.SecretID{FromString: p.approleSecretId},
		approle.WithMountPath(p.approleMountPath),
	)
	if err != nil {
		return fmt.Errorf("unable to initialize approle authentication method: %w", err)
	}

	authInfo, err := p.client.Auth().Login(ctx, appRoleAuth)
	if err != nil {
		return fmt.Errorf("unable to login using approle auth method: %w", err)
	}
	if authInfo == nil {
		return errors.New("no approle info was returned after login")
	}

	p.logger.Debug().Msg("Vault login: success")
	return nil
}

func (p *vaultProvider) PrivateKey(ctx context.Context) (*ecdsa.PrivateKey, error) {
	if p.approleRoleId != "" {
		if err := p.login(ctx); err != nil {
			return nil, err
		}
	}

	secret, err := p.client.KVv2(p.mount).Get(ctx, p.path)
	if errors.Is(err, hashicorp.ErrSecretNotFound) {
		return nil, fmt.Errorf("%w: %s/%s", ErrSecretNotFound, p.mount, p.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", p.mount, p.path, err)
	}

	value, ok := secret.Data[p.key].(string)
	if !ok {
		return nil, fmt.Errorf("%w: key %q in %s/%s", ErrSecretNotFound, p.key, p.mount, p.path)
	}
	return ParseHexKey(value)
}
