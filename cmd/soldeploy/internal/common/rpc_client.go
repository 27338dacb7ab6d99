package common

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/NilFoundation/soldeploy/client/rpc"
	"github.com/NilFoundation/soldeploy/common/check"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/common/version"
	"github.com/NilFoundation/soldeploy/internal/secrets"
	"github.com/NilFoundation/soldeploy/internal/signer"
	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/NilFoundation/soldeploy/services/deployer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

var ErrAddressMismatch = errors.New("configured address does not match the signing key")

var client *rpc.Client

func InitRpcClient(ctx context.Context, cfg *Config, logger zerolog.Logger) error {
	var err error
	client, err = rpc.NewClientWithDefaultHeaders(
		ctx,
		cfg.RPCEndpoint,
		logger,
		map[string]string{
			"User-Agent": "soldeploy/" + version.GetGitCommit(),
		},
	)
	return err
}

func GetRpcClient() *rpc.Client {
	check.PanicIfNot(client != nil)
	return client
}

func CloseRpcClient() {
	if client != nil {
		client.Close()
		client = nil
	}
}

// NewSigner selects the signing strategy once: a configured key source means local signing,
// otherwise transactions are signed by the node.
func NewSigner(ctx context.Context, cfg *Config) (signer.Signer, error) {
	logger := logging.NewLogger("signer")

	if cfg.Source == secrets.SourceNone {
		if cfg.Address != (common.Address{}) {
			return signer.NewNode(cfg.Address, logger), nil
		}
		return signer.NewNodeDefaultAccount(ctx, GetRpcClient(), logger)
	}

	key, err := secrets.LoadKey(ctx, &cfg.Config, logging.NewLogger("secrets"))
	if err != nil {
		return nil, err
	}
	return newLocalSigner(cfg, key, logger)
}

// newLocalSigner refuses a key whose account differs from the configured address.
func newLocalSigner(cfg *Config, key *ecdsa.PrivateKey, logger zerolog.Logger) (signer.Signer, error) {
	keyAddress := crypto.PubkeyToAddress(key.PublicKey)
	if cfg.Address != (common.Address{}) && cfg.Address != keyAddress {
		return nil, fmt.Errorf("%w: %s is configured, the %s key belongs to %s",
			ErrAddressMismatch, cfg.Address, cfg.Source, keyAddress)
	}

	var chainId *big.Int
	if cfg.ChainId != 0 {
		chainId = new(big.Int).SetUint64(cfg.ChainId)
	}
	return signer.NewLocal(key, chainId, logger), nil
}

func NewDeployer(ctx context.Context, cfg *Config) (*deployer.Service, error) {
	s, err := NewSigner(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return deployer.NewService(GetRpcClient(), s,
		deployer.WithReceiptTimeout(cfg.ReceiptTimeout),
		deployer.WithPollInterval(cfg.ReceiptPollInterval),
	), nil
}

func NewCompiler(cfg *Config) *solc.Compiler {
	return solc.NewCompiler(cfg.SolcPath, logging.NewLogger("solc"))
}
