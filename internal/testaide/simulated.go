package testaide

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/NilFoundation/soldeploy/client/rpc"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

// SimulatedChainID is the chain id of the go-ethereum simulated backend.
var SimulatedChainID = big.NewInt(1337)

var fundedBalance = new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(1e18))

type SimulatedChain struct {
	Backend *simulated.Backend
	Key     *ecdsa.PrivateKey
	Address common.Address

	autoCommit bool
}

type SimulatedOption func(*SimulatedChain)

// WithManualCommit leaves sent transactions pending until Commit is called.
func WithManualCommit() SimulatedOption {
	return func(c *SimulatedChain) {
		c.autoCommit = false
	}
}

// NewSimulatedChain starts an in-memory chain with one funded account.
func NewSimulatedChain(t *testing.T, opts ...SimulatedOption) *SimulatedChain {
	t.Helper()

	key := GenerateKey(t)
	address := crypto.PubkeyToAddress(key.PublicKey)

	chain := &SimulatedChain{
		Backend: simulated.NewBackend(types.GenesisAlloc{
			address: {Balance: fundedBalance},
		}),
		Key:        key,
		Address:    address,
		autoCommit: true,
	}
	for _, opt := range opts {
		opt(chain)
	}

	t.Cleanup(func() {
		_ = chain.Backend.Close()
	})
	return chain
}

// Client returns an RPC client backed by the simulated chain.
func (c *SimulatedChain) Client() *rpc.Client {
	var backend rpc.Backend = c.Backend.Client()
	if c.autoCommit {
		backend = &autoCommitClient{Client: c.Backend.Client(), backend: c.Backend}
	}
	return rpc.NewClientWithBackend(backend, logging.Nop())
}

func (c *SimulatedChain) Commit() {
	c.Backend.Commit()
}

// autoCommitClient mines a block right after every accepted transaction.
type autoCommitClient struct {
	simulated.Client
	backend *simulated.Backend
}

func (c *autoCommitClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

func GenerateKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key
}
