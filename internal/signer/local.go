package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/NilFoundation/soldeploy/client"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

// Local signs legacy transactions with a private key held in memory and submits them raw.
type Local struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainId *big.Int
	logger  zerolog.Logger
}

var _ Signer = (*Local)(nil)

// NewLocal creates a local signer. A nil chainId is resolved from the node on first use.
func NewLocal(key *ecdsa.PrivateKey, chainId *big.Int, logger zerolog.Logger) *Local {
	return &Local{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainId: chainId,
		logger:  logger,
	}
}

func (s *Local) Address() common.Address {
	return s.address
}

func (s *Local) Mode() Mode {
	return ModeLocal
}

func (s *Local) Send(ctx context.Context, c client.Client, req *Request) (common.Hash, error) {
	if s.chainId == nil {
		chainId, err := c.ChainID(ctx)
		if err != nil {
			return common.Hash{}, err
		}
		s.chainId = chainId
	}

	var nonce uint64
	if req.Nonce != nil {
		nonce = *req.Nonce
	} else {
		// always asked from the node, so a transaction sent by someone else in between is accounted for
		var err error
		nonce, err = c.GetTransactionCount(ctx, s.address)
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
		}
	}

	gasPrice, err := c.GasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
	}

	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	gas := req.Gas
	if gas == 0 {
		gas, err = c.EstimateGas(ctx, ethereum.CallMsg{
			From:     s.address,
			To:       req.To,
			GasPrice: gasPrice,
			Value:    value,
			Data:     req.Data,
		})
		if err != nil {
			return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
		}
	}

	tx, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       req.To,
		Value:    value,
		Data:     req.Data,
	}), types.LatestSignerForChainID(s.chainId), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	s.logger.Debug().
		Stringer(logging.FieldTxHash, tx.Hash()).
		Uint64(logging.FieldTxNonce, nonce).
		Uint64(logging.FieldTxGas, gas).
		Stringer(logging.FieldTxGasPrice, gasPrice).
		Msg("Sending signed transaction")

	return c.SendRawTransaction(ctx, tx)
}
