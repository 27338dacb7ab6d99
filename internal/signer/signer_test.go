package signer

import (
	"context"
	"math/big"
	"testing"

	"github.com/NilFoundation/soldeploy/client"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/testaide"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalMock(nonce uint64) *client.ClientMock {
	return &client.ClientMock{
		ChainIDFunc: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(31337), nil
		},
		GetTransactionCountFunc: func(ctx context.Context, address common.Address) (uint64, error) {
			return nonce, nil
		},
		GasPriceFunc: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(2_000_000_000), nil
		},
		EstimateGasFunc: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
			return 21_000, nil
		},
		SendRawTransactionFunc: func(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
			return tx.Hash(), nil
		},
	}
}

func TestLocalSignsLegacyTransaction(t *testing.T) {
	t.Parallel()

	key := testaide.GenerateKey(t)
	signer := NewLocal(key, nil, logging.Nop())
	assert.Equal(t, ModeLocal, signer.Mode())

	mock := newLocalMock(7)
	to := common.HexToAddress("0x1234")
	hash, err := signer.Send(context.Background(), mock, &Request{To: &to, Data: []byte{1, 2, 3}})
	require.NoError(t, err)

	require.Len(t, mock.SendRawTransactionCalls(), 1)
	tx := mock.SendRawTransactionCalls()[0].Tx
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint64(21_000), tx.Gas())
	assert.Equal(t, big.NewInt(31337), tx.ChainId())
	assert.Equal(t, []byte{1, 2, 3}, tx.Data())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(31337)), tx)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), sender)

	// chain id is resolved once
	_, err = signer.Send(context.Background(), mock, &Request{To: &to})
	require.NoError(t, err)
	assert.Len(t, mock.ChainIDCalls(), 1)
}

func TestLocalRequeriesNonce(t *testing.T) {
	t.Parallel()

	signer := NewLocal(testaide.GenerateKey(t), big.NewInt(1), logging.Nop())
	mock := newLocalMock(0)

	for i := 0; i < 3; i++ {
		_, err := signer.Send(context.Background(), mock, &Request{})
		require.NoError(t, err)
	}
	assert.Len(t, mock.GetTransactionCountCalls(), 3)
	assert.Empty(t, mock.ChainIDCalls())
}

func TestLocalOverrides(t *testing.T) {
	t.Parallel()

	signer := NewLocal(testaide.GenerateKey(t), big.NewInt(1), logging.Nop())
	mock := newLocalMock(0)

	nonce := uint64(42)
	_, err := signer.Send(context.Background(), mock, &Request{Nonce: &nonce, Gas: 100_000})
	require.NoError(t, err)

	assert.Empty(t, mock.GetTransactionCountCalls())
	assert.Empty(t, mock.EstimateGasCalls())

	tx := mock.SendRawTransactionCalls()[0].Tx
	assert.Equal(t, uint64(42), tx.Nonce())
	assert.Equal(t, uint64(100_000), tx.Gas())
	assert.Nil(t, tx.To())
}

func TestNodeSigner(t *testing.T) {
	t.Parallel()

	account := common.HexToAddress("0xabcdef")
	mock := &client.ClientMock{
		AccountsFunc: func(ctx context.Context) ([]common.Address, error) {
			return []common.Address{account, common.HexToAddress("0x01")}, nil
		},
		SendTransactionFunc: func(ctx context.Context, args *client.TransactionArgs) (common.Hash, error) {
			return common.HexToHash("0xff"), nil
		},
	}

	signer, err := NewNodeDefaultAccount(context.Background(), mock, logging.Nop())
	require.NoError(t, err)
	assert.Equal(t, account, signer.Address())
	assert.Equal(t, ModeNode, signer.Mode())

	nonce := uint64(3)
	hash, err := signer.Send(context.Background(), mock, &Request{Data: []byte{0xaa}, Nonce: &nonce})
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0xff"), hash)

	args := mock.SendTransactionCalls()[0].Args
	assert.Equal(t, account, args.From)
	assert.Nil(t, args.To)
	assert.Equal(t, uint64(3), uint64(*args.Nonce))
	assert.Nil(t, args.Gas)
	assert.Nil(t, args.Value)

	// the node never sees a raw transaction
	assert.Empty(t, mock.SendRawTransactionCalls())
}

func TestNodeSignerWithoutAccounts(t *testing.T) {
	t.Parallel()

	mock := &client.ClientMock{
		AccountsFunc: func(ctx context.Context) ([]common.Address, error) {
			return nil, nil
		},
	}
	_, err := NewNodeDefaultAccount(context.Background(), mock, logging.Nop())
	require.ErrorIs(t, err, ErrNoAccounts)
}

func TestLocalOnSimulatedChain(t *testing.T) {
	t.Parallel()

	chain := testaide.NewSimulatedChain(t)
	c := chain.Client()
	signer := NewLocal(chain.Key, nil, logging.Nop())

	to := common.HexToAddress("0xdead")
	hash, err := signer.Send(context.Background(), c, &Request{To: &to, Value: big.NewInt(1)})
	require.NoError(t, err)

	receipt, err := c.GetTransactionReceipt(context.Background(), hash)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	// the next send picks up the advanced nonce
	_, err = signer.Send(context.Background(), c, &Request{To: &to})
	require.NoError(t, err)
	nonce, err := c.GetTransactionCount(context.Background(), chain.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), nonce)
}
