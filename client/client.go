package client

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrConnection is returned when the node cannot be reached at all.
	ErrConnection = errors.New("rpc endpoint unreachable")

	// ErrNonceConflict is returned when the node rejects a transaction because its nonce is already used.
	ErrNonceConflict = errors.New("nonce conflict")

	// ErrNodeSigningUnsupported is returned by clients without a raw JSON-RPC connection.
	ErrNodeSigningUnsupported = errors.New("node-managed signing is not supported by this client")
)

// TransactionArgs are the arguments of eth_sendTransaction.
// The node fills in everything that is left empty, including the nonce and the signature.
type TransactionArgs struct {
	From     common.Address  `json:"from"`
	To       *common.Address `json:"to,omitempty"`
	Gas      *hexutil.Uint64 `json:"gas,omitempty"`
	GasPrice *hexutil.Big    `json:"gasPrice,omitempty"`
	Value    *hexutil.Big    `json:"value,omitempty"`
	Nonce    *hexutil.Uint64 `json:"nonce,omitempty"`
	Data     hexutil.Bytes   `json:"data,omitempty"`
}

// Client defines the subset of the Ethereum JSON-RPC API the deployment workflow consumes.
// Note: every call blocks until the node answers; implementations must not retry on their own.
type Client interface {
	ChainID(ctx context.Context) (*big.Int, error)
	Accounts(ctx context.Context) ([]common.Address, error)

	// GetTransactionCount returns the nonce the next transaction of the account must carry.
	GetTransactionCount(ctx context.Context, address common.Address) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)

	// SendTransaction asks the node to sign and submit the transaction from an unlocked account.
	SendTransaction(ctx context.Context, args *TransactionArgs) (common.Hash, error)
	// SendRawTransaction submits an already signed transaction.
	SendRawTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error)

	// GetTransactionReceipt returns nil without an error while the transaction is pending.
	GetTransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)

	Call(ctx context.Context, msg ethereum.CallMsg) ([]byte, error)
	GetCode(ctx context.Context, address common.Address) ([]byte, error)

	Close()
}
