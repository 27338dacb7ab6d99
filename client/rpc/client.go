package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/NilFoundation/soldeploy/client"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog"
)

const (
	Eth_accounts              = "eth_accounts"
	Eth_call                  = "eth_call"
	Eth_chainId               = "eth_chainId"
	Eth_estimateGas           = "eth_estimateGas"
	Eth_gasPrice              = "eth_gasPrice"
	Eth_getCode               = "eth_getCode"
	Eth_getTransactionCount   = "eth_getTransactionCount"
	Eth_getTransactionReceipt = "eth_getTransactionReceipt"
	Eth_sendRawTransaction    = "eth_sendRawTransaction"
	Eth_sendTransaction       = "eth_sendTransaction"
)

// Backend is the part of *ethclient.Client the workflow needs.
// The go-ethereum simulated backend satisfies it as well.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

type rawCaller interface {
	CallContext(ctx context.Context, result any, method string, args ...any) error
}

type Client struct {
	endpoint string
	backend  Backend
	raw      rawCaller
	closer   func()
	logger   zerolog.Logger
}

var _ client.Client = (*Client)(nil)

// NewClient dials the endpoint. HTTP endpoints are connected lazily,
// so an unreachable node is reported by the first call, not here.
func NewClient(ctx context.Context, endpoint string, logger zerolog.Logger) (*Client, error) {
	return NewClientWithDefaultHeaders(ctx, endpoint, logger, nil)
}

func NewClientWithDefaultHeaders(
	ctx context.Context, endpoint string, logger zerolog.Logger, headers map[string]string,
) (*Client, error) {
	if strings.HasPrefix(endpoint, "unix://") {
		// go-ethereum dials a bare path over IPC
		endpoint = strings.TrimPrefix(endpoint, "unix://")
	} else if strings.HasPrefix(endpoint, "tcp://") {
		endpoint = "http://" + strings.TrimPrefix(endpoint, "tcp://")
	}

	opts := make([]gethrpc.ClientOption, 0, len(headers))
	for k, v := range headers {
		opts = append(opts, gethrpc.WithHeader(k, v))
	}

	raw, err := gethrpc.DialOptions(ctx, endpoint, opts...)
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to dial %s: %w", endpoint, err))
	}

	return NewClientFromRaw(endpoint, raw, logger), nil
}

// NewClientFromRaw takes ownership of an already established go-ethereum connection.
func NewClientFromRaw(endpoint string, raw *gethrpc.Client, logger zerolog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		backend:  ethclient.NewClient(raw),
		raw:      raw,
		closer:   raw.Close,
		logger:   logger,
	}
}

// NewClientWithBackend wraps an in-process backend.
// Such a client has no raw connection, so SendTransaction and Accounts are unavailable.
func NewClientWithBackend(backend Backend, logger zerolog.Logger) *Client {
	return &Client{
		endpoint: "in-process",
		backend:  backend,
		closer:   func() {},
		logger:   logger,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Close() {
	c.closer()
}

func (c *Client) trace(method string) *zerolog.Event {
	return c.logger.Trace().Str(logging.FieldRpcMethod, method).Str(logging.FieldUrl, c.endpoint)
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	c.trace(Eth_chainId).Send()
	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, classifyError(err)
	}
	return id, nil
}

func (c *Client) Accounts(ctx context.Context) ([]common.Address, error) {
	if c.raw == nil {
		return nil, client.ErrNodeSigningUnsupported
	}
	c.trace(Eth_accounts).Send()
	var accounts []common.Address
	if err := c.raw.CallContext(ctx, &accounts, Eth_accounts); err != nil {
		return nil, classifyError(err)
	}
	return accounts, nil
}

func (c *Client) GetTransactionCount(ctx context.Context, address common.Address) (uint64, error) {
	c.trace(Eth_getTransactionCount).Stringer(logging.FieldAccountAddress, address).Send()
	nonce, err := c.backend.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, classifyError(err)
	}
	return nonce, nil
}

func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	c.trace(Eth_gasPrice).Send()
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, classifyError(err)
	}
	return price, nil
}

func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	c.trace(Eth_estimateGas).Send()
	gas, err := c.backend.EstimateGas(ctx, msg)
	if err != nil {
		return 0, classifyError(err)
	}
	return gas, nil
}

func (c *Client) SendTransaction(ctx context.Context, args *client.TransactionArgs) (common.Hash, error) {
	if c.raw == nil {
		return common.Hash{}, client.ErrNodeSigningUnsupported
	}
	c.trace(Eth_sendTransaction).Stringer(logging.FieldAccountAddress, args.From).Send()
	var hash common.Hash
	if err := c.raw.CallContext(ctx, &hash, Eth_sendTransaction, args); err != nil {
		return common.Hash{}, classifyError(err)
	}
	return hash, nil
}

func (c *Client) SendRawTransaction(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	c.trace(Eth_sendRawTransaction).Stringer(logging.FieldTxHash, tx.Hash()).Send()
	if err := c.backend.SendTransaction(ctx, tx); err != nil {
		return common.Hash{}, classifyError(err)
	}
	return tx.Hash(), nil
}

func (c *Client) GetTransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	c.trace(Eth_getTransactionReceipt).Stringer(logging.FieldTxHash, hash).Send()
	receipt, err := c.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err)
	}
	return receipt, nil
}

func (c *Client) Call(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	c.trace(Eth_call).Send()
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, classifyError(err)
	}
	return res, nil
}

func (c *Client) GetCode(ctx context.Context, address common.Address) ([]byte, error) {
	c.trace(Eth_getCode).Stringer(logging.FieldContractAddress, address).Send()
	code, err := c.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, classifyError(err)
	}
	return code, nil
}
