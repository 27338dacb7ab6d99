package signer

import (
	"context"
	"math/big"

	"github.com/NilFoundation/soldeploy/client"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
)

// Node delegates signing to an account unlocked on the node.
type Node struct {
	address common.Address
	logger  zerolog.Logger
}

var _ Signer = (*Node)(nil)

func NewNode(address common.Address, logger zerolog.Logger) *Node {
	return &Node{address: address, logger: logger}
}

// NewNodeDefaultAccount picks the first account reported by eth_accounts.
func NewNodeDefaultAccount(ctx context.Context, c client.Client, logger zerolog.Logger) (*Node, error) {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return NewNode(accounts[0], logger), nil
}

func (s *Node) Address() common.Address {
	return s.address
}

func (s *Node) Mode() Mode {
	return ModeNode
}

func (s *Node) Send(ctx context.Context, c client.Client, req *Request) (common.Hash, error) {
	args := &client.TransactionArgs{
		From: s.address,
		To:   req.To,
		Data: req.Data,
	}
	if req.Nonce != nil {
		args.Nonce = (*hexutil.Uint64)(req.Nonce)
	}
	if req.Gas != 0 {
		args.Gas = (*hexutil.Uint64)(&req.Gas)
	}
	if req.Value != nil && req.Value.Sign() > 0 {
		args.Value = (*hexutil.Big)(new(big.Int).Set(req.Value))
	}

	s.logger.Debug().
		Stringer(logging.FieldAccountAddress, s.address).
		Msg("Sending transaction signed by node")

	return c.SendTransaction(ctx, args)
}
