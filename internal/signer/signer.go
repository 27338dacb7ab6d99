package signer

import (
	"context"
	"errors"
	"math/big"

	"github.com/NilFoundation/soldeploy/client"
	"github.com/ethereum/go-ethereum/common"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeNode  Mode = "node"
)

var ErrNoAccounts = errors.New("node has no unlocked accounts")

// Request describes a transaction before nonce, gas and signature are filled in.
// A nil To means contract creation.
type Request struct {
	To    *common.Address
	Data  []byte
	Value *big.Int
	// Nonce overrides the pending transaction count of the sender.
	Nonce *uint64
	// Gas overrides the node estimate.
	Gas uint64
}

// Signer submits transactions on behalf of one account.
type Signer interface {
	Address() common.Address
	Mode() Mode
	Send(ctx context.Context, c client.Client, req *Request) (common.Hash, error)
}
