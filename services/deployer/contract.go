package deployer

import (
	"context"
	"fmt"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/signer"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Contract is a deployed contract instance.
type Contract struct {
	Address common.Address
	ABI     abi.ABI
}

func NewContract(address common.Address, contractAbi abi.ABI) *Contract {
	return &Contract{Address: address, ABI: contractAbi}
}

// Submit packs a call to method and sends it as a transaction without waiting for the receipt.
func (s *Service) Submit(ctx context.Context, contract *Contract, method string, args []any, opts ...TxOption) (common.Hash, error) {
	hash, err := s.submit(ctx, contract, method, args, opts)
	return hash, WrapStep(StepWrite, err)
}

func (s *Service) submit(ctx context.Context, contract *Contract, method string, args []any, opts []TxOption) (common.Hash, error) {
	data, err := contract.ABI.Pack(method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack call of %s: %w", method, err)
	}

	req := &signer.Request{To: &contract.Address, Data: data}
	for _, opt := range opts {
		opt(req)
	}

	s.logger.Debug().
		Stringer(logging.FieldContractAddress, contract.Address).
		Str(logging.FieldMethod, method).
		Msg("Submitting transaction")

	return s.send(ctx, req)
}

// Transact submits a transaction and waits for its successful receipt.
func (s *Service) Transact(ctx context.Context, contract *Contract, method string, args []any, opts ...TxOption) (*types.Receipt, error) {
	hash, err := s.submit(ctx, contract, method, args, opts)
	if err != nil {
		return nil, WrapStep(StepWrite, err)
	}
	receipt, err := s.WaitForReceipt(ctx, hash)
	if err != nil {
		return nil, WrapStep(StepWrite, err)
	}
	return receipt, nil
}

// Call executes a read-only call and decodes the return values.
func (s *Service) Call(ctx context.Context, contract *Contract, method string, args ...any) ([]any, error) {
	res, err := s.call(ctx, contract, method, args)
	return res, WrapStep(StepRead, err)
}

func (s *Service) call(ctx context.Context, contract *Contract, method string, args []any) ([]any, error) {
	data, err := contract.ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack call of %s: %w", method, err)
	}

	s.logger.Debug().
		Stringer(logging.FieldContractAddress, contract.Address).
		Str(logging.FieldMethod, method).
		Msg("Calling contract")

	out, err := s.client.Call(ctx, ethereum.CallMsg{
		From: s.signer.Address(),
		To:   &contract.Address,
		Data: data,
	})
	if err != nil {
		return nil, err
	}

	values, err := contract.ABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result of %s: %w", method, err)
	}
	return values, nil
}
