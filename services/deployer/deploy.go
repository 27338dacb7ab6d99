package deployer

import (
	"context"
	"fmt"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/signer"
	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type TxOption func(*signer.Request)

// WithNonce pins the nonce instead of asking the node for the pending count.
func WithNonce(nonce uint64) TxOption {
	return func(r *signer.Request) {
		r.Nonce = &nonce
	}
}

func WithGas(gas uint64) TxOption {
	return func(r *signer.Request) {
		r.Gas = gas
	}
}

type Deployment struct {
	Contract *Contract
	TxHash   common.Hash
	Receipt  *types.Receipt
}

// BuildDeployPayload appends the ABI-encoded constructor arguments to the creation bytecode.
func BuildDeployPayload(artifact *solc.Artifact, args ...any) ([]byte, error) {
	ctorArgs, err := artifact.ABI.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}
	payload := make([]byte, 0, len(artifact.Bytecode)+len(ctorArgs))
	payload = append(payload, artifact.Bytecode...)
	return append(payload, ctorArgs...), nil
}

// SubmitDeploy sends the creation transaction and returns without waiting for it to be mined.
func (s *Service) SubmitDeploy(ctx context.Context, artifact *solc.Artifact, args []any, opts ...TxOption) (common.Hash, error) {
	hash, err := s.submitDeploy(ctx, artifact, args, opts)
	return hash, WrapStep(StepDeploy, err)
}

func (s *Service) submitDeploy(ctx context.Context, artifact *solc.Artifact, args []any, opts []TxOption) (common.Hash, error) {
	if _, err := s.CheckConnection(ctx); err != nil {
		return common.Hash{}, err
	}

	payload, err := BuildDeployPayload(artifact, args...)
	if err != nil {
		return common.Hash{}, err
	}

	req := &signer.Request{Data: payload}
	for _, opt := range opts {
		opt(req)
	}

	s.logger.Info().
		Str(logging.FieldContractName, artifact.Name).
		Stringer(logging.FieldAccountAddress, s.signer.Address()).
		Msg("Deploying contract...")

	return s.send(ctx, req)
}

// Deploy creates the contract and waits until its code is on chain.
func (s *Service) Deploy(ctx context.Context, artifact *solc.Artifact, args []any, opts ...TxOption) (*Deployment, error) {
	deployment, err := s.deploy(ctx, artifact, args, opts)
	if err != nil {
		return nil, WrapStep(StepDeploy, err)
	}
	return deployment, nil
}

func (s *Service) deploy(ctx context.Context, artifact *solc.Artifact, args []any, opts []TxOption) (*Deployment, error) {
	hash, err := s.submitDeploy(ctx, artifact, args, opts)
	if err != nil {
		return nil, err
	}

	receipt, err := s.WaitForReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}

	address := receipt.ContractAddress
	if address == (common.Address{}) {
		return nil, fmt.Errorf("%w: transaction %s", ErrNoContractAddress, hash)
	}

	code, err := s.client.GetCode(ctx, address)
	if err != nil {
		return nil, err
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCode, address)
	}

	s.logger.Info().
		Str(logging.FieldContractName, artifact.Name).
		Stringer(logging.FieldContractAddress, address).
		Stringer(logging.FieldTxHash, hash).
		Msg("Contract deployed")

	return &Deployment{
		Contract: NewContract(address, artifact.ABI),
		TxHash:   hash,
		Receipt:  receipt,
	}, nil
}
