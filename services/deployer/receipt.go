package deployer

import (
	"context"
	"errors"

	"github.com/NilFoundation/soldeploy/common/concurrent"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// WaitForReceipt polls for the receipt until the receipt timeout elapses.
// A mined transaction with a failed status is reported as RevertedError, never as a timeout.
func (s *Service) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := concurrent.WaitFor(ctx, s.receiptTimeout, s.pollInterval,
		func(ctx context.Context) (*types.Receipt, error) {
			return s.client.GetTransactionReceipt(ctx, hash)
		})
	if errors.Is(err, concurrent.ErrWaitTimeout) {
		err = &ReceiptTimeoutError{TxHash: hash, Timeout: s.receiptTimeout}
	}
	if err != nil {
		s.logger.Error().Err(err).Stringer(logging.FieldTxHash, hash).Msg("Error during waiting for receipt")
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		err := &RevertedError{TxHash: hash, Receipt: receipt}
		s.logger.Error().Err(err).Send()
		return nil, err
	}

	s.logger.Debug().
		Stringer(logging.FieldTxHash, hash).
		Stringer(logging.FieldBlockNumber, receipt.BlockNumber).
		Uint64("gasUsed", receipt.GasUsed).
		Msg("Receipt received")
	return receipt, nil
}
