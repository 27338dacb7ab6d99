package deployer

import (
	"errors"
	"fmt"
	"time"

	"github.com/NilFoundation/soldeploy/common/concurrent"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Step names a stage of a deployment run. Every error leaving the services carries one.
type Step string

const (
	StepCompile Step = "compile"
	StepDeploy  Step = "deploy"
	StepRead    Step = "read"
	StepWrite   Step = "write"
	StepVerify  Step = "verify"
)

var (
	ErrNoContractAddress = errors.New("receipt has no contract address")
	ErrNoCode            = errors.New("no code at contract address")
	ErrReverted          = errors.New("transaction reverted")
)

type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// WrapStep attaches the step to err unless it already carries one.
func WrapStep(step Step, err error) error {
	if err == nil {
		return nil
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return err
	}
	return &StepError{Step: step, Err: err}
}

// StepOf returns the step recorded in err, if any.
func StepOf(err error) (Step, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}
	return "", false
}

// NonceConflictError is returned when the node rejects a transaction because its nonce was already used.
type NonceConflictError struct {
	Account common.Address
	Err     error
}

func (e *NonceConflictError) Error() string {
	return fmt.Sprintf("nonce conflict for %s: %v", e.Account, e.Err)
}

func (e *NonceConflictError) Unwrap() error {
	return e.Err
}

// ReceiptTimeoutError is returned when no receipt appeared within the wait window.
// Raised by the deploy step it means the deployment timed out.
type ReceiptTimeoutError struct {
	TxHash  common.Hash
	Timeout time.Duration
}

func (e *ReceiptTimeoutError) Error() string {
	return fmt.Sprintf("no receipt for transaction %s within %s", e.TxHash, e.Timeout)
}

func (e *ReceiptTimeoutError) Unwrap() error {
	return concurrent.ErrWaitTimeout
}

// IsDeploymentTimeout reports whether err is a receipt timeout of the deploy step.
func IsDeploymentTimeout(err error) bool {
	var timeoutErr *ReceiptTimeoutError
	step, ok := StepOf(err)
	return ok && step == StepDeploy && errors.As(err, &timeoutErr)
}

// RevertedError is returned for a mined transaction with a failed status.
type RevertedError struct {
	TxHash  common.Hash
	Receipt *types.Receipt
}

func (e *RevertedError) Error() string {
	return fmt.Sprintf("transaction %s reverted in block %v", e.TxHash, e.Receipt.BlockNumber)
}

func (e *RevertedError) Unwrap() error {
	return ErrReverted
}
