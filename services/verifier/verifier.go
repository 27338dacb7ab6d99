package verifier

import (
	"context"
	"fmt"

	"github.com/NilFoundation/soldeploy/common/check"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/services/deployer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
)

const (
	DefaultGetter = "retrieve"
	DefaultSetter = "store"
)

type Verifier struct {
	deployer *deployer.Service
	logger   zerolog.Logger

	getter string
	setter string
	expect func(written any) any
}

type Option func(*Verifier)

func WithGetter(name string) Option {
	return func(v *Verifier) {
		if name != "" {
			v.getter = name
		}
	}
}

func WithSetter(name string) Option {
	return func(v *Verifier) {
		if name != "" {
			v.setter = name
		}
	}
}

// WithExpectation replaces the expected read-back value, which is the written value by default.
func WithExpectation(expect func(written any) any) Option {
	return func(v *Verifier) {
		v.expect = expect
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

func New(d *deployer.Service, opts ...Option) *Verifier {
	v := &Verifier{
		deployer: d,
		logger:   logging.NewLogger("verifier"),
		getter:   DefaultGetter,
		setter:   DefaultSetter,
		expect:   func(written any) any { return written },
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type Result struct {
	State   State
	History []State

	Initial  any
	Written  any
	Expected any
	Final    any

	WriteTxHash  common.Hash
	WriteReceipt *types.Receipt
}

func (r *Result) moveTo(next State) {
	check.PanicIfNotf(r.State.canMoveTo(next), "invalid transition %s -> %s", r.State, next)
	r.State = next
	r.History = append(r.History, next)
}

// Run reads the current value, writes value through the setter and reads it back.
// The returned result is in StateVerified on success and StateFailed otherwise.
func (v *Verifier) Run(ctx context.Context, contract *deployer.Contract, value any) (*Result, error) {
	res := &Result{
		State:   StateUnverified,
		History: []State{StateUnverified},
		Written: value,
	}
	logger := v.logger.With().Stringer(logging.FieldContractAddress, contract.Address).Logger()

	if err := v.run(ctx, logger, contract, res); err != nil {
		res.moveTo(StateFailed)
		logger.Error().Err(err).Str(logging.FieldState, string(res.State)).Msg("Verification failed")
		return res, err
	}
	return res, nil
}

func (v *Verifier) run(ctx context.Context, logger zerolog.Logger, contract *deployer.Contract, res *Result) error {
	initial, err := v.read(ctx, contract)
	if err != nil {
		return err
	}
	res.Initial = initial
	logger.Info().Any("value", initial).Msg("Initial value")

	hash, err := v.deployer.Submit(ctx, contract, v.setter, []any{res.Written})
	if err != nil {
		return err
	}
	res.WriteTxHash = hash
	res.moveTo(StatePendingWrite)
	logger.Debug().Stringer(logging.FieldTxHash, hash).Str(logging.FieldState, string(res.State)).Send()

	receipt, err := v.deployer.WaitForReceipt(ctx, hash)
	if err != nil {
		return deployer.WrapStep(deployer.StepWrite, err)
	}
	res.WriteReceipt = receipt
	res.moveTo(StateConfirmed)
	logger.Info().
		Stringer(logging.FieldTxHash, hash).
		Any("value", res.Written).
		Msg("Value written")

	final, err := v.read(ctx, contract)
	if err != nil {
		return err
	}
	res.Final = final
	res.Expected = v.expect(res.Written)

	if !ValuesEqual(res.Expected, final) {
		return deployer.WrapStep(deployer.StepVerify, &MismatchError{
			Method:   v.getter,
			Expected: res.Expected,
			Actual:   final,
		})
	}

	res.moveTo(StateVerified)
	logger.Info().Any("value", final).Msg("Value verified")
	return nil
}

func (v *Verifier) read(ctx context.Context, contract *deployer.Contract) (any, error) {
	values, err := v.deployer.Call(ctx, contract, v.getter)
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return nil, deployer.WrapStep(deployer.StepRead, fmt.Errorf("%s returned no values", v.getter))
	case 1:
		return values[0], nil
	default:
		return values, nil
	}
}
