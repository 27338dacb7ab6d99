package verifier

import (
	"context"
	"math/big"
	"testing"

	"github.com/NilFoundation/soldeploy/client"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/contracts"
	"github.com/NilFoundation/soldeploy/internal/signer"
	"github.com/NilFoundation/soldeploy/internal/testaide"
	"github.com/NilFoundation/soldeploy/services/deployer"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"
)

type SuiteVerifier struct {
	suite.Suite

	ctx      context.Context
	service  *deployer.Service
	contract *deployer.Contract
}

func (s *SuiteVerifier) SetupTest() {
	s.ctx = context.Background()

	chain := testaide.NewSimulatedChain(s.T())
	s.service = deployer.NewService(chain.Client(), signer.NewLocal(chain.Key, nil, logging.Nop()),
		deployer.WithLogger(logging.Nop()))

	artifact, err := contracts.GetArtifact(contracts.NameSimpleStorage)
	s.Require().NoError(err)
	deployment, err := s.service.Deploy(s.ctx, artifact, nil)
	s.Require().NoError(err)
	s.contract = deployment.Contract
}

func (s *SuiteVerifier) newVerifier(opts ...Option) *Verifier {
	return New(s.service, append([]Option{WithLogger(logging.Nop())}, opts...)...)
}

func (s *SuiteVerifier) TestRoundTrip() {
	res, err := s.newVerifier().Run(s.ctx, s.contract, big.NewInt(1234))
	s.Require().NoError(err)

	s.Equal(StateVerified, res.State)
	s.Equal([]State{StateUnverified, StatePendingWrite, StateConfirmed, StateVerified}, res.History)
	s.True(ValuesEqual(0, res.Initial))
	s.Equal(big.NewInt(1234), res.Final)
	s.Equal(types.ReceiptStatusSuccessful, res.WriteReceipt.Status)
}

func (s *SuiteVerifier) TestNoopWrite() {
	res, err := s.newVerifier().Run(s.ctx, s.contract, big.NewInt(0))
	s.Require().NoError(err)

	s.Equal(StateVerified, res.State)
	s.True(ValuesEqual(res.Initial, res.Final))
	s.Equal(types.ReceiptStatusSuccessful, res.WriteReceipt.Status)
}

func (s *SuiteVerifier) TestRoundTripProperty() {
	v := s.newVerifier()

	rapid.Check(s.T(), func(t *rapid.T) {
		value := new(uint256.Int)
		for i := range value {
			value[i] = rapid.Uint64().Draw(t, "limb")
		}

		res, err := v.Run(s.ctx, s.contract, value.ToBig())
		if err != nil {
			t.Fatalf("verification failed: %v", err)
		}
		if res.State != StateVerified || !ValuesEqual(value, res.Final) {
			t.Fatalf("wrote %s, read back %v", value.Dec(), res.Final)
		}
	})
}

func (s *SuiteVerifier) TestCustomExpectation() {
	v := s.newVerifier(WithExpectation(func(written any) any {
		return new(big.Int).Add(written.(*big.Int), big.NewInt(1))
	}))

	res, err := v.Run(s.ctx, s.contract, big.NewInt(7))
	s.Require().ErrorIs(err, ErrVerificationMismatch)
	s.Equal(StateFailed, res.State)

	step, ok := deployer.StepOf(err)
	s.Require().True(ok)
	s.Equal(deployer.StepVerify, step)
}

func (s *SuiteVerifier) TestUnknownSetter() {
	res, err := s.newVerifier(WithSetter("setValue")).Run(s.ctx, s.contract, big.NewInt(1))
	s.Require().Error(err)
	s.Equal(StateFailed, res.State)
	s.Equal([]State{StateUnverified, StateFailed}, res.History)

	step, _ := deployer.StepOf(err)
	s.Equal(deployer.StepWrite, step)
}

func TestSuiteVerifier(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(SuiteVerifier))
}

// A node that accepts every write but always reads back the same value.
func TestMismatch(t *testing.T) {
	t.Parallel()

	artifact, err := contracts.GetArtifact(contracts.NameSimpleStorage)
	require.NoError(t, err)
	address := common.HexToAddress("0x42")

	mock := &client.ClientMock{
		ChainIDFunc: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1), nil
		},
		GasPriceFunc: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1), nil
		},
		EstimateGasFunc: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
			return 50_000, nil
		},
		SendRawTransactionFunc: func(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
			return tx.Hash(), nil
		},
		GetTransactionReceiptFunc: func(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash}, nil
		},
		CallFunc: func(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
			return common.LeftPadBytes([]byte{5}, 32), nil
		},
	}
	service := deployer.NewService(mock, signer.NewLocal(testaide.GenerateKey(t), big.NewInt(1), logging.Nop()),
		deployer.WithLogger(logging.Nop()))

	res, err := New(service, WithLogger(logging.Nop())).Run(context.Background(),
		deployer.NewContract(address, artifact.ABI), big.NewInt(6))

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, big.NewInt(6), mismatch.Expected)
	assert.Equal(t, big.NewInt(5), mismatch.Actual)
	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, []State{StateUnverified, StatePendingWrite, StateConfirmed, StateFailed}, res.History)

	// read, write, read
	assert.Len(t, mock.CallCalls(), 2)
	assert.Len(t, mock.SendRawTransactionCalls(), 1)
}

func TestValuesEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, ValuesEqual(big.NewInt(5), uint64(5)))
	assert.True(t, ValuesEqual(uint256.NewInt(5), big.NewInt(5)))
	assert.True(t, ValuesEqual(int8(-1), big.NewInt(-1)))
	assert.False(t, ValuesEqual(big.NewInt(5), big.NewInt(6)))
	assert.True(t, ValuesEqual("abc", "abc"))
	assert.False(t, ValuesEqual("5", big.NewInt(5)))
	assert.True(t, ValuesEqual([]byte{1}, []byte{1}))
}

func TestStateTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, StateUnverified.canMoveTo(StatePendingWrite))
	assert.False(t, StateUnverified.canMoveTo(StateVerified))
	assert.False(t, StateVerified.canMoveTo(StateFailed))
	assert.True(t, StateFailed.IsFinal())
	assert.False(t, StateConfirmed.IsFinal())

	res := &Result{State: StateUnverified}
	assert.Panics(t, func() { res.moveTo(StateConfirmed) })
}
