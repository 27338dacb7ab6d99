package deployer

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/NilFoundation/soldeploy/client"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/signer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

const (
	DefaultReceiptTimeout      = 30 * time.Second
	DefaultReceiptPollInterval = 200 * time.Millisecond
)

type Service struct {
	client client.Client
	signer signer.Signer
	logger zerolog.Logger

	receiptTimeout time.Duration
	pollInterval   time.Duration
}

type Option func(*Service)

func WithReceiptTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.receiptTimeout = timeout
		}
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.pollInterval = interval
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a deployment service. The client is shared with the caller and is not closed here.
func NewService(c client.Client, s signer.Signer, opts ...Option) *Service {
	service := &Service{
		client:         c,
		signer:         s,
		logger:         logging.NewLogger("deployer"),
		receiptTimeout: DefaultReceiptTimeout,
		pollInterval:   DefaultReceiptPollInterval,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *Service) Client() client.Client {
	return s.client
}

func (s *Service) Signer() signer.Signer {
	return s.signer
}

// CheckConnection asks the node for its chain id. A transport failure wraps client.ErrConnection.
func (s *Service) CheckConnection(ctx context.Context) (*big.Int, error) {
	chainId, err := s.client.ChainID(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Node is not reachable")
		return nil, err
	}
	s.logger.Debug().Stringer(logging.FieldChainId, chainId).Msg("Connected to node")
	return chainId, nil
}

func (s *Service) send(ctx context.Context, req *signer.Request) (common.Hash, error) {
	hash, err := s.signer.Send(ctx, s.client, req)
	if errors.Is(err, client.ErrNonceConflict) {
		return common.Hash{}, &NonceConflictError{Account: s.signer.Address(), Err: err}
	}
	if err != nil {
		return common.Hash{}, err
	}

	s.logger.Info().
		Stringer(logging.FieldTxHash, hash).
		Str(logging.FieldSignerMode, string(s.signer.Mode())).
		Msg("Transaction sent")
	return hash, nil
}
