package pipeline

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/NilFoundation/soldeploy/client/rpc"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/secrets"
	"github.com/NilFoundation/soldeploy/internal/signer"
	"github.com/NilFoundation/soldeploy/internal/testaide"
	"github.com/NilFoundation/soldeploy/services/verifier"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	ganacheImage = "trufflesuite/ganache:v7.9.2"
	ganachePort  = "8545/tcp"
	// first account of the deterministic ganache wallet
	ganacheKey = "4f3edf983ac636a65a842ce7c78d9aa706d3b113bce9c46f30d7d21715b23b1d"
)

type SuiteGanache struct {
	suite.Suite

	ctx       context.Context
	container testcontainers.Container
	client    *rpc.Client
}

func (s *SuiteGanache) SetupSuite() {
	s.ctx = context.Background()

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        ganacheImage,
			ExposedPorts: []string{ganachePort},
			Cmd:          []string{"--wallet.deterministic", "--chain.chainId", "1337"},
			WaitingFor:   wait.ForListeningPort(ganachePort).WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(s.ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(s.ctx, ganachePort)
	s.Require().NoError(err)

	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())
	s.Require().NoError(testaide.WaitForEndpoint(s.ctx, endpoint))

	s.client, err = rpc.NewClient(s.ctx, endpoint, logging.Nop())
	s.Require().NoError(err)
}

func (s *SuiteGanache) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *SuiteGanache) run(sgn signer.Signer) {
	p := newPipeline(s.T(), s.client, sgn)

	opts := sourceOptions(s.T())
	opts.VerifyValue = big.NewInt(12345)

	report, err := p.Run(s.ctx, opts)
	s.Require().NoError(err)
	s.Equal(verifier.StateVerified, report.Verification.State)
	s.NotZero(report.Contract.Address)
}

func (s *SuiteGanache) TestLocalSigning() {
	key, err := secrets.ParseHexKey(ganacheKey)
	s.Require().NoError(err)

	s.run(signer.NewLocal(key, nil, logging.Nop()))
}

func (s *SuiteGanache) TestNodeSigning() {
	sgn, err := signer.NewNodeDefaultAccount(s.ctx, s.client, logging.Nop())
	s.Require().NoError(err)

	s.run(sgn)
}

func TestSuiteGanache(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "1" {
		t.Skip("set INTEGRATION_TEST=1 to run against a ganache container")
	}

	suite.Run(t, new(SuiteGanache))
}
