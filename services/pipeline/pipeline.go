package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/NilFoundation/soldeploy/internal/telemetry"
	"github.com/NilFoundation/soldeploy/services/deployer"
	"github.com/NilFoundation/soldeploy/services/verifier"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrNoSources = errors.New("no sources to compile")

type Options struct {
	// SourceFile is read from disk. Sources is used when it is empty.
	SourceFile string
	Sources    map[string]string

	CompilerVersion string
	// ContractName may be omitted when the sources define a single contract.
	ContractName string
	// OutputPath receives the compiler output. Empty disables persistence.
	OutputPath string

	ConstructorArgs []any
	DeployOptions   []deployer.TxOption

	// VerifyValue is written and read back after deployment. Nil skips verification.
	VerifyValue any
}

type Report struct {
	RunID uuid.UUID

	Artifact      *solc.Artifact
	Contract      *deployer.Contract
	DeployTxHash  common.Hash
	DeployReceipt *types.Receipt
	Verification  *verifier.Result

	Steps []telemetry.StepStat
}

type Pipeline struct {
	compiler *solc.Compiler
	deployer *deployer.Service
	verifier *verifier.Verifier
	recorder *telemetry.Recorder
	logger   zerolog.Logger
}

func New(
	compiler *solc.Compiler, d *deployer.Service, v *verifier.Verifier, recorder *telemetry.Recorder, logger zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		compiler: compiler,
		deployer: d,
		verifier: v,
		recorder: recorder,
		logger:   logger,
	}
}

// Run compiles the sources, persists the output, deploys the selected contract and verifies it.
// The returned report is filled up to the step that failed.
func (p *Pipeline) Run(ctx context.Context, opts *Options) (*Report, error) {
	report := &Report{RunID: uuid.New()}
	logger := p.logger.With().Str(logging.FieldRunId, report.RunID.String()).Logger()
	logger.Info().Msg("Pipeline started")

	err := p.run(ctx, logger, opts, report)
	report.Steps = p.recorder.Steps()
	if err != nil {
		step, _ := deployer.StepOf(err)
		logger.Error().Err(err).Str(logging.FieldStep, string(step)).Msg("Pipeline failed")
		return report, err
	}

	logger.Info().Stringer(logging.FieldContractAddress, report.Contract.Address).Msg("Pipeline finished")
	return report, nil
}

func (p *Pipeline) run(ctx context.Context, logger zerolog.Logger, opts *Options, report *Report) error {
	measurer := p.recorder.NewMeasurer(string(deployer.StepCompile))
	artifact, err := p.compile(ctx, logger, opts)
	measurer.Measure(err)
	if err != nil {
		return deployer.WrapStep(deployer.StepCompile, err)
	}
	report.Artifact = artifact

	measurer = p.recorder.NewMeasurer(string(deployer.StepDeploy))
	deployment, err := p.deployer.Deploy(ctx, artifact, opts.ConstructorArgs, opts.DeployOptions...)
	measurer.Measure(err)
	if err != nil {
		return err
	}
	report.Contract = deployment.Contract
	report.DeployTxHash = deployment.TxHash
	report.DeployReceipt = deployment.Receipt
	logger.Info().
		Stringer(logging.FieldContractAddress, deployment.Contract.Address).
		Stringer(logging.FieldTxHash, deployment.TxHash).
		Msg("Deployed")

	if opts.VerifyValue == nil || p.verifier == nil {
		return nil
	}

	measurer = p.recorder.NewMeasurer(string(deployer.StepVerify))
	report.Verification, err = p.verifier.Run(ctx, deployment.Contract, opts.VerifyValue)
	measurer.Measure(err)
	return err
}

func (p *Pipeline) compile(ctx context.Context, logger zerolog.Logger, opts *Options) (*solc.Artifact, error) {
	sources := opts.Sources
	if opts.SourceFile != "" {
		content, err := os.ReadFile(opts.SourceFile)
		if err != nil {
			return nil, &solc.CompilationError{Err: err}
		}
		sources = map[string]string{filepath.Base(opts.SourceFile): string(content)}
	}
	if len(sources) == 0 {
		return nil, &solc.CompilationError{Err: ErrNoSources}
	}

	out, err := p.compiler.Compile(ctx, &solc.Request{Sources: sources, Version: opts.CompilerVersion})
	if err != nil {
		return nil, err
	}

	solc.PersistBestEffort(logger, opts.OutputPath, out)

	name := opts.ContractName
	if name == "" {
		names := out.ContractNames()
		if len(names) == 0 {
			return nil, solc.ErrContractNotFound
		}
		if len(names) != 1 {
			return nil, fmt.Errorf("%w: choose one of %s", solc.ErrAmbiguousContract, strings.Join(names, ", "))
		}
		name = names[0]
	}
	return out.Contract(name)
}
