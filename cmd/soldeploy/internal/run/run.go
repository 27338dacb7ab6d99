package run

import (
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/compile"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/verify"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/contracts"
	"github.com/NilFoundation/soldeploy/internal/telemetry"
	"github.com/NilFoundation/soldeploy/services/pipeline"
	"github.com/NilFoundation/soldeploy/services/verifier"
	"github.com/spf13/cobra"
)

const serviceName = "soldeploy"

type params struct {
	contractName string
	output       string
	solcVersion  string
	value        string
	noVerify     bool
	stats        bool
}

func GetCommand(cfg *common.Config) *cobra.Command {
	p := &params{}

	cmd := &cobra.Command{
		Use:   "run [path to .sol file]",
		Short: "Compile, deploy and verify a contract in one go",
		Long: "Compile, deploy and verify a contract in one go. " +
			"The bundled " + contracts.NameSimpleStorage + " contract is used when no source is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, args, cfg, p)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&p.contractName, "contract", "", "Contract to deploy when the source defines several")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "Where to write the compiler output (default from config)")
	cmd.Flags().StringVar(&p.solcVersion, "solc-version", "", "Compiler version (default from config)")
	cmd.Flags().StringVar(&p.value, "value", verify.DefaultValue, "Value written during verification")
	cmd.Flags().BoolVar(&p.noVerify, "no-verify", false, "Skip the write/read-back verification")
	cmd.Flags().BoolVar(&p.stats, "stats", false, "Print step durations")
	return cmd
}

func buildOptions(args []string, p *params, cfg *common.Config) (*pipeline.Options, error) {
	opts := &pipeline.Options{
		CompilerVersion: cfg.SolcVersion,
		ContractName:    p.contractName,
		OutputPath:      cfg.Output,
	}

	if len(args) > 0 {
		opts.SourceFile = args[0]
	} else {
		source, err := contracts.GetSource(contracts.NameSimpleStorage)
		if err != nil {
			return nil, err
		}
		opts.Sources = map[string]string{contracts.NameSimpleStorage + ".sol": source}
	}

	if !p.noVerify {
		value, err := common.ParseUint256(p.value)
		if err != nil {
			return nil, err
		}
		opts.VerifyValue = value
	}
	return opts, nil
}

func runPipeline(cmd *cobra.Command, args []string, cfg *common.Config, p *params) error {
	compile.ApplyOverrides(cfg, p.output, p.solcVersion)

	opts, err := buildOptions(args, p, cfg)
	if err != nil {
		return err
	}

	service, err := common.NewDeployer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	recorder, err := telemetry.New(serviceName)
	if err != nil {
		return err
	}

	pl := pipeline.New(
		common.NewCompiler(cfg),
		service,
		verifier.New(service),
		recorder,
		logging.NewLogger("pipeline"),
	)
	report, err := pl.Run(cmd.Context(), opts)
	if report != nil {
		printReport(report, p.stats)
	}
	return err
}

func printReport(report *pipeline.Report, stats bool) {
	var b common.Builder
	b.WriteField("Run", report.RunID)
	if report.Artifact != nil {
		b.WriteField("Contract", report.Artifact.SourceFile+":"+report.Artifact.Name)
	}
	if report.Contract != nil {
		b.WriteField("Address", common.GreenStr("%s", report.Contract.Address.Hex()))
	}
	if report.DeployReceipt != nil {
		common.FormatReceipt(&b, report.DeployReceipt)
	}
	b.Print()

	if report.Verification != nil && !common.Quiet {
		verify.PrintResult(report.Verification)
	}

	if !stats {
		return
	}
	var s common.Builder
	for _, step := range report.Steps {
		s.WriteLine(common.CyanStr("%-8s", step.Name),
			common.YellowStr(" count=%d failures=%d total=%s max=%s",
				step.Count, step.Failures, step.Total, step.Max))
	}
	s.Print()
}
