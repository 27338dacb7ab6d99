package contract

import (
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/compile"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/NilFoundation/soldeploy/services/deployer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var logger = logging.NewLogger("contractCommand")

type deployParams struct {
	contractName string
	output       string
	solcVersion  string
	nonce        uint64
	gas          uint64
	noWait       bool
}

func GetDeployCommand(cfg *common.Config) *cobra.Command {
	p := &deployParams{}

	cmd := &cobra.Command{
		Use:   "deploy [path to .sol file] [constructor args...]",
		Short: "Compile a Solidity source and deploy one of its contracts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, args, cfg, p)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&p.contractName, "contract", "", "Contract to deploy when the source defines several")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "Where to write the compiler output (default from config)")
	cmd.Flags().StringVar(&p.solcVersion, "solc-version", "", "Compiler version (default from config)")
	cmd.Flags().Uint64Var(&p.nonce, "nonce", 0, "Use this nonce instead of the pending transaction count")
	cmd.Flags().Uint64Var(&p.gas, "gas", 0, "Gas limit (estimated by the node when omitted)")
	cmd.Flags().BoolVar(&p.noWait, "no-wait", false, "Do not wait for the receipt")
	return cmd
}

// txOptions overrides the nonce only when --nonce is given explicitly.
func txOptions(flags *pflag.FlagSet, nonce, gas uint64) []deployer.TxOption {
	var opts []deployer.TxOption
	if flags.Changed("nonce") {
		opts = append(opts, deployer.WithNonce(nonce))
	}
	if gas != 0 {
		opts = append(opts, deployer.WithGas(gas))
	}
	return opts
}

func runDeploy(cmd *cobra.Command, args []string, cfg *common.Config, p *deployParams) error {
	ctx := cmd.Context()
	compile.ApplyOverrides(cfg, p.output, p.solcVersion)

	out, err := common.NewCompiler(cfg).CompileFile(ctx, args[0], cfg.SolcVersion)
	if err != nil {
		return deployer.WrapStep(deployer.StepCompile, err)
	}
	solc.PersistBestEffort(logger, cfg.Output, out)

	artifact, err := common.SelectArtifact(out, p.contractName)
	if err != nil {
		return deployer.WrapStep(deployer.StepCompile, err)
	}

	inputs, err := common.MethodInputs(artifact.ABI, "")
	if err != nil {
		return err
	}
	ctorArgs, err := common.ParseCallArguments(args[1:], inputs)
	if err != nil {
		return err
	}

	service, err := common.NewDeployer(ctx, cfg)
	if err != nil {
		return deployer.WrapStep(deployer.StepDeploy, err)
	}

	var b common.Builder
	if p.noWait {
		hash, err := service.SubmitDeploy(ctx, artifact, ctorArgs, txOptions(cmd.Flags(), p.nonce, p.gas)...)
		if err != nil {
			return err
		}
		b.WriteField("Transaction", hash.Hex())
		b.Print()
		return nil
	}

	deployment, err := service.Deploy(ctx, artifact, ctorArgs, txOptions(cmd.Flags(), p.nonce, p.gas)...)
	if err != nil {
		return err
	}

	b.WriteField("Contract address", common.GreenStr("%s", deployment.Contract.Address.Hex()))
	common.FormatReceipt(&b, deployment.Receipt)
	b.Print()
	return nil
}
