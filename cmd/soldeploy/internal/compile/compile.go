package compile

import (
	"sort"

	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("compileCommand")

type params struct {
	output      string
	solcVersion string
}

func GetCommand(cfg *common.Config) *cobra.Command {
	p := &params{}

	cmd := &cobra.Command{
		Use:   "compile [path to .sol file]",
		Short: "Compile a Solidity source and store the compiler output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args, cfg, p)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&p.output, "output", "o", "", "Where to write the compiler output (default from config)")
	cmd.Flags().StringVar(&p.solcVersion, "solc-version", "", "Compiler version (default from config)")
	return cmd
}

func ApplyOverrides(cfg *common.Config, output, solcVersion string) {
	if output != "" {
		cfg.Output = output
	}
	if solcVersion != "" {
		cfg.SolcVersion = solcVersion
	}
}

func runCompile(cmd *cobra.Command, args []string, cfg *common.Config, p *params) error {
	ApplyOverrides(cfg, p.output, p.solcVersion)

	out, err := common.NewCompiler(cfg).CompileFile(cmd.Context(), args[0], cfg.SolcVersion)
	if err != nil {
		return err
	}
	if err := solc.WriteOutput(cfg.Output, out); err != nil {
		logger.Error().Err(err).Msg("Failed to write compiler output")
		return err
	}

	var b common.Builder
	for _, name := range out.ContractNames() {
		artifact, err := out.Contract(name)
		if err != nil {
			b.WriteLine(common.YellowStr("%s: %v", name, err))
			continue
		}
		methods := make([]string, 0, len(artifact.ABI.Methods))
		for _, m := range artifact.ABI.Methods {
			methods = append(methods, m.Sig)
		}
		sort.Strings(methods)

		b.WriteField("Contract", common.GreenStr("%s", name))
		b.WriteField("Bytecode size", len(artifact.Bytecode))
		for _, m := range methods {
			b.WriteField("  Method", m)
		}
	}
	b.WriteField("Output", cfg.Output)
	b.Print()
	return nil
}
