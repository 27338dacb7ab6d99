package verify

import (
	"strings"

	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/contracts"
	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/NilFoundation/soldeploy/services/deployer"
	"github.com/NilFoundation/soldeploy/services/verifier"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var logger = logging.NewLogger("verifyCommand")

const DefaultValue = "42"

type params struct {
	contractName string
	getter       string
	setter       string
	value        string
}

func GetCommand(cfg *common.Config) *cobra.Command {
	p := &params{}

	cmd := &cobra.Command{
		Use:   "verify [address]",
		Short: "Write a value to a deployed contract and check that it reads back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, cfg, p)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&p.contractName, "contract", "", "Contract whose ABI is used")
	cmd.Flags().StringVar(&p.getter, "getter", verifier.DefaultGetter, "Read method")
	cmd.Flags().StringVar(&p.setter, "setter", verifier.DefaultSetter, "Write method taking one uint256")
	cmd.Flags().StringVar(&p.value, "value", DefaultValue, "Value to write, decimal or 0x-prefixed hex")
	return cmd
}

// loadArtifact prefers the stored compiler output and falls back to the bundled SimpleStorage ABI.
func loadArtifact(cfg *common.Config, name string) (*solc.Artifact, error) {
	artifact, err := common.LoadArtifact(cfg, name)
	if err == nil || name != "" {
		return artifact, err
	}
	logger.Warn().Err(err).Msgf("Using the ABI of the bundled %s contract", contracts.NameSimpleStorage)
	return contracts.GetArtifact(contracts.NameSimpleStorage)
}

func runVerify(cmd *cobra.Command, args []string, cfg *common.Config, p *params) error {
	var address ethcommon.Address
	if err := address.UnmarshalText([]byte(args[0])); err != nil {
		return err
	}
	value, err := common.ParseUint256(p.value)
	if err != nil {
		return err
	}

	artifact, err := loadArtifact(cfg, p.contractName)
	if err != nil {
		return err
	}

	service, err := common.NewDeployer(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	v := verifier.New(service,
		verifier.WithGetter(p.getter),
		verifier.WithSetter(p.setter),
	)
	res, err := v.Run(cmd.Context(), deployer.NewContract(address, artifact.ABI), value)
	if res != nil && !common.Quiet {
		PrintResult(res)
	}
	return err
}

func PrintResult(res *verifier.Result) {
	history := make([]string, 0, len(res.History))
	for _, s := range res.History {
		history = append(history, string(s))
	}

	state := common.GreenStr("%s", res.State)
	if res.State != verifier.StateVerified {
		state = common.RedStr("%s", res.State)
	}

	var b common.Builder
	b.WriteField("State", state)
	b.WriteField("History", strings.Join(history, " -> "))
	if res.Initial != nil {
		b.WriteField("Initial value", common.FormatValue(res.Initial))
	}
	b.WriteField("Written value", common.FormatValue(res.Written))
	if res.WriteReceipt != nil {
		b.WriteField("Write transaction", res.WriteTxHash.Hex())
		b.WriteField("Write gas used", res.WriteReceipt.GasUsed)
	}
	if res.Final != nil {
		b.WriteField("Final value", common.FormatValue(res.Final))
	}
	b.Print()
}
