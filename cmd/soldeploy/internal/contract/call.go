package contract

import (
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/services/deployer"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

type callParams struct {
	contractName string
	nonce        uint64
	gas          uint64
	noWait       bool
}

func GetCallCommand(cfg *common.Config) *cobra.Command {
	p := &callParams{}

	cmd := &cobra.Command{
		Use:   "call [address] [method] [args...]",
		Short: "Perform a read-only call using the stored ABI",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, args, cfg, p)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&p.contractName, "contract", "", "Contract whose ABI is used")
	return cmd
}

func GetSendCommand(cfg *common.Config) *cobra.Command {
	p := &callParams{}

	cmd := &cobra.Command{
		Use:   "send [address] [method] [args...]",
		Short: "Send a transaction calling a contract method using the stored ABI",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, args, cfg, p)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&p.contractName, "contract", "", "Contract whose ABI is used")
	cmd.Flags().Uint64Var(&p.nonce, "nonce", 0, "Use this nonce instead of the pending transaction count")
	cmd.Flags().Uint64Var(&p.gas, "gas", 0, "Gas limit (estimated by the node when omitted)")
	cmd.Flags().BoolVar(&p.noWait, "no-wait", false, "Do not wait for the receipt")
	return cmd
}

func prepareCall(cmd *cobra.Command, args []string, cfg *common.Config, p *callParams) (
	*deployer.Service, *deployer.Contract, []any, error,
) {
	var address ethcommon.Address
	if err := address.UnmarshalText([]byte(args[0])); err != nil {
		return nil, nil, nil, err
	}

	artifact, err := common.LoadArtifact(cfg, p.contractName)
	if err != nil {
		return nil, nil, nil, err
	}

	inputs, err := common.MethodInputs(artifact.ABI, args[1])
	if err != nil {
		return nil, nil, nil, err
	}
	methodArgs, err := common.ParseCallArguments(args[2:], inputs)
	if err != nil {
		return nil, nil, nil, err
	}

	service, err := common.NewDeployer(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return service, deployer.NewContract(address, artifact.ABI), methodArgs, nil
}

func runCall(cmd *cobra.Command, args []string, cfg *common.Config, p *callParams) error {
	service, contract, methodArgs, err := prepareCall(cmd, args, cfg, p)
	if err != nil {
		return err
	}

	values, err := service.Call(cmd.Context(), contract, args[1], methodArgs...)
	if err != nil {
		return err
	}

	var b common.Builder
	outputs := contract.ABI.Methods[args[1]].Outputs
	for i, v := range values {
		name := outputs[i].Name
		if name == "" {
			name = outputs[i].Type.String()
		}
		b.WriteField(name, common.FormatValue(v))
	}
	b.Print()
	return nil
}

func runSend(cmd *cobra.Command, args []string, cfg *common.Config, p *callParams) error {
	service, contract, methodArgs, err := prepareCall(cmd, args, cfg, p)
	if err != nil {
		return err
	}

	var b common.Builder
	opts := txOptions(cmd.Flags(), p.nonce, p.gas)
	if p.noWait {
		hash, err := service.Submit(cmd.Context(), contract, args[1], methodArgs, opts...)
		if err != nil {
			return err
		}
		b.WriteField("Transaction", hash.Hex())
		b.Print()
		return nil
	}

	receipt, err := service.Transact(cmd.Context(), contract, args[1], methodArgs, opts...)
	if err != nil {
		return err
	}
	common.FormatReceipt(&b, receipt)
	b.Print()
	return nil
}
