package keygen

import (
	"github.com/NilFoundation/soldeploy/internal/secrets"
	"github.com/spf13/cobra"
)

func FromHexCommand(p *params) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-hex [hex private key]",
		Short: "Import a hex private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secrets.ParseHexKey(args[0])
			if err != nil {
				return err
			}
			p.key = key
			return nil
		},
		SilenceUsage: true,
	}
	return cmd
}
