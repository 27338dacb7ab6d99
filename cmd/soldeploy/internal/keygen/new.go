package keygen

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

func NewCommand(p *params) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new key",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateKey()
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
