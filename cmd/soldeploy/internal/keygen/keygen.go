package keygen

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/NilFoundation/soldeploy/internal/secrets"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var logger = logging.NewLogger("keygenCommand")

var ErrNoPassword = errors.New("keystore password is not provided")

type params struct {
	keystorePath string
	passwordEnv  string
	noPatch      bool

	// filled by the subcommand
	key *ecdsa.PrivateKey
}

func GetCommand() *cobra.Command {
	p := &params{}

	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new key or import a hex private key into an encrypted keystore",
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return storeKey(p)
		},
		SilenceUsage: true,
	}

	keygenCmd.PersistentFlags().StringVar(&p.keystorePath, "keystore", "",
		"Keystore file to write (default ~/.config/soldeploy/keystore/<address>.json)")
	keygenCmd.PersistentFlags().StringVar(&p.passwordEnv, "password-env", secrets.DefaultKeystorePasswordEnv,
		"Environment variable holding the keystore password")
	keygenCmd.PersistentFlags().BoolVar(&p.noPatch, "no-config", false,
		"Do not point the config file to the new keystore")

	keygenCmd.AddCommand(
		NewCommand(p),
		FromHexCommand(p),
	)
	return keygenCmd
}

func defaultKeystorePath(key *ecdsa.PrivateKey) string {
	address := crypto.PubkeyToAddress(key.PublicKey)
	return filepath.Join(filepath.Dir(common.DefaultConfigPath), "keystore", address.Hex()+".json")
}

func readPassword(envName string) (string, error) {
	if password, ok := os.LookupEnv(envName); ok {
		return password, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: set %s", ErrNoPassword, envName)
	}

	fmt.Fprint(os.Stderr, "Keystore password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func storeKey(p *params) error {
	if p.key == nil {
		return nil
	}

	password, err := readPassword(p.passwordEnv)
	if err != nil {
		return err
	}

	path := p.keystorePath
	if path == "" {
		path = defaultKeystorePath(p.key)
	}
	address, err := secrets.WriteKeystore(path, p.key, password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to write keystore")
		return err
	}

	var b common.Builder
	b.WriteField("Address", common.GreenStr("%s", address.Hex()))
	b.WriteField("Keystore", path)
	b.Print()

	if p.noPatch {
		return nil
	}
	delta := map[string]any{
		common.KeySourceField:    secrets.SourceKeystore,
		common.KeystorePathField: path,
	}
	if p.passwordEnv != secrets.DefaultKeystorePasswordEnv {
		delta["keystore_password_env"] = p.passwordEnv
	}
	if err := common.PatchConfig(delta); err != nil {
		logger.Error().Err(err).Msg("Failed to point the config file to the keystore")
	}
	return nil
}
