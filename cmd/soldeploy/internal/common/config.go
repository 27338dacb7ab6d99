package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/NilFoundation/soldeploy/common/check"
	"github.com/NilFoundation/soldeploy/internal/secrets"
	"github.com/NilFoundation/soldeploy/services/deployer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// ConfigSection is the ini section holding all options.
const ConfigSection = "soldeploy"

const EnvPrefix = "SOLDEPLOY"

type Config struct {
	RPCEndpoint string         `mapstructure:"rpc_endpoint"`
	ChainId     uint64         `mapstructure:"chain_id"`
	Address     common.Address `mapstructure:"address"`

	SolcVersion string `mapstructure:"solc_version"`
	SolcPath    string `mapstructure:"solc_path"`
	Output      string `mapstructure:"output"`

	ReceiptTimeout      time.Duration `mapstructure:"receipt_timeout"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`

	secrets.Config `mapstructure:",squash"`
}

const (
	RPCEndpointField         = "rpc_endpoint"
	ChainIdField             = "chain_id"
	AddressField             = "address"
	SolcVersionField         = "solc_version"
	SolcPathField            = "solc_path"
	OutputField              = "output"
	ReceiptTimeoutField      = "receipt_timeout"
	ReceiptPollIntervalField = "receipt_poll_interval"
	KeySourceField           = "key_source"
	KeystorePathField        = "keystore_path"
)

const DefaultOutput = "compiled_code.json"

// Options lists every key accepted in the config section and as SOLDEPLOY_<KEY> environment variable.
var Options = []string{
	RPCEndpointField,
	ChainIdField,
	AddressField,
	SolcVersionField,
	SolcPathField,
	OutputField,
	ReceiptTimeoutField,
	ReceiptPollIntervalField,
	KeySourceField,
	"private_key",
	"private_key_env",
	KeystorePathField,
	"keystore_password_env",
	"vault_address",
	"vault_mount",
	"vault_path",
	"vault_key",
	"vault_role_id",
	"vault_secret_id",
	"vault_approle_mount",
	"aws_region",
	"aws_endpoint",
	"aws_access_key_id",
	"aws_secret_access_key",
	"ssm_parameter",
}

func IsSupportedOption(key string) bool {
	return slices.Contains(Options, key)
}

const InitConfigTemplate = `; Configuration of soldeploy
[soldeploy]

; RPC endpoint of the node. http(s)://, ws(s)://, unix:// and tcp:// are accepted.
; rpc_endpoint = http://127.0.0.1:8545

; Chain id used for signing. Asked from the node when omitted.
; chain_id = 1337

; Compiler version and where to write the compiler output.
; solc_version = 0.8.0
; output = compiled_code.json

; How long to wait for a receipt and how often to poll for it.
; receipt_timeout = 30s
; receipt_poll_interval = 200ms

; Where the deployer key comes from: env, config, keystore, vault or aws-ssm.
; Leave empty to send transactions from an account unlocked on the node.
; key_source = env
; private_key_env = SOLDEPLOY_PRIVATE_KEY

; Account of the node to send from when key_source is empty.
; Defaults to the first account reported by the node.
; address = 0xWRITE_YOUR_ADDRESS_HERE
`

var DefaultConfigPath string

func init() {
	homeDir, err := os.UserHomeDir()
	check.PanicIfErr(err)

	DefaultConfigPath = filepath.Join(homeDir, ".config/soldeploy/config.ini")
}

// SetDefaults registers defaults and environment bindings of every option.
func SetDefaults() {
	viper.SetDefault(ConfigSection+"."+OutputField, DefaultOutput)
	viper.SetDefault(ConfigSection+"."+ReceiptTimeoutField, deployer.DefaultReceiptTimeout)
	viper.SetDefault(ConfigSection+"."+ReceiptPollIntervalField, deployer.DefaultReceiptPollInterval)

	// soldeploy.rpc_endpoint is read from SOLDEPLOY_RPC_ENDPOINT
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, option := range Options {
		check.PanicIfErr(viper.BindEnv(ConfigSection + "." + option))
	}
}

// Validate reports every problem of the configuration at once.
func (c *Config) Validate(needRpc bool) error {
	var result *multierror.Error

	if needRpc && c.RPCEndpoint == "" {
		result = multierror.Append(result, fmt.Errorf("%q is missing in config", RPCEndpointField))
	}
	if c.ReceiptTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("%q must be positive", ReceiptTimeoutField))
	}
	if c.ReceiptPollInterval <= 0 {
		result = multierror.Append(result, fmt.Errorf("%q must be positive", ReceiptPollIntervalField))
	}
	if c.ReceiptPollInterval > c.ReceiptTimeout {
		result = multierror.Append(result,
			fmt.Errorf("%q must not exceed %q", ReceiptPollIntervalField, ReceiptTimeoutField))
	}
	if c.Source != secrets.SourceNone && !slices.Contains(secrets.Sources(), c.Source) {
		result = multierror.Append(result, fmt.Errorf("%q: %w %q", KeySourceField, secrets.ErrUnknownSource, c.Source))
	}

	return result.ErrorOrNil()
}

func InitDefaultConfig(configPath string) (string, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	dirPath := filepath.Dir(configPath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(InitConfigTemplate); err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return configPath, nil
}

// PatchConfig rewrites the given keys in place and appends the ones that are not present yet.
// Comments and unrelated lines are preserved.
func PatchConfig(delta map[string]any) error {
	configPath := viper.ConfigFileUsed()
	check.PanicIfNotf(configPath != "", "config file is not set")

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			configPath, err = InitDefaultConfig(configPath)
		}
		if err != nil {
			return err
		}
	}

	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(string(cfg), "\n"), "\n")
	result := make([]string, 0, len(lines)+len(delta))
	for _, line := range lines {
		key := strings.TrimSpace(strings.Split(line, "=")[0])
		if value, ok := delta[key]; ok {
			result = append(result, fmt.Sprintf("%s = %v", key, value))
			delete(delta, key)
		} else {
			result = append(result, line)
		}
	}

	keys := make([]string, 0, len(delta))
	for key := range delta {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		result = append(result, fmt.Sprintf("%s = %v", key, delta[key]))
	}
	return os.WriteFile(configPath, []byte(strings.Join(result, "\n")+"\n"), 0o600)
}

// SetConfigFile sets the config file for the viper
func SetConfigFile(cfgFile string) {
	viper.SetConfigType("ini")
	viper.SetConfigFile(cfgFile)
}
