package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"syscall"

	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/compile"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/config"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/contract"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/keygen"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/run"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/verify"
	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/version"
	"github.com/NilFoundation/soldeploy/common/concurrent"
	"github.com/NilFoundation/soldeploy/common/logging"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type RootCommand struct {
	baseCmd  *cobra.Command
	config   common.Config
	cfgFile  string
	envFile  string
	logLevel string
	verbose  bool
}

var logger = logging.NewLogger("root")

var noConfigCmd = map[string]struct{}{
	"help":             {},
	"keygen":           {},
	"completion":       {},
	"__complete":       {},
	"__completeNoDesc": {},
	"config":           {},
	"version":          {},
}

var noRpcCmd = map[string]struct{}{
	"compile": {},
}

func main() {
	var rootCmd *RootCommand

	rootCmd = &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "soldeploy",
			Short: "Compile, deploy and verify Solidity contracts on EVM nodes",
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				if !rootCmd.verbose {
					zerolog.SetGlobalLevel(zerolog.Disabled)
				} else if err := logging.TrySetupGlobalLevel(rootCmd.logLevel); err != nil {
					return fmt.Errorf("invalid log level %q: %w", rootCmd.logLevel, err)
				}

				if err := godotenv.Load(rootCmd.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("failed to load %s: %w", rootCmd.envFile, err)
				}

				// Set the config file for all commands because some commands can write something to it.
				// E.g. "keygen" command points the config to the generated keystore.
				common.SetConfigFile(rootCmd.cfgFile)
				common.SetDefaults()

				// Traverse up to find the top-level command
				for cmd.HasParent() && cmd.Parent() != rootCmd.baseCmd {
					cmd = cmd.Parent()
				}

				if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
					return nil
				}
				if err := rootCmd.loadConfig(); err != nil {
					return err
				}
				_, withoutRpc := noRpcCmd[cmd.Name()]
				if err := rootCmd.config.Validate(!withoutRpc); err != nil {
					logger.Info().Msgf("set via `%s config set <option> <value>`, SOLDEPLOY_<OPTION> or the config file", os.Args[0])
					return err
				}
				if withoutRpc {
					return nil
				}
				return common.InitRpcClient(cmd.Context(), &rootCmd.config, logger)
			},
			PersistentPostRun: func(cmd *cobra.Command, args []string) {
				common.CloseRpcClient()
			},
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}

	rootCmd.baseCmd.PersistentFlags().StringVarP(&rootCmd.cfgFile, "config", "c", common.DefaultConfigPath, "Path to config file")
	rootCmd.baseCmd.PersistentFlags().StringVar(&rootCmd.envFile, "env-file", ".env", "Path to the dotenv file with SOLDEPLOY_* variables")
	rootCmd.baseCmd.PersistentFlags().StringVarP(&rootCmd.logLevel, "log-level", "l", "info", "Log level: trace|debug|info|warn|error|fatal|panic")
	rootCmd.baseCmd.PersistentFlags().BoolVarP(
		&common.Quiet,
		"quiet",
		"q",
		false,
		"Quiet mode (print only the result and exit)",
	)
	rootCmd.baseCmd.PersistentFlags().BoolVarP(
		&rootCmd.verbose,
		"verbose",
		"v",
		false,
		"Verbose mode (print logs)",
	)

	rootCmd.registerSubCommands()
	rootCmd.Execute()
}

// registerSubCommands adds all subcommands to the root command
func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		compile.GetCommand(&rc.config),
		config.GetCommand(&rc.cfgFile),
		contract.GetDeployCommand(&rc.config),
		contract.GetCallCommand(&rc.config),
		contract.GetSendCommand(&rc.config),
		keygen.GetCommand(),
		run.GetCommand(&rc.config),
		verify.GetCommand(&rc.config),
		version.GetCommand(),
	)
}

func decodeAddress(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(ethcommon.Address{}) {
		s, _ := data.(string)
		if s == "" {
			return ethcommon.Address{}, nil
		}
		var res ethcommon.Address
		if err := res.UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return res, nil
	}
	return data, nil
}

func updateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		config.DecodeHook,
		decodeAddress,
	)
}

// loadConfig loads the configuration from the config file and the environment
func (rc *RootCommand) loadConfig() error {
	err := viper.ReadInConfig()

	// Create file if it doesn't exist
	if errors.As(err, new(viper.ConfigFileNotFoundError)) || errors.Is(err, os.ErrNotExist) {
		logger.Info().Msg("Config file not found. Creating a new one...")

		path, errCfg := common.InitDefaultConfig(rc.cfgFile)
		if errCfg != nil {
			logger.Error().Err(errCfg).Msg("Failed to create config")
			return errCfg
		}

		logger.Info().Msgf("Config file created successfully at %s", path)
	} else if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// the whole tree is decoded so that values bound to the environment are included
	var settings struct {
		Soldeploy common.Config `mapstructure:"soldeploy"`
	}
	if err := viper.Unmarshal(&settings, updateDecoderConfig); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	rc.config = settings.Soldeploy

	logger.Debug().Msg("Configuration loaded successfully")
	return nil
}

// Execute runs the root command and handles any errors
func (rc *RootCommand) Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go concurrent.OnSignal(ctx, logger, cancel, os.Interrupt, syscall.SIGTERM)

	if err := rc.baseCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		cancel()
		os.Exit(1)
	}
}
