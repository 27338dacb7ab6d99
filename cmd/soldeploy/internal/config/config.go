package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/NilFoundation/soldeploy/cmd/soldeploy/internal/common"
	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = logging.NewLogger("configCommand")

var noConfigCmd = map[string]struct{}{
	"help": {},
	"init": {},
	"set":  {},
}

var ErrUnknownOption = errors.New("unknown option")

func GetCommand(configPath *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:          "config",
		Short:        "Configuration management",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			common.SetConfigFile(*configPath)
			common.SetDefaults()

			if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
				return nil
			}

			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Initialize config file",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := common.InitDefaultConfig(*configPath)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to create config")
				return err
			}

			var b common.Builder
			b.WriteField("Config initialized", path)
			b.Print()
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:          "show",
		Short:        "Show the effective configuration",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var b common.Builder
			b.WriteField("Config file", viper.ConfigFileUsed())

			section, _ := viper.AllSettings()[common.ConfigSection].(map[string]any)
			keys := make([]string, 0, len(section))
			for key := range section {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				b.WriteField(key, section[key])
			}
			b.Print()
			return nil
		},
	}

	getCmd := &cobra.Command{
		Use:          "get [key]",
		Short:        "Get a config value",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !common.IsSupportedOption(key) {
				return fmt.Errorf("%w %q", ErrUnknownOption, key)
			}
			value := viper.Get(common.ConfigSection + "." + key)
			if value == nil {
				logger.Warn().Msgf("Key %q is not found in config", key)
				return nil
			}

			var b common.Builder
			b.WriteField(key, value)
			b.Print()
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:          "set [key] [value]",
		Short:        "Set a config value",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsSupportedOption(args[0]) {
				return fmt.Errorf("%w %q", ErrUnknownOption, args[0])
			}

			if err := common.PatchConfig(map[string]any{
				args[0]: args[1],
			}); err != nil {
				logger.Error().Err(err).Msg("Failed to set config value")
				return err
			}
			logger.Info().Msgf("Set %q to %q", args[0], args[1])
			return nil
		},
	}

	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(getCmd)
	configCmd.AddCommand(setCmd)

	return configCmd
}
