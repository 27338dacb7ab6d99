package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/NilFoundation/soldeploy/common/logging"
	compiler "github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/NilFoundation/soldeploy/tools/solc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	logger := logging.NewLogger("solc")

	cmd := &cobra.Command{
		Short: "Tool for solidity contracts compilation",
		Long:  "For each contract in solidity source this tool will output two files (code-hex and abi) with corresponding names",
	}

	cmd.Flags().StringP("source", "s", "contract.sol", "path to solidity source file")
	cmd.Flags().StringP("contract", "c", "", "particular contract to compile. leave empty to compile all contracts")
	cmd.Flags().StringP("out", "o", "", "output directory (default is the directory of the source)")
	cmd.Flags().String("solc-version", "", "compiler version, installed on demand")
	cmd.Flags().String("solc-path", "", "path to a solc binary")

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to bind flags")
	}
	if err := cmd.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse args")
	}

	sourcePath := viper.GetString("source")
	outDir := viper.GetString("out")
	if outDir == "" {
		outDir = filepath.Dir(sourcePath)
	}

	out, err := compiler.NewCompiler(viper.GetString("solc-path"), logger).
		CompileFile(context.Background(), sourcePath, viper.GetString("solc-version"))
	if err != nil {
		logger.Fatal().Err(err).Msgf("Failed to compile contract `%s`", sourcePath)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create output directory")
	}
	files, err := solc.ExportArtifacts(out, outDir, viper.GetString("contract"))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to export artifacts")
	}
	for _, f := range files {
		logger.Info().Str(logging.FieldOutputPath, f).Msg("Written")
	}
}
