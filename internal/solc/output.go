package solc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/rs/zerolog"
)

// WriteOutput stores the compiler output as JSON. The exact bytes produced by the compiler are kept when available.
func WriteOutput(path string, out *Output) error {
	data := out.raw
	if len(data) == 0 {
		var err error
		data, err = json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal compiler output: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func LoadOutput(path string) (*Output, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	out.raw = data
	return &out, nil
}

// PersistBestEffort writes the output and only logs a failure.
// The result of a compilation must not be lost because the artifact could not be saved.
func PersistBestEffort(logger zerolog.Logger, path string, out *Output) {
	if path == "" {
		return
	}
	if err := WriteOutput(path, out); err != nil {
		logger.Warn().Err(err).Str(logging.FieldOutputPath, path).Msg("Failed to persist compiler output")
		return
	}
	logger.Debug().Str(logging.FieldOutputPath, path).Msg("Compiler output saved")
}
