package solc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/fabelx/go-solc-select/pkg/config"
	"github.com/fabelx/go-solc-select/pkg/installer"
	"github.com/fabelx/go-solc-select/pkg/versions"
	"github.com/rs/zerolog"
)

type Compiler struct {
	solcPath string
	logger   zerolog.Logger
}

// NewCompiler creates a compiler adapter.
// A non-empty solcPath pins the binary and disables version management.
func NewCompiler(solcPath string, logger zerolog.Logger) *Compiler {
	return &Compiler{
		solcPath: solcPath,
		logger:   logger,
	}
}

// CompileFile compiles a single source file. The base name of the path is used as the source key.
func (c *Compiler) CompileFile(ctx context.Context, path string, version string) (*Output, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &CompilationError{Err: fmt.Errorf("failed to read source: %w", err)}
	}
	return c.Compile(ctx, &Request{
		Sources: map[string]string{filepath.Base(path): string(content)},
		Version: version,
	})
}

func (c *Compiler) Compile(ctx context.Context, req *Request) (*Output, error) {
	if len(req.Sources) == 0 {
		return nil, &CompilationError{Err: errors.New("no sources given")}
	}

	if req.Version != "" {
		for name, content := range req.Sources {
			if err := CheckPragma(content, req.Version); err != nil {
				return nil, &CompilationError{Err: fmt.Errorf("%s: %w", name, err)}
			}
		}
	}

	solc, err := c.findCompiler(req.Version)
	if err != nil {
		return nil, &CompilationError{Err: err}
	}

	input, err := json.Marshal(req.ToCompilerJsonInput())
	if err != nil {
		return nil, &CompilationError{Err: fmt.Errorf("failed to marshal compiler input: %w", err)}
	}

	c.logger.Info().
		Str(logging.FieldCompilerVersion, req.Version).
		Int("sources", len(req.Sources)).
		Msg("Start contract compiling...")

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, solc, "--standard-json")
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, &CompilationError{
			Messages: []string{stderr.String()},
			Err:      fmt.Errorf("failed to execute `%s`: %w", cmd, err),
		}
	}

	return c.parseOutput(output)
}

func (c *Compiler) parseOutput(data []byte) (*Output, error) {
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &CompilationError{Err: fmt.Errorf("failed to unmarshal compiler output: %w", err)}
	}
	out.raw = data

	var failures []string
	for _, e := range out.Errors {
		switch e.Severity {
		case severityError:
			failures = append(failures, e.String())
		case severityWarning:
			c.logger.Warn().Str("type", e.Type).Msg(e.Message)
		default:
			c.logger.Debug().Str("severity", e.Severity).Msg(e.Message)
		}
	}
	if len(failures) > 0 {
		return nil, &CompilationError{Messages: failures}
	}

	return &out, nil
}

func (c *Compiler) findCompiler(version string) (string, error) {
	if c.solcPath != "" {
		if _, err := os.Stat(c.solcPath); err != nil {
			return "", fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
		}
		return c.solcPath, nil
	}

	if version == "" {
		solc, err := exec.LookPath("solc")
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
		}
		return solc, nil
	}

	installed := versions.GetInstalled()
	if _, ok := installed[version]; !ok {
		c.logger.Info().Str(logging.FieldCompilerVersion, version).Msg("Installing compiler...")
		if err := installer.InstallSolc(version); err != nil {
			return "", fmt.Errorf("%w: failed to install compiler %s: %w", ErrCompilerNotFound, version, err)
		}
	}
	solc, ok := versions.GetInstalled()[version]
	if !ok {
		return "", fmt.Errorf("%w: version %s", ErrCompilerNotFound, version)
	}
	solc = "solc-" + solc

	fileName := filepath.Join(config.SolcArtifacts, solc, solc)
	if _, err := os.Stat(fileName); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
	}
	return fileName, nil
}
