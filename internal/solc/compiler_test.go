package solc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/NilFoundation/soldeploy/common/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeSolc writes a script that consumes the standard JSON input and prints a canned output.
// The script also leaves a marker so tests can tell whether it was started.
func fakeSolc(t *testing.T, outputFile string) (solcPath string, marker string) {
	t.Helper()

	abs, err := filepath.Abs(outputFile)
	require.NoError(t, err)

	dir := t.TempDir()
	marker = filepath.Join(dir, "invoked")
	solcPath = filepath.Join(dir, "solc")
	script := fmt.Sprintf("#!/bin/sh\ntouch %q\ncat > /dev/null\ncat %q\n", marker, abs)
	require.NoError(t, os.WriteFile(solcPath, []byte(script), 0o755))
	return solcPath, marker
}

func readSource(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/SimpleStorage.sol")
	require.NoError(t, err)
	return string(data)
}

type SuiteCompiler struct {
	suite.Suite

	ctx      context.Context
	source   string
	compiler *Compiler
	marker   string
}

func (s *SuiteCompiler) SetupTest() {
	s.ctx = context.Background()
	s.source = readSource(s.T())

	var solc string
	solc, s.marker = fakeSolc(s.T(), "testdata/storage_output.json")
	s.compiler = NewCompiler(solc, logging.Nop())
}

func (s *SuiteCompiler) TestCompile() {
	out, err := s.compiler.Compile(s.ctx, &Request{
		Sources: map[string]string{"SimpleStorage.sol": s.source},
		Version: "0.8.0",
	})
	s.Require().NoError(err)
	s.FileExists(s.marker)

	s.Equal([]string{"SimpleStorage.sol:SimpleStorage"}, out.ContractNames())

	artifact, err := out.Contract("SimpleStorage")
	s.Require().NoError(err)
	s.Equal("SimpleStorage", artifact.Name)
	s.Equal("SimpleStorage.sol", artifact.SourceFile)
	s.NotEmpty(artifact.Bytecode)
	s.NotEmpty(artifact.SourceMap)

	// every public function of the source is described by the interface
	for _, name := range []string{"store", "retrieve"} {
		s.Contains(artifact.ABI.Methods, name)
	}
	s.True(artifact.ABI.Methods["retrieve"].IsConstant())
	s.False(artifact.ABI.Methods["store"].IsConstant())
}

func (s *SuiteCompiler) TestCompileFile() {
	out, err := s.compiler.CompileFile(s.ctx, "testdata/SimpleStorage.sol", "0.8.20")
	s.Require().NoError(err)

	_, err = out.Artifact("SimpleStorage.sol", "SimpleStorage")
	s.Require().NoError(err)
}

func (s *SuiteCompiler) TestVersionMismatch() {
	_, err := s.compiler.Compile(s.ctx, &Request{
		Sources: map[string]string{"SimpleStorage.sol": s.source},
		Version: "0.7.6",
	})
	s.Require().ErrorIs(err, ErrCompilation)
	s.Require().ErrorIs(err, ErrVersionMismatch)

	var compErr *CompilationError
	s.Require().ErrorAs(err, &compErr)

	// rejected before the compiler is started
	s.NoFileExists(s.marker)
}

func (s *SuiteCompiler) TestNoSources() {
	_, err := s.compiler.Compile(s.ctx, &Request{Version: "0.8.0"})
	s.Require().ErrorIs(err, ErrCompilation)
	s.NoFileExists(s.marker)
}

func (s *SuiteCompiler) TestMissingSourceFile() {
	_, err := s.compiler.CompileFile(s.ctx, "testdata/Missing.sol", "0.8.0")
	s.Require().ErrorIs(err, ErrCompilation)
	s.Require().ErrorIs(err, os.ErrNotExist)
}

func TestSuiteCompiler(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(SuiteCompiler))
}

func TestCompilerReportsErrors(t *testing.T) {
	t.Parallel()

	solc, _ := fakeSolc(t, "testdata/error_output.json")
	compiler := NewCompiler(solc, logging.Nop())

	_, err := compiler.Compile(context.Background(), &Request{
		Sources: map[string]string{"SimpleStorage.sol": "contract SimpleStorage { uint x }"},
	})
	require.ErrorIs(t, err, ErrCompilation)

	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	require.Len(t, compErr.Messages, 1)
	assert.Contains(t, compErr.Messages[0], "ParserError")
	assert.Contains(t, err.Error(), "Expected ';'")
}

func TestCompilerNotFound(t *testing.T) {
	t.Parallel()

	compiler := NewCompiler(filepath.Join(t.TempDir(), "no-such-solc"), logging.Nop())
	_, err := compiler.Compile(context.Background(), &Request{
		Sources: map[string]string{"SimpleStorage.sol": readSource(t)},
	})
	require.ErrorIs(t, err, ErrCompilation)
	require.ErrorIs(t, err, ErrCompilerNotFound)
}

func TestCompilerProcessFailure(t *testing.T) {
	t.Parallel()

	solc := filepath.Join(t.TempDir(), "solc")
	require.NoError(t, os.WriteFile(solc, []byte("#!/bin/sh\necho boom >&2\nexit 1\n"), 0o755))

	_, err := NewCompiler(solc, logging.Nop()).Compile(context.Background(), &Request{
		Sources: map[string]string{"SimpleStorage.sol": readSource(t)},
	})
	require.ErrorIs(t, err, ErrCompilation)
	assert.Contains(t, err.Error(), "boom")
}

func TestCheckPragma(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		source   string
		version  string
		mismatch bool
	}{
		{"caret", "pragma solidity ^0.8.0;", "0.8.24", false},
		{"caret upper bound", "pragma solidity ^0.8.0;", "0.9.0", true},
		{"caret lower bound", "pragma solidity ^0.8.0;", "0.7.6", true},
		{"range", "pragma solidity >=0.7.0 <0.9.0;", "0.7.6", false},
		{"exact", "pragma solidity 0.8.19;", "0.8.20", true},
		{"no pragma", "contract A {}", "0.4.26", false},
		{"several pragmas", "pragma solidity >=0.8.0;\npragma solidity <0.8.10;", "0.8.12", true},
		{"line comment", "// pragma solidity ^0.4.0;\npragma solidity ^0.8.0;", "0.8.24", false},
		{"block comment", "/* old:\npragma solidity ^0.4.0;\n*/\npragma solidity ^0.8.0;", "0.8.24", false},
		{"trailing comment", "pragma solidity ^0.8.0; // pragma solidity ^0.4.0;", "0.8.24", false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckPragma(tc.source, tc.version)
			if tc.mismatch {
				require.ErrorIs(t, err, ErrVersionMismatch)
			} else {
				require.NoError(t, err)
			}
		})
	}

	require.ErrorIs(t, CheckPragma("contract A {}", "latest"), ErrVersionMismatch)
}
