package solc

import (
	"encoding/json"
)

const languageSolidity = "Solidity"

// OutputSelection is fixed: downstream code indexes contracts by name,
// so abi and bytecode are requested for every contract of every file.
var OutputSelection = map[string]map[string][]string{
	"*": {
		"*": {"abi", "metadata", "evm.bytecode", "evm.bytecode.sourceMap"},
	},
}

type Request struct {
	// Sources maps a source file name to its content.
	Sources map[string]string
	// Version is the compiler version, e.g. "0.8.0". Empty means whatever solc is found in PATH.
	Version string
}

type CompilerJsonInput struct {
	Language string                  `json:"language"`
	Sources  map[string]*InputSource `json:"sources"`
	Settings InputSettings           `json:"settings"`
}

type InputSource struct {
	Content string `json:"content"`
}

type InputSettings struct {
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

func (r *Request) ToCompilerJsonInput() *CompilerJsonInput {
	input := &CompilerJsonInput{
		Language: languageSolidity,
		Sources:  make(map[string]*InputSource, len(r.Sources)),
		Settings: InputSettings{OutputSelection: OutputSelection},
	}
	for name, content := range r.Sources {
		input.Sources[name] = &InputSource{Content: content}
	}
	return input
}

// Output is the standard JSON output of solc.
// Contracts are keyed by source file name, then by contract name.
type Output struct {
	Errors    []OutputError                        `json:"errors,omitempty"`
	Sources   map[string]OutputSource              `json:"sources,omitempty"`
	Contracts map[string]map[string]ContractOutput `json:"contracts,omitempty"`

	raw []byte
}

type OutputError struct {
	Component        string          `json:"component,omitempty"`
	Type             string          `json:"type,omitempty"`
	Severity         string          `json:"severity"`
	Message          string          `json:"message"`
	FormattedMessage string          `json:"formattedMessage,omitempty"`
	SourceLocation   *SourceLocation `json:"sourceLocation,omitempty"`
}

type SourceLocation struct {
	File  string `json:"file"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type OutputSource struct {
	Id int `json:"id"`
}

type ContractOutput struct {
	Abi      json.RawMessage `json:"abi,omitempty"`
	Metadata string          `json:"metadata,omitempty"`
	Evm      EvmOutput       `json:"evm"`
}

type EvmOutput struct {
	Bytecode BytecodeOutput `json:"bytecode"`
}

type BytecodeOutput struct {
	Object         string          `json:"object"`
	SourceMap      string          `json:"sourceMap,omitempty"`
	Opcodes        string          `json:"opcodes,omitempty"`
	LinkReferences json.RawMessage `json:"linkReferences,omitempty"`
}

const (
	severityError   = "error"
	severityWarning = "warning"
)

func (e *OutputError) String() string {
	if e.FormattedMessage != "" {
		return e.FormattedMessage
	}
	return e.Message
}
