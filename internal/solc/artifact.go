package solc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Artifact is a single compiled contract ready for deployment.
type Artifact struct {
	Name       string
	SourceFile string
	Bytecode   []byte
	ABI        abi.ABI
	RawABI     json.RawMessage
	SourceMap  string
	Metadata   string
}

type contractMetadata struct {
	Output struct {
		Abi json.RawMessage `json:"abi"`
	} `json:"output"`
}

// ContractNames returns "file:Name" identifiers of all contracts in the output, sorted.
func (o *Output) ContractNames() []string {
	names := make([]string, 0)
	for file, contracts := range o.Contracts {
		for name := range contracts {
			names = append(names, file+":"+name)
		}
	}
	sort.Strings(names)
	return names
}

// Contract looks up a contract by name across all source files.
// The name may be qualified as "file:Name" to resolve ambiguity.
func (o *Output) Contract(name string) (*Artifact, error) {
	if file, contract, ok := strings.Cut(name, ":"); ok {
		return o.Artifact(file, contract)
	}

	var found []string
	for file, contracts := range o.Contracts {
		if _, ok := contracts[name]; ok {
			found = append(found, file)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrContractNotFound, name)
	case 1:
		return o.Artifact(found[0], name)
	default:
		sort.Strings(found)
		return nil, fmt.Errorf("%w: %s is defined in %s", ErrAmbiguousContract, name, strings.Join(found, ", "))
	}
}

// Artifact extracts bytecode and interface of the contract `name` from `file`.
func (o *Output) Artifact(file, name string) (*Artifact, error) {
	contract, ok := o.Contracts[file][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s:%s", ErrContractNotFound, file, name)
	}

	object := contract.Evm.Bytecode.Object
	if object == "" {
		return nil, fmt.Errorf("%w: %s:%s is abstract or an interface", ErrNoBytecode, file, name)
	}
	if strings.Contains(object, "__") {
		return nil, fmt.Errorf("%w: %s:%s has unlinked libraries", ErrNoBytecode, file, name)
	}
	code, err := hexutil.Decode("0x" + strings.TrimPrefix(object, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s:%s: %w", ErrNoBytecode, file, name, err)
	}

	rawAbi := contract.Abi
	if len(rawAbi) == 0 && contract.Metadata != "" {
		var meta contractMetadata
		if err := json.Unmarshal([]byte(contract.Metadata), &meta); err != nil {
			return nil, fmt.Errorf("failed to parse metadata of %s:%s: %w", file, name, err)
		}
		rawAbi = meta.Output.Abi
	}
	if len(rawAbi) == 0 {
		rawAbi = json.RawMessage("[]")
	}

	parsed, err := abi.JSON(bytes.NewReader(rawAbi))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s:%s: %w", file, name, err)
	}

	return &Artifact{
		Name:       name,
		SourceFile: file,
		Bytecode:   code,
		ABI:        parsed,
		RawABI:     rawAbi,
		SourceMap:  contract.Evm.Bytecode.SourceMap,
		Metadata:   contract.Metadata,
	}, nil
}
