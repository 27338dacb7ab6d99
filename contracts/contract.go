package contracts

import (
	"bytes"
	"fmt"

	"github.com/NilFoundation/soldeploy/internal/solc"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const NameSimpleStorage = "SimpleStorage"

func GetCode(name string) ([]byte, error) {
	code, err := Fs.ReadFile("compiled/" + name + ".bin")
	if err != nil {
		return nil, err
	}
	return common.FromHex(string(bytes.TrimSpace(code))), nil
}

func GetAbi(name string) (*abi.ABI, error) {
	data, err := Fs.ReadFile("compiled/" + name + ".abi")
	if err != nil {
		return nil, err
	}
	abi, err := abi.JSON(bytes.NewReader(data))
	return &abi, err
}

// GetSource returns the Solidity source of a bundled contract.
func GetSource(name string) (string, error) {
	data, err := Fs.ReadFile(name + ".sol")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetArtifact builds a deployable artifact from the prebuilt files.
func GetArtifact(name string) (*solc.Artifact, error) {
	code, err := GetCode(name)
	if err != nil {
		return nil, err
	}
	rawAbi, err := Fs.ReadFile("compiled/" + name + ".abi")
	if err != nil {
		return nil, err
	}
	parsed, err := GetAbi(name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", name, err)
	}
	return &solc.Artifact{
		Name:       name,
		SourceFile: name + ".sol",
		Bytecode:   code,
		ABI:        *parsed,
		RawABI:     bytes.TrimSpace(rawAbi),
	}, nil
}
