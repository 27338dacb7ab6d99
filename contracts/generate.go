package contracts

import "embed"

// compiled/ holds a prebuilt storage contract with the same interface as SimpleStorage.sol.
// It lets tests deploy without a compiler installed.
//go:generate go run ../tools/solc/bin/main.go -s SimpleStorage.sol -o compiled -c SimpleStorage --solc-version 0.8.0

//go:embed compiled/*.* *.sol
var Fs embed.FS
