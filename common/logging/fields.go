package logging

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"
	FieldChainId   = "chainId"
	FieldRunId     = "runId"
	FieldStep      = "step"
	FieldState     = "state"

	FieldDuration = "duration"
	FieldUrl      = "url"

	FieldRpcMethod = "rpcMethod"

	FieldTxHash     = "txHash"
	FieldTxNonce    = "txNonce"
	FieldTxGas      = "txGas"
	FieldTxGasPrice = "txGasPrice"
	FieldSignerMode = "signerMode"

	FieldAccountAddress  = "accountAddress"
	FieldContractAddress = "contractAddress"
	FieldContractName    = "contractName"
	FieldMethod          = "method"

	FieldBlockNumber = "blockNumber"

	FieldSourceFile      = "sourceFile"
	FieldCompilerVersion = "compilerVersion"
	FieldOutputPath      = "outputPath"
	FieldKeySource       = "keySource"
)
