package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var Quiet = false

type Builder struct {
	strings.Builder
}

func (b *Builder) WriteLine(parts ...string) {
	for _, part := range parts {
		b.WriteString(part)
	}
	b.WriteString("\n")
}

// WriteField writes "name: value", or only the value in quiet mode.
func (b *Builder) WriteField(name string, value any) {
	if Quiet {
		b.WriteLine(fmt.Sprint(value))
		return
	}
	b.WriteLine(CyanStr("%s: ", name), fmt.Sprint(value))
}

func (b *Builder) Print() {
	fmt.Print(b.String())
}

func GreenStr(format string, args ...any) string {
	return color.HiGreenString(format, args...)
}

func CyanStr(format string, args ...any) string {
	return color.HiCyanString(format, args...)
}

func YellowStr(format string, args ...any) string {
	return color.HiYellowString(format, args...)
}

func RedStr(format string, args ...any) string {
	return color.HiRedString(format, args...)
}

// FormatGwei renders a wei amount in gwei without losing precision.
func FormatGwei(wei *big.Int) string {
	if wei == nil {
		return "-"
	}
	return decimal.NewFromBigInt(wei, -9).String() + " gwei"
}

func FormatReceipt(b *Builder, receipt *types.Receipt) {
	status := GreenStr("success")
	if receipt.Status != types.ReceiptStatusSuccessful {
		status = RedStr("failed")
	}
	b.WriteField("Transaction", receipt.TxHash.Hex())
	b.WriteField("Status", status)
	b.WriteField("Block", receipt.BlockNumber)
	b.WriteField("Gas used", receipt.GasUsed)
	b.WriteField("Gas price", FormatGwei(receipt.EffectiveGasPrice))
}
