package common

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAbi = `[
	{"type":"constructor","inputs":[{"name":"owner","type":"address"}]},
	{"type":"function","name":"set","inputs":[
		{"name":"a","type":"uint256"},
		{"name":"b","type":"uint8"},
		{"name":"c","type":"int64"},
		{"name":"d","type":"bool"},
		{"name":"e","type":"string"},
		{"name":"f","type":"bytes"},
		{"name":"g","type":"uint256[]"},
		{"name":"h","type":"bytes4"}
	],"outputs":[]}
]`

func parseTestAbi(t *testing.T) abi.ABI {
	t.Helper()
	res, err := abi.JSON(strings.NewReader(testAbi))
	require.NoError(t, err)
	return res
}

func TestParseCallArguments(t *testing.T) {
	t.Parallel()

	contractAbi := parseTestAbi(t)
	inputs, err := MethodInputs(contractAbi, "set")
	require.NoError(t, err)

	args, err := ParseCallArguments([]string{
		"0xff", "7", "-3", "true", "hello", "0x0102", "1,2,3", "0xdeadbeef",
	}, inputs)
	require.NoError(t, err)

	assert.Equal(t, 0, big.NewInt(255).Cmp(args[0].(*big.Int)))
	assert.Equal(t, uint8(7), args[1])
	assert.Equal(t, int64(-3), args[2])
	assert.Equal(t, true, args[3])
	assert.Equal(t, "hello", args[4])
	assert.Equal(t, []byte{1, 2}, args[5])
	assert.Len(t, args[6], 3)
	assert.Equal(t, [4]byte{0xde, 0xad, 0xbe, 0xef}, args[7])

	// packs without complaints
	_, err = contractAbi.Pack("set", args...)
	require.NoError(t, err)
}

func TestParseCallArgumentsErrors(t *testing.T) {
	t.Parallel()

	contractAbi := parseTestAbi(t)
	inputs, err := MethodInputs(contractAbi, "set")
	require.NoError(t, err)

	_, err = ParseCallArguments([]string{"1"}, inputs)
	require.ErrorContains(t, err, "invalid amount of arguments")

	valid := []string{"1", "7", "-3", "true", "hello", "0x0102", "1,2,3", "0xdeadbeef"}
	for ind, bad := range []string{"-1", "256", "x", "maybe", "", "0x1", "1,a", "0x01"} {
		if ind == 4 {
			// any string is valid
			continue
		}
		args := append([]string(nil), valid...)
		args[ind] = bad
		_, err := ParseCallArguments(args, inputs)
		require.Error(t, err, "argument %d = %q", ind, bad)
	}

	_, err = MethodInputs(contractAbi, "missing")
	require.Error(t, err)
}

func TestConstructorInputs(t *testing.T) {
	t.Parallel()

	inputs, err := MethodInputs(parseTestAbi(t), "")
	require.NoError(t, err)

	args, err := ParseCallArguments([]string{"0x00000000000000000000000000000000000000aa"}, inputs)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xaa"), args[0])
}

func TestParseUint256(t *testing.T) {
	t.Parallel()

	v, err := ParseUint256("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	assert.Equal(t, 256, v.BitLen())

	_, err = ParseUint256("115792089237316195423570985008687907853269984665640564039457584007913129639936")
	require.Error(t, err)

	v, err = ParseUint256("0X10")
	require.NoError(t, err)
	assert.Equal(t, int64(16), v.Int64())

	_, err = ParseUint256("-1")
	require.Error(t, err)
}

func TestFormatGwei(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.5 gwei", FormatGwei(big.NewInt(1_500_000_000)))
	assert.Equal(t, "0.000000001 gwei", FormatGwei(big.NewInt(1)))
	assert.Equal(t, "-", FormatGwei(nil))
}
