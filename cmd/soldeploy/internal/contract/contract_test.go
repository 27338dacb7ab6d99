package contract

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxOptions(t *testing.T) {
	t.Parallel()

	newFlags := func() (*pflag.FlagSet, *uint64, *uint64) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		nonce := flags.Uint64("nonce", 0, "")
		gas := flags.Uint64("gas", 0, "")
		return flags, nonce, gas
	}

	flags, nonce, gas := newFlags()
	require.NoError(t, flags.Parse(nil))
	assert.Empty(t, txOptions(flags, *nonce, *gas))

	flags, nonce, gas = newFlags()
	require.NoError(t, flags.Parse([]string{"--nonce", "0", "--gas", "21000"}))
	assert.Len(t, txOptions(flags, *nonce, *gas), 2)
}
