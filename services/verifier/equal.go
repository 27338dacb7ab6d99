package verifier

import (
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

// toBig converts integer values of any width to *big.Int.
func toBig(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, false
		}
		return x, true
	case big.Int:
		return &x, true
	case *uint256.Int:
		if x == nil {
			return nil, false
		}
		return x.ToBig(), true
	case uint8, uint16, uint32, uint64, uint:
		return new(big.Int).SetUint64(reflect.ValueOf(x).Uint()), true
	case int8, int16, int32, int64, int:
		return big.NewInt(reflect.ValueOf(x).Int()), true
	}
	return nil, false
}

// ValuesEqual compares integers numerically and everything else by deep equality.
func ValuesEqual(expected, actual any) bool {
	if a, ok := toBig(expected); ok {
		if b, ok := toBig(actual); ok {
			return a.Cmp(b) == 0
		}
	}
	return reflect.DeepEqual(expected, actual)
}
