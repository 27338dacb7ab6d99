package common

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// ParseUint256 accepts decimal or 0x-prefixed hex and rejects values wider than 256 bits.
func ParseUint256(s string) (*big.Int, error) {
	var (
		v   *uint256.Int
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = uint256.FromHex(strings.ToLower(s))
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse uint256 %q: %w", s, err)
	}
	return v.ToBig(), nil
}

func parseCallArgument(arg string, tp abi.Type) (any, error) {
	val := reflect.New(tp.GetType()).Elem()
	switch tp.T {
	case abi.UintTy:
		i, err := ParseUint256(arg)
		if err != nil {
			return nil, err
		}
		if i.BitLen() > tp.Size {
			return nil, fmt.Errorf("%s does not fit into %s", arg, tp)
		}
		if tp.Size > 64 {
			val.Set(reflect.ValueOf(i))
		} else {
			val.SetUint(i.Uint64())
		}
	case abi.IntTy:
		i, ok := new(big.Int).SetString(arg, 0)
		if !ok {
			return nil, fmt.Errorf("failed to parse int argument: %s", arg)
		}
		if tp.Size > 64 {
			val.Set(reflect.ValueOf(i))
		} else {
			if !i.IsInt64() {
				return nil, fmt.Errorf("%s does not fit into %s", arg, tp)
			}
			val.SetInt(i.Int64())
		}
	case abi.StringTy:
		val.SetString(arg)
	case abi.BytesTy:
		data, err := hexutil.Decode(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bytes argument: %w", err)
		}
		val.SetBytes(data)
	case abi.FixedBytesTy:
		data, err := hexutil.Decode(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bytes argument: %w", err)
		}
		if len(data) != tp.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", tp.Size, len(data))
		}
		reflect.Copy(val, reflect.ValueOf(data))
	case abi.BoolTy:
		valBool, err := strconv.ParseBool(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse bool argument: %w", err)
		}
		val.SetBool(valBool)
	case abi.AddressTy:
		var address common.Address
		if err := address.UnmarshalText([]byte(arg)); err != nil {
			return nil, fmt.Errorf("failed to parse address argument: %w", err)
		}
		val.Set(reflect.ValueOf(address))
	case abi.SliceTy:
		for _, arg := range strings.Split(arg, ",") {
			elem, err := parseCallArgument(arg, *tp.Elem)
			if err != nil {
				return nil, fmt.Errorf("failed to parse slice argument: %w", err)
			}
			val.Set(reflect.Append(val, reflect.ValueOf(elem)))
		}
	default:
		return nil, fmt.Errorf("unsupported argument type: %s", tp.String())
	}
	return val.Interface(), nil
}

// ParseCallArguments converts command line strings into values accepted by abi.Pack.
func ParseCallArguments(args []string, inputs abi.Arguments) ([]any, error) {
	if len(args) != len(inputs) {
		return nil, fmt.Errorf("invalid amount of arguments is provided: expected %d but got %d", len(inputs), len(args))
	}

	parsedArgs := make([]any, 0, len(args))
	for ind, arg := range args {
		val, err := parseCallArgument(arg, inputs[ind].Type)
		if err != nil {
			return nil, fmt.Errorf("failed to parse argument %d: %w", ind, err)
		}
		parsedArgs = append(parsedArgs, val)
	}
	return parsedArgs, nil
}

// MethodInputs returns the inputs of method, or of the constructor for an empty name.
func MethodInputs(contractAbi abi.ABI, method string) (abi.Arguments, error) {
	if method == "" {
		return contractAbi.Constructor.Inputs, nil
	}
	m, ok := contractAbi.Methods[method]
	if !ok {
		return nil, fmt.Errorf("method %q not found in ABI", method)
	}
	return m.Inputs, nil
}

// FormatValue renders a decoded ABI value for output.
func FormatValue(v any) string {
	switch x := v.(type) {
	case *big.Int:
		return x.String()
	case []byte:
		return hexutil.Encode(x)
	case common.Address:
		return x.Hex()
	default:
		return fmt.Sprintf("%v", v)
	}
}
