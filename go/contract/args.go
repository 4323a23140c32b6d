// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseArgs converts textual arguments into values suitable for encoding a
// call of the named function. Integers may be given in decimal or, with a
// 0x prefix, in hexadecimal notation. Only elementary types are supported.
func (s *Schema) ParseArgs(function string, values []string) ([]any, error) {
	method, err := s.Function(function)
	if err != nil {
		return nil, err
	}
	return parseArguments(method.Inputs, values)
}

// ParseConstructorArgs converts textual constructor arguments.
func (s *Schema) ParseConstructorArgs(values []string) ([]any, error) {
	return parseArguments(s.abi.Constructor.Inputs, values)
}

func parseArguments(inputs abi.Arguments, values []string) ([]any, error) {
	if len(inputs) != len(values) {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrEncoding, len(inputs), len(values))
	}
	res := make([]any, len(values))
	for i, input := range inputs {
		value, err := parseArgument(input.Type, strings.TrimSpace(values[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d (%s): %w", ErrEncoding, i, input.Type, err)
		}
		res[i] = value
	}
	return res, nil
}

func parseArgument(typ abi.Type, text string) (any, error) {
	switch typ.T {
	case abi.BoolTy:
		return strconv.ParseBool(text)
	case abi.StringTy:
		return text, nil
	case abi.AddressTy:
		if !common.IsHexAddress(text) {
			return nil, fmt.Errorf("invalid address %q", text)
		}
		return common.HexToAddress(text), nil
	case abi.BytesTy:
		return hexutil.Decode(text)
	case abi.FixedBytesTy:
		data, err := hexutil.Decode(text)
		if err != nil {
			return nil, err
		}
		if len(data) > typ.Size {
			return nil, fmt.Errorf("%d bytes do not fit into bytes%d", len(data), typ.Size)
		}
		res := reflect.New(typ.GetType()).Elem()
		reflect.Copy(res, reflect.ValueOf(data))
		return res.Interface(), nil
	case abi.IntTy, abi.UintTy:
		return parseInteger(typ, text)
	default:
		return nil, fmt.Errorf("unsupported type %s", typ)
	}
}

func parseInteger(typ abi.Type, text string) (any, error) {
	value, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", text)
	}
	if typ.T == abi.UintTy && value.Sign() < 0 {
		return nil, fmt.Errorf("negative value for unsigned type")
	}
	bits := value.BitLen()
	if typ.T == abi.IntTy {
		if value.Sign() < 0 {
			bits = new(big.Int).Not(value).BitLen()
		}
		bits++
	}
	if bits > typ.Size {
		return nil, fmt.Errorf("value %v overflows %s", value, typ)
	}
	goType := typ.GetType()
	if goType == reflect.TypeOf((*big.Int)(nil)) {
		return value, nil
	}
	res := reflect.New(goType).Elem()
	if typ.T == abi.UintTy {
		res.SetUint(value.Uint64())
	} else {
		res.SetInt(value.Int64())
	}
	return res.Interface(), nil
}
