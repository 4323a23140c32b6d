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
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/panoptisDev/evmsim/go/examples"
	"github.com/stretchr/testify/require"
)

func TestParseSignatures_CounterInterface(t *testing.T) {
	schema, err := ParseSignatures(examples.GetCounterExample().Signatures...)
	require.NoError(t, err)
	require.Equal(t, []string{"add", "count", "fail", "halt", "increment"}, schema.Functions())

	count, err := schema.Function("count")
	require.NoError(t, err)
	require.Equal(t, "view", count.StateMutability)
	require.Len(t, count.Outputs, 1)
	require.Equal(t, "uint256", count.Outputs[0].Type.String())

	add, err := schema.Function("add")
	require.NoError(t, err)
	require.Equal(t, "nonpayable", add.StateMutability)
	require.Equal(t, "amount", add.Inputs[0].Name)

	definition := schema.ABI()
	for _, signature := range []string{"count()", "increment()", "add(uint256)", "fail()", "halt()"} {
		selector := examples.Selector(signature)
		method, err := definition.MethodById(selector[:])
		require.NoError(t, err, signature)
		require.Equal(t, signature, method.Sig)
	}

	event, found := schema.ABI().Events["Incremented"]
	require.True(t, found)
	require.Equal(t, examples.IncrementedTopic, event.ID)
}

func TestParseSignatures_SupportsDeclarationKinds(t *testing.T) {
	schema, err := ParseSignatures(
		"constructor(uint supply) payable",
		"function transfer(address to, uint amount) external returns (bool)",
		"function balanceOf(address) view returns(uint256 balance)",
		"function deposit() payable",
		"function name() pure returns (string memory)",
		"event Transfer(address indexed from, address indexed to, uint256 value)",
		"error Insufficient(uint256 available, uint256 required)",
	)
	require.NoError(t, err)

	require.Len(t, schema.ABI().Constructor.Inputs, 1)
	require.Equal(t, "uint256", schema.ABI().Constructor.Inputs[0].Type.String())
	require.True(t, schema.ABI().Constructor.IsPayable())

	transfer, err := schema.Function("transfer")
	require.NoError(t, err)
	require.Equal(t, "transfer(address,uint256)", transfer.Sig)
	require.Equal(t, "bool", transfer.Outputs[0].Type.String())

	balanceOf, err := schema.Function("balanceOf")
	require.NoError(t, err)
	require.Equal(t, "view", balanceOf.StateMutability)
	require.Equal(t, "balance", balanceOf.Outputs[0].Name)

	deposit, err := schema.Function("deposit")
	require.NoError(t, err)
	require.True(t, deposit.IsPayable())

	name, err := schema.Function("name")
	require.NoError(t, err)
	require.Equal(t, "pure", name.StateMutability)

	event := schema.ABI().Events["Transfer"]
	require.True(t, event.Inputs[0].Indexed)
	require.True(t, event.Inputs[1].Indexed)
	require.False(t, event.Inputs[2].Indexed)

	_, found := schema.ABI().Errors["Insufficient"]
	require.True(t, found)
}

func TestParseSignatures_AcceptsElementaryAndCompositeTypes(t *testing.T) {
	schema, err := ParseSignatures(
		"function f(uint8 a, int256 b, bytes32 c, bytes d, address[] e, bool[2] g, string h, (uint256,address) i)",
		"function g(int x, uint[] y) returns (bytes1)",
	)
	require.NoError(t, err)

	f, err := schema.Function("f")
	require.NoError(t, err)
	require.Equal(t, "f(uint8,int256,bytes32,bytes,address[],bool[2],string,(uint256,address))", f.Sig)

	g, err := schema.Function("g")
	require.NoError(t, err)
	require.Equal(t, "g(int256,uint256[])", g.Sig)
	require.Equal(t, "bytes1", g.Outputs[0].Type.String())
}

func TestParseSignatures_RejectsInvalidDeclarations(t *testing.T) {
	tests := map[string][]string{
		"duplicate function":  {"function f()", "function f(uint256)"},
		"unknown kind":        {"modifier onlyOwner()"},
		"missing parameters":  {"function f"},
		"unbalanced":          {"function f(uint256"},
		"invalid name":        {"function 1f()"},
		"unknown type":        {"function f(uint7x)"},
		"odd integer width":   {"function f(uint7)"},
		"zero integer width":  {"function f(int0)"},
		"oversized integer":   {"function f(uint264)"},
		"oversized bytes":     {"function f(bytes33)"},
		"sized address":       {"function f(address20)"},
		"invalid array type":  {"function f(uint12[] values)"},
		"invalid component":   {"function f((uint256,uint7) pair)"},
		"invalid output":      {"function f() returns (uint7x)"},
		"invalid event field": {"event E(int3 value)"},
		"unexpected keyword":  {"function f() lazy"},
		"indexed in function": {"function f(uint256 indexed x)"},
		"returns in event":    {"event E() returns (uint256)"},
	}
	for name, signatures := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSignatures(signatures...)
			require.ErrorIs(t, err, ErrInvalidMetadata)
		})
	}
}

func TestSchema_EncodeReportsUnknownFunctions(t *testing.T) {
	schema := counterSchema(t)
	_, err := schema.Encode("decrement")
	require.ErrorIs(t, err, ErrEncoding)
	require.ErrorIs(t, err, ErrUnknownFunction)
}

func TestSchema_EncodeReportsArgumentMismatches(t *testing.T) {
	schema := counterSchema(t)
	_, err := schema.Encode("add")
	require.ErrorIs(t, err, ErrEncoding)
	_, err = schema.Encode("add", "five")
	require.ErrorIs(t, err, ErrEncoding)
}

func TestSchema_EncodeProducesSelectorAndArguments(t *testing.T) {
	schema := counterSchema(t)
	data, err := schema.Encode("add", big.NewInt(5))
	require.NoError(t, err)
	selector := examples.Selector("add(uint256)")
	require.Equal(t, selector[:], data[:4])
	require.Equal(t, common.BigToHash(big.NewInt(5)).Bytes(), data[4:])
}

func TestSchema_DecodeReportsMismatchingData(t *testing.T) {
	schema := counterSchema(t)
	_, err := schema.Decode("count", []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrDecoding)
	_, err = schema.Decode("unknown", nil)
	require.ErrorIs(t, err, ErrDecoding)
}

func TestSchema_DecodeOfFunctionWithoutResults(t *testing.T) {
	values, err := counterSchema(t).Decode("increment", nil)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestSchema_EncodeConstructorAppendsArguments(t *testing.T) {
	schema, err := ParseSignatures("constructor(uint256 initial)")
	require.NoError(t, err)
	schema = schema.WithBytecode([]byte{0xaa, 0xbb})

	code, err := schema.EncodeConstructor(big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, append([]byte{0xaa, 0xbb}, common.BigToHash(big.NewInt(7)).Bytes()...), code)

	_, err = schema.EncodeConstructor()
	require.ErrorIs(t, err, ErrEncoding)
}

func TestSchema_EncodeConstructorRejectsArgumentsWithoutConstructor(t *testing.T) {
	schema := counterSchema(t).WithBytecode([]byte{1})
	code, err := schema.EncodeConstructor()
	require.NoError(t, err)
	require.Equal(t, []byte{1}, code)

	_, err = schema.EncodeConstructor(big.NewInt(1))
	require.ErrorIs(t, err, ErrEncoding)
}

func TestSchema_WithBytecodeDoesNotModifyOriginal(t *testing.T) {
	schema := counterSchema(t)
	derived := schema.WithBytecode([]byte{1, 2})
	require.Empty(t, schema.Bytecode())
	require.Equal(t, []byte{1, 2}, derived.Bytecode())
}

func TestSchema_DecodeEvent(t *testing.T) {
	schema := counterSchema(t)
	event, err := schema.DecodeEvent(&types.Log{
		Topics: []common.Hash{examples.IncrementedTopic},
		Data:   common.BigToHash(big.NewInt(3)).Bytes(),
	})
	require.NoError(t, err)
	require.Equal(t, "Incremented", event.Name)
	require.Equal(t, big.NewInt(3), event.Values["value"])

	_, err = schema.DecodeEvent(&types.Log{Topics: []common.Hash{{1}}})
	require.ErrorIs(t, err, ErrDecoding)
	_, err = schema.DecodeEvent(&types.Log{})
	require.ErrorIs(t, err, ErrDecoding)
}

func TestSchema_DecodeEventWithIndexedArguments(t *testing.T) {
	schema, err := ParseSignatures("event Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)
	from, to := common.Address{1}, common.Address{2}

	event, err := schema.DecodeEvent(&types.Log{
		Topics: []common.Hash{
			examples.Keccak256Hash([]byte("Transfer(address,address,uint256)")),
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: common.BigToHash(big.NewInt(9)).Bytes(),
	})
	require.NoError(t, err)
	require.Equal(t, from, event.Values["from"])
	require.Equal(t, to, event.Values["to"])
	require.Equal(t, big.NewInt(9), event.Values["value"])
}

func counterSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := ParseSignatures(examples.GetCounterExample().Signatures...)
	require.NoError(t, err)
	return schema
}
