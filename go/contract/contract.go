// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package contract binds contract interfaces to deployed contracts, encoding
// calls and decoding their results.
package contract

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/panoptisDev/evmsim/go/engine"
)

// Contract is a schema optionally bound to the address of a deployed
// contract. Contracts are values; At derives new bindings without
// modifying the receiver.
type Contract struct {
	schema  *Schema
	address *common.Address
}

// CallResult is the decoded result of a call or send.
type CallResult struct {
	Values  []any
	GasUsed uint64
	Logs    []*types.Log
}

// New creates an unbound contract with the given schema.
func New(schema *Schema) Contract {
	return Contract{schema: schema}
}

// FromMetadata creates an unbound contract from loaded metadata.
func FromMetadata(meta Metadata) Contract {
	return New(meta.Schema)
}

// At returns a contract with the same schema bound to the given address.
func (c Contract) At(address common.Address) Contract {
	return Contract{schema: c.schema, address: &address}
}

// Address returns the address the contract is bound to, if any.
func (c Contract) Address() (common.Address, bool) {
	if c.address == nil {
		return common.Address{}, false
	}
	return *c.address, true
}

// Schema returns the interface of the contract.
func (c Contract) Schema() *Schema {
	return c.schema
}

// Call invokes a function without keeping any of its effects.
func (c Contract) Call(backend Backend, function string, caller common.Address, args ...any) (CallResult, error) {
	tx, err := c.transaction(function, caller, nil, args)
	if err != nil {
		return CallResult{}, err
	}
	result, err := backend.Call(tx)
	if err != nil {
		return CallResult{}, err
	}
	return c.decode(function, result.Output, result.GasUsed, result.Logs)
}

// Send invokes a function and keeps its effects if it succeeds. A non-nil
// value is transferred to the contract.
func (c Contract) Send(backend Backend, function string, caller common.Address, value *uint256.Int, args ...any) (CallResult, error) {
	tx, err := c.transaction(function, caller, value, args)
	if err != nil {
		return CallResult{}, err
	}
	result, err := backend.Send(tx)
	if err != nil {
		return CallResult{}, err
	}
	return c.decode(function, result.Output, result.GasUsed, result.Logs)
}

func (c Contract) transaction(function string, caller common.Address, value *uint256.Int, args []any) (engine.Transaction, error) {
	if c.address == nil {
		return engine.Transaction{}, fmt.Errorf("%w: cannot invoke %s", ErrMissingAddress, function)
	}
	data, err := c.schema.Encode(function, args...)
	if err != nil {
		return engine.Transaction{}, err
	}
	to := *c.address
	return engine.Transaction{
		Caller: caller,
		To:     &to,
		Data:   data,
		Value:  value,
	}, nil
}

func (c Contract) decode(function string, output []byte, gas uint64, logs []*types.Log) (CallResult, error) {
	values, err := c.schema.Decode(function, output)
	if err != nil {
		return CallResult{}, err
	}
	return CallResult{Values: values, GasUsed: gas, Logs: logs}, nil
}

// Deploy creates a contract running the given creation code.
func Deploy(backend Backend, deployer common.Address, code []byte) (common.Address, uint64, error) {
	return backend.Deploy(engine.Transaction{
		Caller: deployer,
		Data:   code,
	})
}

// DeploySchema creates a contract from the creation code of the given
// schema, passing the given constructor arguments. The result is bound to
// the new address.
func DeploySchema(backend Backend, deployer common.Address, schema *Schema, args ...any) (Contract, uint64, error) {
	if len(schema.bytecode) == 0 {
		return Contract{}, 0, ErrMissingBytecode
	}
	code, err := schema.EncodeConstructor(args...)
	if err != nil {
		return Contract{}, 0, err
	}
	address, gas, err := Deploy(backend, deployer, code)
	if err != nil {
		return Contract{}, 0, err
	}
	return New(schema).At(address), gas, nil
}

// Decode extracts the result value at the given position.
func Decode[T any](result CallResult, index int) (T, error) {
	var zero T
	if index < 0 || index >= len(result.Values) {
		return zero, fmt.Errorf("%w: no result at position %d, got %d values", ErrDecoding, index, len(result.Values))
	}
	value, ok := result.Values[index].(T)
	if !ok {
		return zero, fmt.Errorf("%w: result %d is %T, not %T", ErrDecoding, index, result.Values[index], zero)
	}
	return value, nil
}
