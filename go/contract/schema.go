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
	"bytes"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Schema is the interface of a contract: its functions, events, and
// optionally the code creating it. Schemas are immutable and may be shared
// by any number of contracts.
type Schema struct {
	abi      abi.ABI
	bytecode []byte
}

// ParseSchema parses a JSON interface description as produced by Solidity
// compilers.
func ParseSchema(data []byte) (*Schema, error) {
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}
	return &Schema{abi: parsed}, nil
}

// WithBytecode derives a schema with the given creation code.
func (s *Schema) WithBytecode(code []byte) *Schema {
	return &Schema{abi: s.abi, bytecode: common.CopyBytes(code)}
}

// Bytecode returns the creation code of the contract, nil if unknown.
func (s *Schema) Bytecode() []byte {
	return common.CopyBytes(s.bytecode)
}

// ABI returns the underlying interface description.
func (s *Schema) ABI() abi.ABI {
	return s.abi
}

// Functions lists the names of all functions in ascending order.
func (s *Schema) Functions() []string {
	res := make([]string, 0, len(s.abi.Methods))
	for name := range s.abi.Methods {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// Function looks up the function of the given name.
func (s *Schema) Function(name string) (abi.Method, error) {
	method, found := s.abi.Methods[name]
	if !found {
		return abi.Method{}, fmt.Errorf("%w: %w %q", ErrEncoding, ErrUnknownFunction, name)
	}
	return method, nil
}

// Encode produces the call data invoking the named function with the given
// arguments.
func (s *Schema) Encode(function string, args ...any) ([]byte, error) {
	if _, err := s.Function(function); err != nil {
		return nil, err
	}
	data, err := s.abi.Pack(function, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncoding, function, err)
	}
	return data, nil
}

// EncodeConstructor produces the creation code of the contract followed by
// the encoded constructor arguments.
func (s *Schema) EncodeConstructor(args ...any) ([]byte, error) {
	if len(args) > 0 && len(s.abi.Constructor.Inputs) == 0 {
		return nil, fmt.Errorf("%w: constructor takes no arguments, got %d", ErrEncoding, len(args))
	}
	encoded, err := s.abi.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor: %w", ErrEncoding, err)
	}
	return append(s.Bytecode(), encoded...), nil
}

// Decode unpacks the data returned by the named function.
func (s *Schema) Decode(function string, data []byte) ([]any, error) {
	method, found := s.abi.Methods[function]
	if !found {
		return nil, fmt.Errorf("%w: %w %q", ErrDecoding, ErrUnknownFunction, function)
	}
	values, err := method.Outputs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecoding, function, err)
	}
	return values, nil
}

// Event is a decoded log record.
type Event struct {
	Name   string
	Values map[string]any
}

// DecodeEvent decodes a log emitted by the contract. Logs not matching any
// event of the schema are reported as errors.
func (s *Schema) DecodeEvent(log *types.Log) (Event, error) {
	if len(log.Topics) == 0 {
		return Event{}, fmt.Errorf("%w: anonymous log", ErrDecoding)
	}
	event, err := s.abi.EventByID(log.Topics[0])
	if err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	values := map[string]any{}
	if len(log.Data) > 0 {
		if err := event.Inputs.UnpackIntoMap(values, log.Data); err != nil {
			return Event{}, fmt.Errorf("%w: event %s: %w", ErrDecoding, event.Name, err)
		}
	}
	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:]); err != nil {
		return Event{}, fmt.Errorf("%w: event %s: %w", ErrDecoding, event.Name, err)
	}
	return Event{Name: event.Name, Values: values}, nil
}
