// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
)

// Example is a program together with the interface it exposes.
type Example struct {
	Name string
	// Code is the runtime code of the program.
	Code []byte
	// InitCode deploys Code. It accepts an optional 32-byte constructor
	// argument appended to it.
	InitCode []byte
	// Signatures describes the interface of the program in human-readable
	// form, suitable for contract.ParseSignatures.
	Signatures []string
}

// IncrementedTopic is the topic of the event emitted by the counter's
// increment function.
var IncrementedTopic = Keccak256Hash([]byte("Incremented(uint256)"))

// ErrorSelector is the selector of the Error(string) revert payload.
var ErrorSelector = Selector("Error(string)")

// FailReason is the revert reason reported by the counter's fail function.
const FailReason = "boom"

// GetCounterExample creates a counter program keeping its value in storage
// slot zero. Its functions are:
//   - count() returns the current value
//   - increment() increases the value by one and emits Incremented(value)
//   - add(uint256) increases the value by the given amount and returns it
//   - fail() writes to storage and reverts with Error("boom")
//   - halt() writes to storage and executes an invalid instruction
//
// All other inputs, including empty ones, are accepted without effect.
func GetCounterExample() Example {
	a := newAssembler()

	// Dispatch on the function selector.
	a.push(0).op(vm.CALLDATALOAD).push(0xe0).op(vm.SHR)
	functions := []struct {
		signature string
		label     string
	}{
		{"count()", "count"},
		{"increment()", "increment"},
		{"add(uint256)", "add"},
		{"fail()", "fail"},
		{"halt()", "halt"},
	}
	for _, f := range functions {
		selector := Selector(f.signature)
		a.op(vm.DUP1).push(selector[:]...).op(vm.EQ).pushLabel(f.label).op(vm.JUMPI)
	}
	a.op(vm.STOP)

	a.label("count")
	a.push(0).op(vm.SLOAD).push(0).op(vm.MSTORE)
	a.push(32).push(0).op(vm.RETURN)

	a.label("increment")
	a.push(1).push(0).op(vm.SLOAD, vm.ADD, vm.DUP1).push(0).op(vm.SSTORE)
	a.push(0).op(vm.MSTORE)
	a.push(IncrementedTopic[:]...).push(32).push(0).op(vm.LOG1)
	a.op(vm.STOP)

	a.label("add")
	a.push(4).op(vm.CALLDATALOAD).push(0).op(vm.SLOAD, vm.ADD, vm.DUP1).push(0).op(vm.SSTORE)
	a.push(0).op(vm.MSTORE)
	a.push(32).push(0).op(vm.RETURN)

	a.label("fail")
	a.push(42).push(0).op(vm.SSTORE)
	a.push(common.RightPadBytes(ErrorSelector[:], 32)...).push(0).op(vm.MSTORE)
	a.push(0x20).push(0x04).op(vm.MSTORE)
	a.push(byte(len(FailReason))).push(0x24).op(vm.MSTORE)
	a.push(common.RightPadBytes([]byte(FailReason), 32)...).push(0x44).op(vm.MSTORE)
	a.push(0x64).push(0).op(vm.REVERT)

	a.label("halt")
	a.push(7).push(0).op(vm.SSTORE)
	a.op(vm.INVALID)

	code := a.build()
	return Example{
		Name:     "counter",
		Code:     code,
		InitCode: InitCode(code),
		Signatures: []string{
			"function count() view returns (uint256)",
			"function increment()",
			"function add(uint256 amount) returns (uint256)",
			"function fail()",
			"function halt()",
			"event Incremented(uint256 value)",
		},
	}
}
