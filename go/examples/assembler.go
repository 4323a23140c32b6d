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
	"fmt"

	"github.com/ethereum/go-ethereum/core/vm"
)

// assembler produces EVM byte code from a sequence of instructions. Jump
// targets are referenced through labels which are resolved by build. All
// label references are encoded as PUSH2.
type assembler struct {
	code   []byte
	labels map[string]int
	refs   map[int]string
}

func newAssembler() *assembler {
	return &assembler{
		labels: map[string]int{},
		refs:   map[int]string{},
	}
}

func (a *assembler) op(ops ...vm.OpCode) *assembler {
	for _, op := range ops {
		a.code = append(a.code, byte(op))
	}
	return a
}

// push emits the shortest PUSH instruction for the given value, which
// must be between 1 and 32 bytes long.
func (a *assembler) push(value ...byte) *assembler {
	if len(value) == 0 || len(value) > 32 {
		panic(fmt.Sprintf("invalid push of %d bytes", len(value)))
	}
	a.code = append(a.code, byte(vm.PUSH1)+byte(len(value)-1))
	a.code = append(a.code, value...)
	return a
}

// push2 emits a PUSH2 instruction with a fixed width.
func (a *assembler) push2(value int) *assembler {
	return a.push(byte(value>>8), byte(value))
}

func (a *assembler) pushLabel(name string) *assembler {
	a.code = append(a.code, byte(vm.PUSH2))
	a.refs[len(a.code)] = name
	a.code = append(a.code, 0, 0)
	return a
}

// label marks the current position as a jump destination.
func (a *assembler) label(name string) *assembler {
	if _, found := a.labels[name]; found {
		panic(fmt.Sprintf("duplicate label %s", name))
	}
	a.labels[name] = len(a.code)
	return a.op(vm.JUMPDEST)
}

func (a *assembler) build() []byte {
	res := make([]byte, len(a.code))
	copy(res, a.code)
	for pos, name := range a.refs {
		target, found := a.labels[name]
		if !found {
			panic(fmt.Sprintf("undefined label %s", name))
		}
		res[pos] = byte(target >> 8)
		res[pos+1] = byte(target)
	}
	return res
}

// InitCode wraps the given runtime code into init code deploying it. If the
// init code is followed by a 32-byte constructor argument, the argument is
// stored in storage slot zero before the runtime code is returned.
func InitCode(runtime []byte) []byte {
	assemble := func(initLen int) []byte {
		end := initLen + len(runtime)
		a := newAssembler()
		a.push2(end).op(vm.CODESIZE, vm.GT, vm.ISZERO).pushLabel("deploy").op(vm.JUMPI)
		a.push(32).push2(end).push(0).op(vm.CODECOPY)
		a.push(0).op(vm.MLOAD).push(0).op(vm.SSTORE)
		a.label("deploy")
		a.push2(len(runtime)).op(vm.DUP1).push2(initLen).push(0).op(vm.CODECOPY)
		a.push(0).op(vm.RETURN)
		return a.build()
	}
	// The length of the init code does not depend on the encoded values.
	init := assemble(len(assemble(0)))
	return append(init, runtime...)
}
