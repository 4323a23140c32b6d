// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package engine

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Outcome is the result of a transaction that was executed by an engine.
// The set of outcomes is closed: *Success, *Revert, and *Halt.
type Outcome interface {
	// Gas returns the amount of gas consumed by the transaction.
	Gas() uint64
	isOutcome()
}

// Output is the payload of a successful execution. It is either a CallOutput
// or a CreateOutput.
type Output interface {
	isOutput()
}

// CallOutput is the data returned by a successful call.
type CallOutput []byte

// CreateOutput describes a contract created by a successful deployment.
type CreateOutput struct {
	Address common.Address // the address of the new contract
	Code    []byte         // the runtime code installed at Address
}

func (CallOutput) isOutput()   {}
func (CreateOutput) isOutput() {}

// Success is the outcome of a transaction that ran to completion.
type Success struct {
	Output  Output
	GasUsed uint64
	Logs    []*types.Log
}

// Revert is the outcome of a transaction aborted by the executed program.
// All state changes of the transaction are discarded.
type Revert struct {
	Output  []byte
	GasUsed uint64
}

// Halt is the outcome of a transaction aborted by the machine itself.
// All state changes of the transaction are discarded.
type Halt struct {
	Reason  HaltReason
	Detail  string
	GasUsed uint64
}

func (s *Success) Gas() uint64 { return s.GasUsed }
func (r *Revert) Gas() uint64  { return r.GasUsed }
func (h *Halt) Gas() uint64    { return h.GasUsed }

func (*Success) isOutcome() {}
func (*Revert) isOutcome()  {}
func (*Halt) isOutcome()    {}

// HaltReason enumerates the causes of an exceptional halt.
type HaltReason byte

const (
	HaltOther HaltReason = iota
	HaltOutOfGas
	HaltInvalidOpcode
	HaltInvalidJump
	HaltStackUnderflow
	HaltStackOverflow
	HaltCallTooDeep
	HaltStateChangeDuringStaticCall
	HaltReturnDataOutOfBounds
	HaltCodeSizeLimit
	HaltInvalidCode
	HaltContractCollision
)

func (r HaltReason) String() string {
	switch r {
	case HaltOther:
		return "other"
	case HaltOutOfGas:
		return "out of gas"
	case HaltInvalidOpcode:
		return "invalid opcode"
	case HaltInvalidJump:
		return "invalid jump destination"
	case HaltStackUnderflow:
		return "stack underflow"
	case HaltStackOverflow:
		return "stack overflow"
	case HaltCallTooDeep:
		return "call too deep"
	case HaltStateChangeDuringStaticCall:
		return "state change during static call"
	case HaltReturnDataOutOfBounds:
		return "return data out of bounds"
	case HaltCodeSizeLimit:
		return "code size limit exceeded"
	case HaltInvalidCode:
		return "invalid code"
	case HaltContractCollision:
		return "contract address collision"
	default:
		return fmt.Sprintf("HaltReason(%d)", byte(r))
	}
}
