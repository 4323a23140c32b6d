// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package provider

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/panoptisDev/evmsim/go/engine"
	"github.com/panoptisDev/evmsim/go/world"
)

const (
	// ErrUnexpectedOutput is returned if the output of a successful
	// transaction does not match the requested mode, e.g. if call output is
	// produced where a contract creation was expected.
	ErrUnexpectedOutput = engine.ConstError("unexpected output shape")

	// ErrLookup is returned if an account could not be resolved.
	ErrLookup = world.ErrLookup
)

// RevertError is returned for transactions aborted by the executed program.
type RevertError struct {
	Output  []byte // the revert payload produced by the program
	GasUsed uint64
}

// Reason decodes the payload of a revert produced through Error(string).
func (e *RevertError) Reason() (string, error) {
	return abi.UnpackRevert(e.Output)
}

func (e *RevertError) Error() string {
	if reason, err := e.Reason(); err == nil {
		return fmt.Sprintf("failed due to revert: %s", reason)
	}
	return fmt.Sprintf("failed due to revert: %s", hexutil.Encode(e.Output))
}

// HaltError is returned for transactions aborted by the execution engine.
type HaltError struct {
	Reason  engine.HaltReason
	Detail  string
	GasUsed uint64
}

func (e *HaltError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("failed due to halt: %v", e.Reason)
	}
	return fmt.Sprintf("failed due to halt: %v (%s)", e.Reason, e.Detail)
}

// failure converts a non-successful outcome into an error.
func failure(outcome engine.Outcome) error {
	switch o := outcome.(type) {
	case *engine.Revert:
		return &RevertError{Output: o.Output, GasUsed: o.GasUsed}
	case *engine.Halt:
		return &HaltError{Reason: o.Reason, Detail: o.Detail, GasUsed: o.GasUsed}
	default:
		return fmt.Errorf("%w: unsupported outcome %T", ErrUnexpectedOutput, outcome)
	}
}
