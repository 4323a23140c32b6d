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
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Transaction summarizes the environment of a single execution request.
type Transaction struct {
	Caller   common.Address  // the account originating the transaction
	To       *common.Address // the called account, nil if a contract is to be created
	Data     []byte          // call data or, for creations, the init code
	Value    *uint256.Int    // the amount transferred to the callee, nil for none
	GasLimit uint64          // the maximum amount of gas the transaction may consume
}

// IsCreate reports whether the transaction deploys a new contract.
func (t Transaction) IsCreate() bool {
	return t.To == nil
}

// TransferredValue returns the value of the transaction, substituting zero
// for a missing value.
func (t Transaction) TransferredValue() *uint256.Int {
	if t.Value == nil {
		return new(uint256.Int)
	}
	return t.Value
}
