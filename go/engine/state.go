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
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
)

// StateDB is the state an engine is operating on. Besides the full state
// interface of the EVM, it provides access to the logs emitted since the
// state was opened.
type StateDB interface {
	vm.StateDB
	Logs() []*types.Log
}
