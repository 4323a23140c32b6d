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
	"github.com/ethereum/go-ethereum/common"
	"github.com/panoptisDev/evmsim/go/engine"
	"github.com/panoptisDev/evmsim/go/provider"
)

//go:generate mockgen -source backend.go -destination backend_mock.go -package contract

// Backend executes the transactions issued by contracts. It is implemented
// by *provider.Provider.
type Backend interface {
	// Deploy executes a contract creation and returns the new address.
	Deploy(engine.Transaction) (common.Address, uint64, error)
	// Send executes a call, keeping its effects if it succeeds.
	Send(engine.Transaction) (provider.Result, error)
	// Call executes a call without keeping any of its effects.
	Call(engine.Transaction) (provider.Result, error)
}

var _ Backend = (*provider.Provider)(nil)
