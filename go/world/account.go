// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package world maintains the in-memory account state transactions are
// executed on. Accounts never seen before behave as zero-balance, codeless
// accounts.
package world

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"golang.org/x/exp/slices"
)

// Account is a snapshot of the state of a single address.
type Account struct {
	Address  common.Address
	Balance  *uint256.Int
	Nonce    uint64
	Code     []byte
	CodeHash common.Hash
	// Storage lists all non-zero storage slots. It is only filled for
	// accounts obtained through Store.LoadFull.
	Storage map[common.Hash]common.Hash
}

// HasCode reports whether the account hosts a contract.
func (a Account) HasCode() bool {
	return len(a.Code) > 0
}

// StorageKeys returns the keys of all non-zero storage slots in ascending order.
func (a Account) StorageKeys() []common.Hash {
	keys := make([]common.Hash, 0, len(a.Storage))
	for key := range a.Storage {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b common.Hash) int {
		return a.Cmp(b)
	})
	return keys
}

func emptyAccount(address common.Address) Account {
	return Account{
		Address:  address,
		Balance:  new(uint256.Int),
		CodeHash: types.EmptyCodeHash,
	}
}
