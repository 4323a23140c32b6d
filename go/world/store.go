// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package world

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/triedb"
	"github.com/holiman/uint256"
)

// ErrLookup is returned if the backing database fails to resolve an account.
const ErrLookup = constError("account lookup failed")

// constError mirrors engine.ConstError, which cannot be used here since the
// engine package depends on this one.
type constError string

func (e constError) Error() string {
	return string(e)
}

// Store is an in-memory account database. It is not safe for concurrent use;
// callers are expected to serialize all accesses.
type Store struct {
	db *state.StateDB
	// slots indexes all storage keys ever written per account, since the
	// state database offers no way to enumerate storage.
	slots map[common.Address]map[common.Hash]struct{}
}

// NewStore creates an empty store backed by an in-memory database.
func NewStore() (*Store, error) {
	database := state.NewDatabase(triedb.NewDatabase(rawdb.NewMemoryDatabase(), nil), nil)
	db, err := state.New(types.EmptyRootHash, database)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}
	return &Store{
		db:    db,
		slots: map[common.Address]map[common.Hash]struct{}{},
	}, nil
}

// Get returns the account stored for the given address without its storage.
// Addresses never seen before yield an empty account.
func (s *Store) Get(address common.Address) Account {
	if !s.db.Exist(address) {
		return emptyAccount(address)
	}
	res := Account{
		Address:  address,
		Balance:  s.db.GetBalance(address).Clone(),
		Nonce:    s.db.GetNonce(address),
		Code:     common.CopyBytes(s.db.GetCode(address)),
		CodeHash: s.db.GetCodeHash(address),
	}
	if res.CodeHash == (common.Hash{}) {
		res.CodeHash = types.EmptyCodeHash
	}
	return res
}

// Balance returns the balance of the given address, zero if unseen.
func (s *Store) Balance(address common.Address) *uint256.Int {
	return s.db.GetBalance(address).Clone()
}

// Nonce returns the nonce of the given address, zero if unseen.
func (s *Store) Nonce(address common.Address) uint64 {
	return s.db.GetNonce(address)
}

// SetBalance overwrites the balance of the given account, materializing it
// if needed. The change takes effect immediately.
func (s *Store) SetBalance(address common.Address, value *uint256.Int) {
	if value == nil {
		value = new(uint256.Int)
	}
	s.db.SetBalance(address, value.Clone(), tracing.BalanceChangeUnspecified)
	// Accounts created explicitly are kept even if empty.
	s.db.Finalise(false)
}

// LoadFull returns the complete record of an account, including all non-zero
// storage slots.
func (s *Store) LoadFull(address common.Address) (Account, error) {
	res := s.Get(address)
	res.Storage = map[common.Hash]common.Hash{}
	for key := range s.slots[address] {
		value := s.db.GetState(address, key)
		if value != (common.Hash{}) {
			res.Storage[key] = value
		}
	}
	if err := s.db.Error(); err != nil {
		return Account{}, fmt.Errorf("%w for %v: %w", ErrLookup, address, err)
	}
	return res, nil
}

// Begin opens a transition on the live state. Its effects become permanent
// through Commit or are rolled back through Discard.
func (s *Store) Begin() *Transition {
	return newTransition(s, s.db, true)
}

// Simulate opens a transition on a copy of the current state. None of its
// effects are ever visible in the store.
func (s *Store) Simulate() *Transition {
	return newTransition(s, s.db.Copy(), false)
}

func (s *Store) indexSlots(slots map[common.Address]map[common.Hash]struct{}) {
	for address, keys := range slots {
		known, found := s.slots[address]
		if !found {
			known = make(map[common.Hash]struct{}, len(keys))
			s.slots[address] = known
		}
		for key := range keys {
			known[key] = struct{}{}
		}
	}
}
