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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/types"
)

// Transition is the state a single transaction is executed on. It implements
// vm.StateDB by wrapping the store's state database, additionally tracking
// the logs emitted and the storage slots written by the transaction.
//
// A transition must be closed by exactly one call to Commit or Discard
// before the next one is opened on the same store.
type Transition struct {
	*state.StateDB
	store    *Store
	live     bool
	start    int
	closed   bool
	logs     []*types.Log
	logMarks map[int]int
	written  map[common.Address]map[common.Hash]struct{}
}

func newTransition(store *Store, db *state.StateDB, live bool) *Transition {
	return &Transition{
		StateDB:  db,
		store:    store,
		live:     live,
		start:    db.Snapshot(),
		logMarks: map[int]int{},
		written:  map[common.Address]map[common.Hash]struct{}{},
	}
}

// IsLive reports whether the transition operates on the live state.
func (t *Transition) IsLive() bool {
	return t.live
}

func (t *Transition) SetState(address common.Address, key, value common.Hash) common.Hash {
	keys, found := t.written[address]
	if !found {
		keys = map[common.Hash]struct{}{}
		t.written[address] = keys
	}
	keys[key] = struct{}{}
	return t.StateDB.SetState(address, key, value)
}

func (t *Transition) AddLog(log *types.Log) {
	log.Index = uint(len(t.logs))
	t.logs = append(t.logs, log)
}

// Logs returns the logs emitted so far, excluding those of reverted scopes.
func (t *Transition) Logs() []*types.Log {
	return t.logs
}

func (t *Transition) Snapshot() int {
	id := t.StateDB.Snapshot()
	t.logMarks[id] = len(t.logs)
	return id
}

func (t *Transition) RevertToSnapshot(id int) {
	t.StateDB.RevertToSnapshot(id)
	if mark, found := t.logMarks[id]; found {
		t.logs = t.logs[:mark]
	}
	for cur := range t.logMarks {
		if cur >= id {
			delete(t.logMarks, cur)
		}
	}
}

// Commit makes the effects of a live transition permanent. For simulated
// transitions it is equivalent to Discard.
func (t *Transition) Commit() {
	if t.closed {
		return
	}
	t.closed = true
	if !t.live {
		return
	}
	t.StateDB.Finalise(true)
	t.store.indexSlots(t.written)
}

// Discard drops all effects of the transition.
func (t *Transition) Discard() {
	if t.closed {
		return
	}
	t.closed = true
	if !t.live {
		return
	}
	t.StateDB.RevertToSnapshot(t.start)
	t.StateDB.Finalise(true)
}
