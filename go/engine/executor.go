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
	"github.com/ethereum/go-ethereum/log"
	"github.com/panoptisDev/evmsim/go/world"
)

// Executor runs transactions through an engine on top of an account store.
// It decides which effects of a transaction become permanent: a transaction
// executed through Write keeps its effects only if it succeeded, a
// transaction executed through Read never keeps any.
//
// Executor is not safe for concurrent use.
type Executor struct {
	engine Engine
	store  *world.Store
}

// NewExecutor creates an executor running the given engine on the given store.
func NewExecutor(engine Engine, store *world.Store) *Executor {
	return &Executor{engine: engine, store: store}
}

// Write executes the transaction on the live state and commits its effects
// if it succeeded. Engine failures, including panics, leave the state
// untouched.
func (e *Executor) Write(tx Transaction) (Outcome, error) {
	transition := e.store.Begin()
	// Discarding is a no-op after a commit. The deferred call also rolls back
	// engines that panic mid-transaction.
	defer transition.Discard()
	outcome, err := e.engine.Transact(tx, transition)
	if err != nil {
		return nil, err
	}
	if _, success := outcome.(*Success); success {
		transition.Commit()
	} else {
		log.Debug("Discarding effects of failed transaction", "caller", tx.Caller, "outcome", describe(outcome))
	}
	return outcome, nil
}

// Read executes the transaction on a copy of the current state. The store
// is never modified.
func (e *Executor) Read(tx Transaction) (Outcome, error) {
	transition := e.store.Simulate()
	defer transition.Discard()
	return e.engine.Transact(tx, transition)
}

func describe(outcome Outcome) string {
	switch o := outcome.(type) {
	case *Success:
		return "success"
	case *Revert:
		return "revert"
	case *Halt:
		return "halt: " + o.Reason.String()
	default:
		return "unknown"
	}
}
