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

//go:generate mockgen -source engine.go -destination engine_mock.go -package engine

// Engine is an interface for a component capable of executing a single
// transaction on top of a given state. Engines are expected to mutate the
// provided state as the transaction demands, but are not responsible for
// deciding whether those mutations are kept. This is up to the caller.
type Engine interface {
	// Transact executes the given transaction on the given state. An error is
	// only returned if the transaction could not be processed at all, e.g. if
	// the caller can not cover the transferred value. Reverts and halts are
	// regular outcomes.
	Transact(Transaction, StateDB) (Outcome, error)
}
