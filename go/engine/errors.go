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

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	// ErrWrongMode is returned if a transaction addresses a contract while a
	// creation was requested, or the other way around.
	ErrWrongMode = ConstError("transaction targets the wrong execution mode")

	// ErrUnknownEngine is returned if no engine factory is registered under
	// the requested name.
	ErrUnknownEngine = ConstError("unknown execution engine")
)
