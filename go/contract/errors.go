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

import "github.com/panoptisDev/evmsim/go/engine"

const (
	// ErrMissingAddress is returned for calls on contracts not bound to an address.
	ErrMissingAddress = engine.ConstError("missing contract address")

	// ErrEncoding is returned if call arguments do not match a function signature.
	ErrEncoding = engine.ConstError("failed to encode call")

	// ErrDecoding is returned if returned data does not match a function signature.
	ErrDecoding = engine.ConstError("failed to decode result")

	// ErrUnknownFunction is returned for functions not present in a schema.
	// It is always reported together with ErrEncoding.
	ErrUnknownFunction = engine.ConstError("unknown function")

	// ErrMissingBytecode is returned when loading metadata without creation code.
	ErrMissingBytecode = engine.ConstError("missing bytecode")

	// ErrInvalidMetadata is returned for malformed contract metadata.
	ErrInvalidMetadata = engine.ConstError("invalid contract metadata")
)
