// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// Keccak256Hash computes the Keccak-256 hash of the given data.
func Keccak256Hash(data []byte) common.Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	var hash common.Hash
	hasher.Sum(hash[0:0])
	return hash
}

// Selector computes the 4-byte function selector of the given canonical
// signature, e.g. "transfer(address,uint256)".
func Selector(signature string) [4]byte {
	hash := Keccak256Hash([]byte(signature))
	return [4]byte(hash[:4])
}
