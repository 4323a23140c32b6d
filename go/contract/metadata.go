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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Metadata describes a deployable contract as found in compiler artifacts.
type Metadata struct {
	Name   string
	Schema *Schema // always carries the creation code
}

type artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

// ParseMetadata parses a compiler artifact of the form
//
//	{"abi": [...], "bytecode": "0x..."}
//
// The bytecode may also be given as {"object": "0x..."}. Artifacts without
// creation code are rejected with ErrMissingBytecode.
func ParseMetadata(data []byte) (Metadata, error) {
	var parsed artifact
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Metadata{}, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}
	if len(parsed.ABI) == 0 {
		return Metadata{}, fmt.Errorf("%w: missing abi", ErrInvalidMetadata)
	}
	code, err := parseBytecode(parsed.Bytecode)
	if err != nil {
		return Metadata{}, err
	}
	schema, err := ParseSchema(parsed.ABI)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		Name:   parsed.ContractName,
		Schema: schema.WithBytecode(code),
	}, nil
}

func parseBytecode(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrMissingBytecode
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		var object struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(raw, &object); err != nil {
			return nil, fmt.Errorf("%w: unsupported bytecode format", ErrInvalidMetadata)
		}
		text = object.Object
	}
	text = strings.TrimSpace(text)
	if text == "" || text == "0x" {
		return nil, ErrMissingBytecode
	}
	if !strings.HasPrefix(text, "0x") {
		text = "0x" + text
	}
	code, err := hexutil.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: bytecode: %w", ErrInvalidMetadata, err)
	}
	return code, nil
}

// LoadMetadata reads a compiler artifact from the given file. If the
// artifact does not name the contract, the file name is used.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to load metadata: %w", err)
	}
	meta, err := ParseMetadata(data)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to load metadata %s: %w", path, err)
	}
	if meta.Name == "" {
		meta.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return meta, nil
}
