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
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// abiEntry is a single element of a JSON interface description.
type abiEntry struct {
	Type            string                   `json:"type"`
	Name            string                   `json:"name,omitempty"`
	Inputs          []abi.ArgumentMarshaling `json:"inputs"`
	Outputs         []abi.ArgumentMarshaling `json:"outputs,omitempty"`
	StateMutability string                   `json:"stateMutability,omitempty"`
	Anonymous       bool                     `json:"anonymous,omitempty"`
}

// ParseSignatures builds a schema from human-readable declarations like
//
//	function balanceOf(address owner) view returns (uint256)
//	event Transfer(address indexed from, address indexed to, uint256 value)
//	constructor(uint256 supply)
//	error Insufficient(uint256 available)
//
// Tuple parameters are supported, but their components are unnamed.
// Function names must be unique.
func ParseSignatures(signatures ...string) (*Schema, error) {
	entries := make([]abiEntry, 0, len(signatures))
	names := map[string]struct{}{}
	for _, signature := range signatures {
		entry, err := parseSignature(signature)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidMetadata, signature, err)
		}
		if entry.Type == "function" {
			if _, found := names[entry.Name]; found {
				return nil, fmt.Errorf("%w: duplicate function %q", ErrInvalidMetadata, entry.Name)
			}
			names[entry.Name] = struct{}{}
		}
		entries = append(entries, entry)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return ParseSchema(data)
}

func parseSignature(signature string) (abiEntry, error) {
	signature = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(signature), ";"))
	kind, rest, _ := strings.Cut(signature, " ")
	if strings.HasPrefix(signature, "constructor") {
		kind, rest = "constructor", signature
	}
	switch kind {
	case "function", "event", "error", "constructor":
	default:
		return abiEntry{}, fmt.Errorf("unsupported declaration kind %q", kind)
	}

	open := strings.IndexByte(rest, '(')
	if open < 0 {
		return abiEntry{}, fmt.Errorf("missing parameter list")
	}
	name := strings.TrimSpace(rest[:open])
	if kind == "constructor" {
		if name != "constructor" {
			return abiEntry{}, fmt.Errorf("invalid constructor")
		}
		name = ""
	} else if !identifier.MatchString(name) {
		return abiEntry{}, fmt.Errorf("invalid name %q", name)
	}

	params, tail, err := splitGroup(rest[open:])
	if err != nil {
		return abiEntry{}, err
	}
	inputs, err := parseParameters(params, kind == "event")
	if err != nil {
		return abiEntry{}, err
	}

	entry := abiEntry{Type: kind, Name: name, Inputs: inputs}
	if kind == "function" || kind == "constructor" {
		entry.StateMutability = "nonpayable"
	}
	for tail = strings.TrimSpace(tail); tail != ""; tail = strings.TrimSpace(tail) {
		word, remainder, _ := strings.Cut(tail, " ")
		if strings.HasPrefix(tail, "returns") {
			word, remainder = "returns", strings.TrimSpace(strings.TrimPrefix(tail, "returns"))
		}
		switch {
		case word == "returns" && kind == "function":
			outputs, next, err := splitGroup(remainder)
			if err != nil {
				return abiEntry{}, err
			}
			if entry.Outputs, err = parseParameters(outputs, false); err != nil {
				return abiEntry{}, err
			}
			remainder = next
		case (word == "view" || word == "pure") && kind == "function",
			word == "payable" && (kind == "function" || kind == "constructor"):
			entry.StateMutability = word
		case word == "anonymous" && kind == "event":
			entry.Anonymous = true
		case word == "external" || word == "public":
		default:
			return abiEntry{}, fmt.Errorf("unexpected %q", word)
		}
		tail = remainder
	}
	return entry, nil
}

var (
	identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	typeName   = regexp.MustCompile(`^([a-z]+)([0-9]*)((?:\[[0-9]*\])*)$`)
	// unsizedInt matches int and uint types lacking an explicit size.
	unsizedInt = regexp.MustCompile(`(^|[(,])(u?int)([\[,)]|$)`)
)

// splitGroup splits a parenthesized group from the start of the given text,
// returning its content and whatever follows it.
func splitGroup(text string) (string, string, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "(") {
		return "", "", fmt.Errorf("expected '(' in %q", text)
	}
	depth := 0
	for i, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return text[1:i], text[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("unbalanced parentheses in %q", text)
}

// splitTopLevel splits the given text at commas not nested in parentheses.
func splitTopLevel(text string) []string {
	var res []string
	depth, start := 0, 0
	for i, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, text[start:i])
				start = i + 1
			}
		}
	}
	return append(res, text[start:])
}

func parseParameters(text string, allowIndexed bool) ([]abi.ArgumentMarshaling, error) {
	if strings.TrimSpace(text) == "" {
		return []abi.ArgumentMarshaling{}, nil
	}
	parts := splitTopLevel(text)
	types := make([]string, len(parts))
	names := make([]string, len(parts))
	indexed := make([]bool, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		// The type ends after the last closing parenthesis or at the first space.
		end := strings.LastIndexByte(part, ')') + 1
		if space := strings.IndexByte(part[end:], ' '); space >= 0 {
			end += space
		} else {
			end = len(part)
		}
		types[i] = normalizeType(part[:end])
		for _, word := range strings.Fields(part[end:]) {
			switch {
			case word == "indexed" && allowIndexed:
				indexed[i] = true
			case word == "memory" || word == "calldata" || word == "storage":
			case names[i] == "" && identifier.MatchString(word):
				names[i] = word
			default:
				return nil, fmt.Errorf("unexpected %q in parameter %q", word, part)
			}
		}
	}

	selector, err := abi.ParseSelector("f(" + strings.Join(types, ",") + ")")
	if err != nil {
		return nil, err
	}
	if len(selector.Inputs) != len(parts) {
		return nil, fmt.Errorf("expected %d parameters, parsed %d", len(parts), len(selector.Inputs))
	}
	for i := range selector.Inputs {
		if err := checkType(selector.Inputs[i]); err != nil {
			return nil, err
		}
		selector.Inputs[i].Name = names[i]
		selector.Inputs[i].Indexed = indexed[i]
	}
	return selector.Inputs, nil
}

// checkType rejects type names the selector parser accepts although they
// are no valid ABI types, like uint7 or uint8x.
func checkType(arg abi.ArgumentMarshaling) error {
	match := typeName.FindStringSubmatch(arg.Type)
	if match == nil {
		return fmt.Errorf("invalid type %q", arg.Type)
	}
	name, size := match[1], match[2]
	bits, err := strconv.Atoi(size)
	canonical := err == nil && strconv.Itoa(bits) == size
	switch name {
	case "tuple":
		if size == "" {
			for _, component := range arg.Components {
				if err := checkType(component); err != nil {
					return err
				}
			}
			return nil
		}
	case "address", "bool", "string", "function":
		if size == "" {
			return nil
		}
	case "bytes":
		if size == "" || (canonical && bits >= 1 && bits <= 32) {
			return nil
		}
	case "int", "uint":
		if canonical && bits >= 8 && bits <= 256 && bits%8 == 0 {
			return nil
		}
	}
	return fmt.Errorf("invalid type %q", arg.Type)
}

func normalizeType(typ string) string {
	typ = strings.ReplaceAll(typ, " ", "")
	for {
		next := unsizedInt.ReplaceAllString(typ, "${1}${2}256${3}")
		if next == typ {
			return typ
		}
		typ = next
	}
}
