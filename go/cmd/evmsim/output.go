// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fatih/color"
	"github.com/panoptisDev/evmsim/go/contract"
	"github.com/panoptisDev/evmsim/go/world"
)

func printGas(out io.Writer, action string, gas uint64) {
	fmt.Fprintf(out, "%s used %s gas\n", action, unitconv.FormatPrefix(float64(gas), unitconv.SI, 2))
}

func printValues(out io.Writer, values []any) {
	if len(values) == 0 {
		fmt.Fprintln(out, "result: -")
		return
	}
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = fmt.Sprintf("%v", value)
	}
	fmt.Fprintf(out, "result: %s\n", color.GreenString(strings.Join(parts, ", ")))
}

func printLogs(out io.Writer, schema *contract.Schema, logs []*types.Log) {
	for _, entry := range logs {
		event, err := schema.DecodeEvent(entry)
		if err != nil {
			fmt.Fprintf(out, "log %d: %v topics, %d bytes of data\n", entry.Index, len(entry.Topics), len(entry.Data))
			continue
		}
		fmt.Fprintf(out, "log %d: %s %v\n", entry.Index, color.CyanString(event.Name), event.Values)
	}
}

func printAccount(out io.Writer, account world.Account) {
	fmt.Fprintf(out, "account %v\n", account.Address)
	fmt.Fprintf(out, "  balance: %v\n", account.Balance)
	fmt.Fprintf(out, "  nonce:   %d\n", account.Nonce)
	fmt.Fprintf(out, "  code:    %d bytes\n", len(account.Code))
	for _, key := range account.StorageKeys() {
		fmt.Fprintf(out, "  [%v] = %v\n", key, account.Storage[key])
	}
}
