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
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/panoptisDev/evmsim/go/contract"
	"github.com/panoptisDev/evmsim/go/examples"
	"github.com/urfave/cli/v2"
)

var Demo = cli.Command{
	Action: demo,
	Name:   "demo",
	Usage:  "deploys the built-in counter contract and increments it",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "increments",
			Usage: "number of increments to perform",
			Value: 3,
		},
	},
}

var demoAccount = common.HexToAddress("0x00000000000000000000000000000000000000a1")

func demo(context *cli.Context) error {
	out := context.App.Writer
	backend, err := newProvider(context)
	if err != nil {
		return err
	}
	backend.CreateAccount(demoAccount, uint256.NewInt(1_000_000_000_000_000_000))

	example := examples.GetCounterExample()
	schema, err := contract.ParseSignatures(example.Signatures...)
	if err != nil {
		return err
	}
	counter, gas, err := contract.DeploySchema(backend, demoAccount, schema.WithBytecode(example.InitCode))
	if err != nil {
		return err
	}
	address, _ := counter.Address()
	fmt.Fprintf(out, "deployed %s at %v\n", example.Name, address)
	printGas(out, "deployment", gas)

	for i := 0; i < context.Int("increments"); i++ {
		result, err := counter.Send(backend, "increment", demoAccount, nil)
		if err != nil {
			return err
		}
		printGas(out, "increment", result.GasUsed)
		printLogs(out, schema, result.Logs)
	}

	result, err := counter.Call(backend, "count", demoAccount)
	if err != nil {
		return err
	}
	count, err := contract.Decode[*big.Int](result, 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "count: %v\n", count)

	account, err := backend.ViewAccount(address)
	if err != nil {
		return err
	}
	printAccount(out, account)
	return nil
}
