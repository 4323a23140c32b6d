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

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/panoptisDev/evmsim/go/contract"
	"github.com/urfave/cli/v2"
)

var (
	artifactFlag = &cli.StringFlag{
		Name:     "artifact",
		Usage:    "compiler artifact of the contract, relative to the project root",
		Required: true,
	}
	functionFlag = &cli.StringFlag{
		Name:  "function",
		Usage: "function to invoke after the deployment",
	}
	argFlag = &cli.StringSliceFlag{
		Name:  "arg",
		Usage: "argument of the invoked function, may be repeated",
	}
	constructorArgFlag = &cli.StringSliceFlag{
		Name:  "constructor-arg",
		Usage: "constructor argument, may be repeated",
	}
	sendFlag = &cli.BoolFlag{
		Name:  "send",
		Usage: "keep the effects of the invocation and show the resulting contract state",
	}
	valueFlag = &cli.StringFlag{
		Name:  "value",
		Usage: "value transferred by a send, in wei",
		Value: "0",
	}
	callerFlag = &cli.StringFlag{
		Name:  "caller",
		Usage: "address deploying and invoking the contract",
		Value: "0x00000000000000000000000000000000000000a1",
	}
	balanceFlag = &cli.StringFlag{
		Name:  "balance",
		Usage: "initial balance of the caller, in wei",
		Value: "1000000000000000000",
	}
)

var Run = cli.Command{
	Action: run,
	Name:   "run",
	Usage:  "deploys a contract artifact and invokes one of its functions",
	Flags: []cli.Flag{
		artifactFlag,
		functionFlag,
		argFlag,
		constructorArgFlag,
		sendFlag,
		valueFlag,
		callerFlag,
		balanceFlag,
	},
}

func run(context *cli.Context) error {
	out := context.App.Writer

	caller := context.String(callerFlag.Name)
	if !common.IsHexAddress(caller) {
		return fmt.Errorf("invalid caller address %q", caller)
	}
	from := common.HexToAddress(caller)
	balance, err := uint256.FromDecimal(context.String(balanceFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid balance: %w", err)
	}
	value, err := uint256.FromDecimal(context.String(valueFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	root, err := contract.ProjectRoot()
	if err != nil {
		return err
	}
	loader, err := contract.NewLoader(root, 16)
	if err != nil {
		return err
	}
	meta, err := loader.Load(context.String(artifactFlag.Name))
	if err != nil {
		return err
	}

	backend, err := newProvider(context)
	if err != nil {
		return err
	}
	backend.CreateAccount(from, balance)

	constructorArgs, err := meta.Schema.ParseConstructorArgs(context.StringSlice(constructorArgFlag.Name))
	if err != nil {
		return err
	}
	instance, gas, err := contract.DeploySchema(backend, from, meta.Schema, constructorArgs...)
	if err != nil {
		return err
	}
	address, _ := instance.Address()
	fmt.Fprintf(out, "deployed %s at %v\n", meta.Name, address)
	printGas(out, "deployment", gas)

	function := context.String(functionFlag.Name)
	if function == "" {
		return nil
	}
	args, err := meta.Schema.ParseArgs(function, context.StringSlice(argFlag.Name))
	if err != nil {
		return err
	}

	var result contract.CallResult
	if context.Bool(sendFlag.Name) {
		result, err = instance.Send(backend, function, from, value, args...)
	} else {
		result, err = instance.Call(backend, function, from, args...)
	}
	if err != nil {
		return err
	}
	printValues(out, result.Values)
	printGas(out, function, result.GasUsed)
	printLogs(out, meta.Schema, result.Logs)

	if context.Bool(sendFlag.Name) {
		account, err := backend.ViewAccount(address)
		if err != nil {
			return err
		}
		printAccount(out, account)
	}
	return nil
}
