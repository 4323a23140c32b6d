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
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/panoptisDev/evmsim/go/provider"
	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./go/cmd/evmsim <command> <flags>

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML file with provider settings",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level, 0 (critical) to 5 (trace)",
		Value: 2,
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "evmsim",
		Usage: "executes contracts on an in-memory EVM",
		Flags: []cli.Flag{
			configFlag,
			verbosityFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&Demo,
			&Run,
		},
	}
}

func setupLogging(context *cli.Context) error {
	level := log.FromLegacyLevel(context.Int(verbosityFlag.Name))
	handler := log.NewTerminalHandlerWithLevel(context.App.ErrWriter, level, false)
	log.SetDefault(log.NewLogger(handler))
	return nil
}

func newProvider(context *cli.Context) (*provider.Provider, error) {
	config := provider.DefaultConfig()
	if path := context.String(configFlag.Name); path != "" {
		var err error
		if config, err = provider.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	return provider.New(config)
}
