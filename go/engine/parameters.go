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

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

// Fork identifies the set of protocol rules an engine is executing under.
type Fork byte

const (
	London Fork = iota
	Shanghai
	Cancun
	Prague
)

// DefaultFork is the fork used if none is configured.
const DefaultFork = Cancun

var forkNames = map[Fork]string{
	London:   "london",
	Shanghai: "shanghai",
	Cancun:   "cancun",
	Prague:   "prague",
}

func (f Fork) String() string {
	if name, found := forkNames[f]; found {
		return name
	}
	return fmt.Sprintf("Fork(%d)", byte(f))
}

func (f Fork) MarshalText() ([]byte, error) {
	if _, found := forkNames[f]; !found {
		return nil, fmt.Errorf("unknown fork %d", byte(f))
	}
	return []byte(f.String()), nil
}

func (f *Fork) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for fork, cur := range forkNames {
		if cur == name {
			*f = fork
			return nil
		}
	}
	return fmt.Errorf("unknown fork %q", string(text))
}

const (
	// DefaultBlockGasLimit is the gas limit of the simulated block. It bounds
	// the gas any single transaction may request.
	DefaultBlockGasLimit = uint64(1) << 62

	// DefaultGasLimit is the gas limit assigned to transactions not
	// specifying one.
	DefaultGasLimit = uint64(30_000_000)

	// DefaultChainID is the chain id reported by the CHAINID instruction.
	DefaultChainID = uint64(1337)
)

// Parameters summarizes the block-level environment of all transactions
// executed by an engine. There is no block production; all transactions are
// executed in the context of the same block.
type Parameters struct {
	ChainID     uint64         `toml:"chain_id"`
	Fork        Fork           `toml:"fork"`
	BlockNumber uint64         `toml:"block_number"`
	Timestamp   uint64         `toml:"timestamp"`
	GasLimit    uint64         `toml:"block_gas_limit"`
	TxGasLimit  uint64         `toml:"gas_limit"`
	Coinbase    common.Address `toml:"coinbase"`
	PrevRandao  common.Hash    `toml:"prev_randao"`
}

// DefaultParameters returns the parameters used if nothing else is configured.
func DefaultParameters() Parameters {
	return Parameters{
		ChainID:    DefaultChainID,
		Fork:       DefaultFork,
		Timestamp:  1,
		GasLimit:   DefaultBlockGasLimit,
		TxGasLimit: DefaultGasLimit,
	}
}

// Validate checks the consistency of the parameters.
func (p Parameters) Validate() error {
	if _, found := forkNames[p.Fork]; !found {
		return fmt.Errorf("unsupported fork %v", p.Fork)
	}
	if p.GasLimit == 0 {
		return fmt.Errorf("block gas limit must not be zero")
	}
	if p.TxGasLimit > p.GasLimit {
		return fmt.Errorf("transaction gas limit %d exceeds block gas limit %d", p.TxGasLimit, p.GasLimit)
	}
	return nil
}

// ChainConfig derives the go-ethereum chain configuration enabling all
// protocol rules up to and including the configured fork.
func (p Parameters) ChainConfig() *params.ChainConfig {
	chainConfig := *params.AllEthashProtocolChanges
	chainConfig.ChainID = new(big.Int).SetUint64(p.ChainID)
	chainConfig.ByzantiumBlock = big.NewInt(0)
	chainConfig.IstanbulBlock = big.NewInt(0)
	chainConfig.BerlinBlock = big.NewInt(0)
	chainConfig.LondonBlock = big.NewInt(0)
	chainConfig.MergeNetsplitBlock = big.NewInt(0)
	zeroTime := uint64(0)
	chainConfig.ShanghaiTime = &zeroTime
	chainConfig.CancunTime = &zeroTime
	chainConfig.PragueTime = &zeroTime
	chainConfig.OsakaTime = nil
	chainConfig.VerkleTime = nil

	if p.Fork < Prague {
		chainConfig.PragueTime = nil
	}
	if p.Fork < Cancun {
		chainConfig.CancunTime = nil
	}
	if p.Fork < Shanghai {
		chainConfig.ShanghaiTime = nil
	}
	return &chainConfig
}
