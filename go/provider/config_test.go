// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/panoptisDev/evmsim/go/engine"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	require.Equal(t, DefaultEngine, config.Engine)
	require.Equal(t, engine.DefaultFork, config.Block.Fork)
}

func TestConfig_ParseOverridesDefaults(t *testing.T) {
	config, err := ParseConfig(`
engine = "geth"

[block]
chain_id = 250
fork = "shanghai"
gas_limit = 1000000
coinbase = "0x00000000000000000000000000000000000000c0"
`)
	require.NoError(t, err)
	require.Equal(t, uint64(250), config.Block.ChainID)
	require.Equal(t, engine.Shanghai, config.Block.Fork)
	require.Equal(t, uint64(1_000_000), config.Block.TxGasLimit)
	require.Equal(t, common.HexToAddress("0xc0"), config.Block.Coinbase)
	require.Equal(t, engine.DefaultBlockGasLimit, config.Block.GasLimit)
}

func TestConfig_ParseRejectsInvalidInput(t *testing.T) {
	tests := map[string]string{
		"unknown key":     `colour = "blue"`,
		"unknown fork":    "[block]\nfork = \"frontier\"",
		"empty engine":    `engine = ""`,
		"malformed":       `engine = `,
		"excessive limit": "[block]\nblock_gas_limit = 10\ngas_limit = 11",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig(text)
			require.Error(t, err)
		})
	}
}

func TestConfig_LoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[block]\nfork = \"prague\"\n"), 0600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, engine.Prague, config.Block.Fork)

	provider, err := New(config)
	require.NoError(t, err)
	require.NotNil(t, provider)
}

func TestConfig_LoadFailsForMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
