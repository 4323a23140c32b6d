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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFork_TextRoundTrip(t *testing.T) {
	for fork := range forkNames {
		text, err := fork.MarshalText()
		require.NoError(t, err)
		var restored Fork
		require.NoError(t, restored.UnmarshalText(text))
		require.Equal(t, fork, restored)
	}
}

func TestFork_UnmarshalIsCaseInsensitive(t *testing.T) {
	var fork Fork
	require.NoError(t, fork.UnmarshalText([]byte("Shanghai")))
	require.Equal(t, Shanghai, fork)
	require.Error(t, fork.UnmarshalText([]byte("frontier")))
}

func TestParameters_ChainConfigEnablesForksUpToConfiguredOne(t *testing.T) {
	tests := map[Fork]struct {
		shanghai, cancun, prague bool
	}{
		London:   {},
		Shanghai: {shanghai: true},
		Cancun:   {shanghai: true, cancun: true},
		Prague:   {shanghai: true, cancun: true, prague: true},
	}

	for fork, test := range tests {
		t.Run(fork.String(), func(t *testing.T) {
			params := DefaultParameters()
			params.Fork = fork
			config := params.ChainConfig()
			require.Equal(t, params.ChainID, config.ChainID.Uint64())
			require.True(t, config.IsLondon(config.LondonBlock))
			require.Equal(t, test.shanghai, config.ShanghaiTime != nil)
			require.Equal(t, test.cancun, config.CancunTime != nil)
			require.Equal(t, test.prague, config.PragueTime != nil)
		})
	}
}

func TestParameters_Validate(t *testing.T) {
	tests := map[string]struct {
		modify func(*Parameters)
		valid  bool
	}{
		"defaults": {
			modify: func(*Parameters) {},
			valid:  true,
		},
		"unknown fork": {
			modify: func(p *Parameters) { p.Fork = Fork(42) },
		},
		"zero block gas limit": {
			modify: func(p *Parameters) { p.GasLimit = 0 },
		},
		"transaction limit above block limit": {
			modify: func(p *Parameters) { p.TxGasLimit = p.GasLimit + 1 },
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			params := DefaultParameters()
			test.modify(&params)
			err := params.Validate()
			if test.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestHaltReason_String(t *testing.T) {
	require.Equal(t, "out of gas", HaltOutOfGas.String())
	require.Equal(t, "invalid opcode", HaltInvalidOpcode.String())
	require.Equal(t, "HaltReason(200)", HaltReason(200).String())
}
