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
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/panoptisDev/evmsim/go/engine"
)

// DefaultEngine is the name of the engine used if none is configured.
const DefaultEngine = "geth"

// Config summarizes the settings of a provider.
type Config struct {
	// Engine is the name of the registered engine executing transactions.
	Engine string `toml:"engine"`
	// Block describes the block all transactions are executed in.
	Block engine.Parameters `toml:"block"`
}

// DefaultConfig returns the configuration used if nothing else is specified.
func DefaultConfig() Config {
	return Config{
		Engine: DefaultEngine,
		Block:  engine.DefaultParameters(),
	}
}

// Validate checks the consistency of the configuration.
func (c Config) Validate() error {
	if c.Engine == "" {
		return fmt.Errorf("no engine configured")
	}
	if err := c.Block.Validate(); err != nil {
		return fmt.Errorf("invalid block parameters: %w", err)
	}
	return nil
}

// LoadConfig reads a TOML configuration file. Settings missing in the file
// retain their default values. Unknown settings are rejected.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return finishConfig(config, meta)
}

// ParseConfig reads a TOML configuration from the given text.
func ParseConfig(text string) (Config, error) {
	config := DefaultConfig()
	meta, err := toml.Decode(text, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return finishConfig(config, meta)
}

func finishConfig(config Config, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
