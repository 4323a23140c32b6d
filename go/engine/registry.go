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
	"sync"
)

// EngineFactory creates an engine operating under the given parameters.
type EngineFactory func(Parameters) Engine

// RegisterEngineFactory registers a new engine implementation under the given
// name. Engine packages register themselves in their init functions. It is
// an error to register two factories under the same name.
func RegisterEngineFactory(name string, factory EngineFactory) {
	if factory == nil {
		panic(fmt.Sprintf("invalid initialization of engine %s: factory is nil", name))
	}
	engineRegistryMutex.Lock()
	defer engineRegistryMutex.Unlock()
	if _, found := engineRegistry[name]; found {
		panic(fmt.Sprintf("multiple engines registered for name %s", name))
	}
	engineRegistry[name] = factory
}

// GetEngineFactory looks up the factory registered under the given name.
// Returns nil if there is none.
func GetEngineFactory(name string) EngineFactory {
	engineRegistryMutex.Lock()
	defer engineRegistryMutex.Unlock()
	return engineRegistry[name]
}

// NewEngine creates an engine using the factory registered under the given name.
func NewEngine(name string, params Parameters) (Engine, error) {
	factory := GetEngineFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return factory(params), nil
}

// GetAllRegisteredEngineFactories returns a snapshot of all registered factories.
func GetAllRegisteredEngineFactories() map[string]EngineFactory {
	engineRegistryMutex.Lock()
	defer engineRegistryMutex.Unlock()
	res := make(map[string]EngineFactory, len(engineRegistry))
	for name, factory := range engineRegistry {
		res[name] = factory
	}
	return res
}

var (
	engineRegistry      = map[string]EngineFactory{}
	engineRegistryMutex sync.Mutex
)
