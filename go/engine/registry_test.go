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

func TestEngineRegistry_RegisteredFactoriesCanBeRetrieved(t *testing.T) {
	factory := func(Parameters) Engine { return nil }
	RegisterEngineFactory("test-registry", factory)

	require.NotNil(t, GetEngineFactory("test-registry"))
	require.Contains(t, GetAllRegisteredEngineFactories(), "test-registry")
}

func TestEngineRegistry_DuplicateRegistrationPanics(t *testing.T) {
	factory := func(Parameters) Engine { return nil }
	RegisterEngineFactory("test-duplicate", factory)
	require.Panics(t, func() { RegisterEngineFactory("test-duplicate", factory) })
}

func TestEngineRegistry_NilFactoryPanics(t *testing.T) {
	require.Panics(t, func() { RegisterEngineFactory("test-nil", nil) })
}

func TestEngineRegistry_UnknownEngineIsReported(t *testing.T) {
	require.Nil(t, GetEngineFactory("unknown"))
	_, err := NewEngine("unknown", DefaultParameters())
	require.ErrorIs(t, err, ErrUnknownEngine)
}
