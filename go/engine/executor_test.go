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
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/holiman/uint256"
	"github.com/panoptisDev/evmsim/go/world"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Write_KeepsEffectsOfSuccessfulTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)
	store := newTestStore(t)
	address := common.Address{1}

	engine.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ Transaction, db StateDB) (Outcome, error) {
			db.AddBalance(address, uint256.NewInt(42), tracing.BalanceChangeUnspecified)
			return &Success{Output: CallOutput{}}, nil
		})

	executor := NewExecutor(engine, store)
	outcome, err := executor.Write(Transaction{Caller: address, To: &address})
	require.NoError(t, err)
	require.IsType(t, &Success{}, outcome)
	require.Equal(t, uint256.NewInt(42), store.Balance(address))
}

func TestExecutor_Write_DropsEffectsOfFailedTransactions(t *testing.T) {
	address := common.Address{1}
	tests := map[string]struct {
		outcome Outcome
		err     error
	}{
		"revert": {outcome: &Revert{Output: []byte{1, 2}}},
		"halt":   {outcome: &Halt{Reason: HaltOutOfGas}},
		"error":  {err: errors.New("engine failure")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			engine := NewMockEngine(ctrl)
			store := newTestStore(t)
			store.SetBalance(address, uint256.NewInt(10))

			engine.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ Transaction, db StateDB) (Outcome, error) {
					db.AddBalance(address, uint256.NewInt(32), tracing.BalanceChangeUnspecified)
					db.SetNonce(address, 5, tracing.NonceChangeUnspecified)
					return test.outcome, test.err
				})

			executor := NewExecutor(engine, store)
			outcome, err := executor.Write(Transaction{Caller: address, To: &address})
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				require.Nil(t, outcome)
			} else {
				require.NoError(t, err)
				require.Equal(t, test.outcome, outcome)
			}
			require.Equal(t, uint256.NewInt(10), store.Balance(address))
			require.Equal(t, uint64(0), store.Nonce(address))
		})
	}
}

func TestExecutor_Write_PanickingEngineLeavesNoEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)
	store := newTestStore(t)
	sender := common.Address{1}
	receiver := common.Address{2}

	gomock.InOrder(
		engine.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ Transaction, db StateDB) (Outcome, error) {
				db.AddBalance(receiver, uint256.NewInt(1000), tracing.BalanceChangeUnspecified)
				panic("engine crashed")
			}),
		engine.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ Transaction, db StateDB) (Outcome, error) {
				db.AddBalance(sender, uint256.NewInt(1), tracing.BalanceChangeUnspecified)
				return &Success{Output: CallOutput{}}, nil
			}),
	)

	executor := NewExecutor(engine, store)
	require.Panics(t, func() {
		_, _ = executor.Write(Transaction{Caller: sender, To: &receiver})
	})
	require.True(t, store.Balance(receiver).IsZero())

	_, err := executor.Write(Transaction{Caller: sender, To: &sender})
	require.NoError(t, err)
	require.True(t, store.Balance(receiver).IsZero())
	require.Equal(t, uint256.NewInt(1), store.Balance(sender))
}

func TestExecutor_Read_NeverModifiesTheStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)
	store := newTestStore(t)
	address := common.Address{1}

	engine.EXPECT().Transact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ Transaction, db StateDB) (Outcome, error) {
			db.AddBalance(address, uint256.NewInt(42), tracing.BalanceChangeUnspecified)
			require.Equal(t, uint256.NewInt(42), db.GetBalance(address))
			return &Success{Output: CallOutput{7}}, nil
		})

	executor := NewExecutor(engine, store)
	outcome, err := executor.Read(Transaction{Caller: address, To: &address})
	require.NoError(t, err)
	require.Equal(t, &Success{Output: CallOutput{7}}, outcome)
	require.True(t, store.Balance(address).IsZero())
}

func TestExecutor_Read_ForwardsEngineErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewMockEngine(ctrl)
	injected := errors.New("injected")
	engine.EXPECT().Transact(gomock.Any(), gomock.Any()).Return(nil, injected)

	executor := NewExecutor(engine, newTestStore(t))
	_, err := executor.Read(Transaction{})
	require.ErrorIs(t, err, injected)
}

func newTestStore(t *testing.T) *world.Store {
	t.Helper()
	store, err := world.NewStore()
	require.NoError(t, err)
	return store
}
