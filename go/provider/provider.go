// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package provider offers an in-process environment for executing
// transactions on an ephemeral, in-memory account state.
package provider

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/panoptisDev/evmsim/go/engine"
	_ "github.com/panoptisDev/evmsim/go/engine/geth"
	"github.com/panoptisDev/evmsim/go/world"
)

// Provider is the shared entry point to a single execution context. All
// operations, including read-only ones, are mutually exclusive. A *Provider
// may be shared freely between goroutines.
type Provider struct {
	mu       sync.Mutex
	store    *world.Store
	executor *engine.Executor
	gasLimit uint64
}

// Result summarizes a successful call or send.
type Result struct {
	Output  []byte
	GasUsed uint64
	Logs    []*types.Log
}

// New creates a provider with an empty state running the engine named in
// the configuration.
func New(config Config) (*Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	instance, err := engine.NewEngine(config.Engine, config.Block)
	if err != nil {
		return nil, err
	}
	return NewWithEngine(instance, config.Block.TxGasLimit)
}

// NewWithEngine creates a provider with an empty state running the given
// engine. Transactions without a gas limit are granted gasLimit.
func NewWithEngine(instance engine.Engine, gasLimit uint64) (*Provider, error) {
	store, err := world.NewStore()
	if err != nil {
		return nil, err
	}
	if gasLimit == 0 {
		gasLimit = engine.DefaultGasLimit
	}
	return &Provider{
		store:    store,
		executor: engine.NewExecutor(instance, store),
		gasLimit: gasLimit,
	}, nil
}

// Deploy executes a contract creation and commits its effects. It returns
// the address of the new contract.
func (p *Provider) Deploy(tx engine.Transaction) (common.Address, uint64, error) {
	if !tx.IsCreate() {
		return common.Address{}, 0, fmt.Errorf("%w: %w, expected a contract creation", ErrUnexpectedOutput, engine.ErrWrongMode)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	outcome, err := p.executor.Write(p.withDefaults(tx))
	if err != nil {
		return common.Address{}, 0, err
	}
	success, ok := outcome.(*engine.Success)
	if !ok {
		return common.Address{}, 0, failure(outcome)
	}
	created, ok := success.Output.(engine.CreateOutput)
	if !ok {
		return common.Address{}, 0, fmt.Errorf("%w: expected created contract, got %T", ErrUnexpectedOutput, success.Output)
	}
	log.Debug("Contract deployed", "deployer", tx.Caller, "address", created.Address, "gas", success.GasUsed)
	return created.Address, success.GasUsed, nil
}

// Send executes a call and commits its effects if it succeeds.
func (p *Provider) Send(tx engine.Transaction) (Result, error) {
	if tx.IsCreate() {
		return Result{}, fmt.Errorf("%w: %w, expected a call", ErrUnexpectedOutput, engine.ErrWrongMode)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	outcome, err := p.executor.Write(p.withDefaults(tx))
	if err != nil {
		return Result{}, err
	}
	return callResult(outcome)
}

// Call executes a call without keeping any of its effects.
func (p *Provider) Call(tx engine.Transaction) (Result, error) {
	if tx.IsCreate() {
		return Result{}, fmt.Errorf("%w: %w, expected a call", ErrUnexpectedOutput, engine.ErrWrongMode)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	outcome, err := p.executor.Read(p.withDefaults(tx))
	if err != nil {
		return Result{}, err
	}
	return callResult(outcome)
}

// Transfer moves value from one account to another by sending a call without
// input data.
func (p *Provider) Transfer(from, to common.Address, value *uint256.Int) (Result, error) {
	return p.Send(engine.Transaction{
		Caller: from,
		To:     &to,
		Value:  value,
	})
}

// BalanceOf returns the balance of the given account, zero if unknown.
func (p *Provider) BalanceOf(address common.Address) *uint256.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Balance(address)
}

// Nonce returns the nonce of the given account, zero if unknown.
func (p *Provider) Nonce(address common.Address) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Nonce(address)
}

// CreateAccount creates the given account or overwrites its balance. A nil
// value sets the balance to zero.
func (p *Provider) CreateAccount(address common.Address, value *uint256.Int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store.SetBalance(address, value)
}

// ViewAccount returns the full record of an account, including its storage.
func (p *Provider) ViewAccount(address common.Address) (world.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.LoadFull(address)
}

func (p *Provider) withDefaults(tx engine.Transaction) engine.Transaction {
	if tx.GasLimit == 0 {
		tx.GasLimit = p.gasLimit
	}
	return tx
}

func callResult(outcome engine.Outcome) (Result, error) {
	success, ok := outcome.(*engine.Success)
	if !ok {
		return Result{}, failure(outcome)
	}
	output, ok := success.Output.(engine.CallOutput)
	if !ok {
		return Result{}, fmt.Errorf("%w: expected call output, got %T", ErrUnexpectedOutput, success.Output)
	}
	return Result{
		Output:  output,
		GasUsed: success.GasUsed,
		Logs:    success.Logs,
	}, nil
}
