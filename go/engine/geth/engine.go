// Copyright (c) 2025 Pano Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at panoptisDev.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package geth provides an execution engine based on the EVM implementation
// of go-ethereum. Importing the package registers the engine as "geth".
package geth

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"github.com/panoptisDev/evmsim/go/engine"
)

func init() {
	engine.RegisterEngineFactory("geth", NewEngine)
}

// Engine executes transactions using go-ethereum's state transition and
// interpreter. There is no gas market: gas is metered but never charged.
type Engine struct {
	params      engine.Parameters
	chainConfig *params.ChainConfig
}

// NewEngine creates a geth based engine operating under the given parameters.
func NewEngine(parameters engine.Parameters) engine.Engine {
	return &Engine{
		params:      parameters,
		chainConfig: parameters.ChainConfig(),
	}
}

func (e *Engine) Transact(tx engine.Transaction, db engine.StateDB) (engine.Outcome, error) {
	blockContext := newBlockContext(e.params)
	evm := vm.NewEVM(blockContext, db, e.chainConfig, vm.Config{NoBaseFee: true})

	msg := transactionToMessage(tx, db.GetNonce(tx.Caller))
	gasPool := new(core.GasPool).AddGas(e.params.GasLimit)
	result, err := core.ApplyMessage(evm, msg, gasPool)
	if err != nil {
		return nil, err
	}

	if result.Err == nil {
		var output engine.Output = engine.CallOutput(common.CopyBytes(result.ReturnData))
		if tx.IsCreate() {
			output = engine.CreateOutput{
				Address: crypto.CreateAddress(tx.Caller, msg.Nonce),
				Code:    common.CopyBytes(result.ReturnData),
			}
		}
		return &engine.Success{
			Output:  output,
			GasUsed: result.UsedGas,
			Logs:    db.Logs(),
		}, nil
	}
	if errors.Is(result.Err, vm.ErrExecutionReverted) {
		return &engine.Revert{
			Output:  common.CopyBytes(result.Revert()),
			GasUsed: result.UsedGas,
		}, nil
	}
	return &engine.Halt{
		Reason:  haltReason(result.Err),
		Detail:  result.Err.Error(),
		GasUsed: result.UsedGas,
	}, nil
}

func newBlockContext(parameters engine.Parameters) vm.BlockContext {
	canTransfer := func(stateDB vm.StateDB, address common.Address, value *uint256.Int) bool {
		return stateDB.GetBalance(address).Cmp(value) >= 0
	}

	transfer := func(stateDB vm.StateDB, sender common.Address, recipient common.Address, value *uint256.Int) {
		stateDB.SubBalance(sender, value, tracing.BalanceChangeTransfer)
		stateDB.AddBalance(recipient, value, tracing.BalanceChangeTransfer)
	}

	// There is no chain of blocks, thus hashes of previous blocks are
	// derived from their numbers.
	hashFunc := func(num uint64) common.Hash {
		return crypto.Keccak256Hash(new(big.Int).SetUint64(num).Bytes())
	}

	random := parameters.PrevRandao

	return vm.BlockContext{
		CanTransfer: canTransfer,
		Transfer:    transfer,
		GetHash:     hashFunc,
		Coinbase:    parameters.Coinbase,
		GasLimit:    parameters.GasLimit,
		BlockNumber: new(big.Int).SetUint64(parameters.BlockNumber),
		Time:        parameters.Timestamp,
		Difficulty:  big.NewInt(0),
		BaseFee:     big.NewInt(0),
		BlobBaseFee: big.NewInt(0),
		Random:      &random,
	}
}

func transactionToMessage(tx engine.Transaction, nonce uint64) *core.Message {
	return &core.Message{
		From:          tx.Caller,
		To:            tx.To,
		Nonce:         nonce,
		Value:         tx.TransferredValue().ToBig(),
		GasLimit:      tx.GasLimit,
		GasPrice:      big.NewInt(0),
		GasFeeCap:     big.NewInt(0),
		GasTipCap:     big.NewInt(0),
		Data:          tx.Data,
		BlobGasFeeCap: big.NewInt(0),
	}
}

func haltReason(err error) engine.HaltReason {
	switch {
	case errors.Is(err, vm.ErrOutOfGas),
		errors.Is(err, vm.ErrCodeStoreOutOfGas),
		errors.Is(err, vm.ErrGasUintOverflow):
		return engine.HaltOutOfGas
	case errors.Is(err, vm.ErrDepth):
		return engine.HaltCallTooDeep
	case errors.Is(err, vm.ErrContractAddressCollision):
		return engine.HaltContractCollision
	case errors.Is(err, vm.ErrMaxCodeSizeExceeded),
		errors.Is(err, vm.ErrMaxInitCodeSizeExceeded):
		return engine.HaltCodeSizeLimit
	case errors.Is(err, vm.ErrInvalidJump):
		return engine.HaltInvalidJump
	case errors.Is(err, vm.ErrWriteProtection):
		return engine.HaltStateChangeDuringStaticCall
	case errors.Is(err, vm.ErrReturnDataOutOfBounds):
		return engine.HaltReturnDataOutOfBounds
	case errors.Is(err, vm.ErrInvalidCode):
		return engine.HaltInvalidCode
	}
	if _, ok := err.(*vm.ErrStackOverflow); ok {
		return engine.HaltStackOverflow
	}
	if _, ok := err.(*vm.ErrStackUnderflow); ok {
		return engine.HaltStackUnderflow
	}
	if _, ok := err.(*vm.ErrInvalidOpCode); ok {
		return engine.HaltInvalidOpcode
	}
	return engine.HaltOther
}
