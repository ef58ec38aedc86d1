// Copyright 2025 The go-chainrand Authors
// This file is part of the go-chainrand library.
//
// The go-chainrand library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainrand library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainrand library. If not, see <http://www.gnu.org/licenses/>.

package randomness

import (
	"encoding/binary"

	"github.com/chainrand/go-chainrand/common"
)

// SimulatedHost is an in-memory TxContext and CallGuard for tests and
// tooling. It serves a fixed transaction hash, a strictly increasing
// little-endian counter starting at zero, and a settable call-safety verdict.
// SimulatedHost 是用于测试和工具的内存版 TxContext 与 CallGuard。
// 它提供固定的交易哈希、从零开始严格递增的小端计数器，以及可设置的调用安全判定。
type SimulatedHost struct {
	txnHash  common.Hash
	counter  uint64
	unsafeFn bool
}

// NewSimulatedHost returns a host for a simulated transaction with the given
// hash. Calls are considered safe until SetSafeCall(false).
func NewSimulatedHost(txnHash common.Hash) *SimulatedHost {
	return &SimulatedHost{txnHash: txnHash}
}

// TxnHash implements TxContext.
func (h *SimulatedHost) TxnHash() common.Hash { return h.txnHash }

// NextCounter implements TxContext. The counter value n is encoded as the
// 32-byte little-endian representation of n.
func (h *SimulatedHost) NextCounter() [32]byte {
	var out [32]byte
	binary.LittleEndian.PutUint64(out[:8], h.counter)
	h.counter++
	return out
}

// IsSafeCall implements CallGuard.
func (h *SimulatedHost) IsSafeCall() bool { return !h.unsafeFn }

// SetSafeCall sets the call-safety verdict served to the engine.
func (h *SimulatedHost) SetSafeCall(safe bool) { h.unsafeFn = !safe }

// BeginTx starts a new simulated transaction: the transaction hash is
// replaced and the per-transaction counter resets to zero.
// BeginTx 开始一笔新的模拟交易：替换交易哈希并将交易内计数器重置为零。
func (h *SimulatedHost) BeginTx(txnHash common.Hash) {
	h.txnHash = txnHash
	h.counter = 0
}
