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

import "github.com/chainrand/go-chainrand/common"

// TxContext supplies the per-transaction identity mixed into every digest
// derivation. It is owned by the host's transaction execution machinery.
// TxContext 提供混入每次摘要派生的交易级身份，由宿主的交易执行机制拥有。
type TxContext interface {
	// TxnHash returns the hash of the executing transaction. The value is
	// stable for the lifetime of one transaction.
	TxnHash() common.Hash

	// NextCounter returns the 32-byte transaction-local counter and advances
	// it. Each call within one transaction must return a value distinct from
	// all prior calls, and the read-increment pair must be linearizable.
	// NextCounter 返回 32 字节的交易内计数器并前进。
	// 同一交易内的每次调用必须返回与之前所有调用不同的值。
	NextCounter() [32]byte
}

// CallGuard answers whether the currently executing code path is structurally
// immune to observe-then-abort replay: it must have been reached as the direct
// transaction entry point of a restricted-visibility function, not from an
// arbitrary composable script. The determination belongs to the host's
// call-stack provenance tracking; this core treats it as an opaque oracle.
// CallGuard 判断当前执行路径是否在结构上免疫"先观察后中止"的重放攻击：
// 它必须是受限可见性函数的直接交易入口，而非任意可组合脚本。
// 判定本身属于宿主的调用栈溯源机制，本核心将其视为不透明谕示。
type CallGuard interface {
	IsSafeCall() bool
}
