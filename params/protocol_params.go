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

// Package params holds the protocol constants of the randomness engine.
package params

import "github.com/chainrand/go-chainrand/common"

// RandomnessDST is the domain-separation tag prefixed to every digest
// derivation, ensuring the randomness hashes cannot collide with hashes
// computed for unrelated purposes.
// RandomnessDST 是域分离标签，作为每次摘要派生的前缀，
// 保证随机性哈希不会与其它用途的哈希发生碰撞。
var RandomnessDST = []byte("APTOS_RANDOMNESS")

var (
	// FrameworkAddress is the designated framework account. Seed store creation
	// is only authorized for this identity, during genesis.
	// FrameworkAddress 是指定的框架账户，种子存储只能由该身份在创世时创建。
	FrameworkAddress = common.HexToAddress("0x1")

	// VMAddress is the reserved identity of the privileged execution context.
	// Seed rotation originates from block processing under this identity, never
	// from a user transaction.
	// VMAddress 是特权执行上下文的保留身份，种子轮换只能以该身份从区块处理发起。
	VMAddress = common.HexToAddress("0x0")
)
