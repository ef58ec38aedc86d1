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

// Package randomness implements the block-scoped on-chain pseudorandomness
// engine: one unpredictable seed per block is stretched into independent,
// uniformly distributed values for many transactions and many calls within a
// transaction. Every draw is gated by a call-safety check so that a composed
// transaction cannot observe an outcome and abort to void it.
//
// Package randomness 实现区块级链上伪随机引擎：
// 每个区块一个不可预测的种子，被扩展为多笔交易和交易内多次调用所需的
// 独立且均匀分布的值。每次抽样都经过调用安全检查，
// 使组合交易无法先观察结果再通过中止来作废它。
package randomness

import (
	"encoding/binary"

	"github.com/chainrand/go-chainrand/common"
	"github.com/chainrand/go-chainrand/common/math"
	"github.com/chainrand/go-chainrand/crypto"
	"github.com/chainrand/go-chainrand/params"
	"github.com/holiman/uint256"
)

// Engine derives randomness from the current block seed, the transaction hash
// and a transaction-local counter. It holds no entropy of its own: every
// extraction re-derives a fresh digest, so sequential calls within one
// transaction are independent draws.
// Engine 从当前区块种子、交易哈希和交易内计数器派生随机性。
// 它自身不保存熵：每次提取都重新派生新的摘要，
// 因此同一交易内的连续调用是彼此独立的抽样。
type Engine struct {
	store *SeedStore
	tx    TxContext
	guard CallGuard

	// hashFn is the digest function, replaceable in tests to supply
	// controlled digests.
	hashFn func([]byte) common.Hash
}

// New constructs an engine over the given seed store and host collaborators.
func New(store *SeedStore, tx TxContext, guard CallGuard) *Engine {
	return &Engine{
		store: store,
		tx:    tx,
		guard: guard,
		hashFn: func(input []byte) common.Hash {
			return crypto.Sha3256Hash(input)
		},
	}
}

// NextBlob derives a fresh 32-byte digest:
//
//	SHA3-256(DST ‖ seed ‖ txn_hash ‖ counter)
//
// The digest is deterministic for a fixed seed, transaction hash and counter
// value, as required for consensus replay; two calls within one transaction
// differ only because the counter advances between them.
// NextBlob 派生一个新的 32 字节摘要：SHA3-256(DST ‖ 种子 ‖ 交易哈希 ‖ 计数器)。
// 对固定的种子、交易哈希和计数器值，摘要是逐位可复现的，这是共识重放所要求的；
// 同一交易内的两次调用仅因计数器前进而不同。
func (e *Engine) NextBlob() (common.Hash, error) {
	if !e.guard.IsSafeCall() {
		return common.Hash{}, ErrUnsafeCallContext
	}
	seed, ok := e.store.Seed()
	if !ok {
		return common.Hash{}, ErrSeedNotReady
	}
	txnHash := e.tx.TxnHash()
	counter := e.tx.NextCounter()

	input := make([]byte, 0, len(params.RandomnessDST)+3*common.HashLength)
	input = append(input, params.RandomnessDST...)
	input = append(input, seed[:]...)
	input = append(input, txnHash[:]...)
	input = append(input, counter[:]...)
	return e.hashFn(input), nil
}

// U8 generates a uniformly distributed uint8.
func (e *Engine) U8() (uint8, error) {
	blob, err := e.NextBlob()
	if err != nil {
		return 0, err
	}
	return blob[common.HashLength-1], nil
}

// U16 generates a uniformly distributed uint16.
func (e *Engine) U16() (uint16, error) {
	blob, err := e.NextBlob()
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(blob[common.HashLength-2:]), nil
}

// U32 generates a uniformly distributed uint32.
func (e *Engine) U32() (uint32, error) {
	blob, err := e.NextBlob()
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(blob[common.HashLength-4:]), nil
}

// U64 generates a uniformly distributed uint64.
func (e *Engine) U64() (uint64, error) {
	blob, err := e.NextBlob()
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(blob[common.HashLength-8:]), nil
}

// U128 generates a uniformly distributed 128-bit unsigned integer.
func (e *Engine) U128() (*uint256.Int, error) {
	blob, err := e.NextBlob()
	if err != nil {
		return nil, err
	}
	return leUint256(blob[common.HashLength-16:]), nil
}

// U256 generates a uniformly distributed 256-bit unsigned integer.
func (e *Engine) U256() (*uint256.Int, error) {
	blob, err := e.NextBlob()
	if err != nil {
		return nil, err
	}
	return leUint256(blob[:]), nil
}

// Bytes generates n uniformly distributed bytes, deriving as many fresh
// digests as needed. Bytes(0) returns an empty slice without consuming a draw.
// Bytes 生成 n 个均匀分布的字节，按需派生新的摘要。
func (e *Engine) Bytes(n uint64) ([]byte, error) {
	out := make([]byte, 0, n)
	for uint64(len(out)) < n {
		blob, err := e.NextBlob()
		if err != nil {
			return nil, err
		}
		out = append(out, blob[:]...)
	}
	return out[:n], nil
}

// U8Range generates a uniform uint8 in [min, max).
func (e *Engine) U8Range(min, max uint8) (uint8, error) {
	v, err := e.rangeU64(uint64(min), uint64(max))
	return uint8(v), err
}

// U16Range generates a uniform uint16 in [min, max).
func (e *Engine) U16Range(min, max uint16) (uint16, error) {
	v, err := e.rangeU64(uint64(min), uint64(max))
	return uint16(v), err
}

// U32Range generates a uniform uint32 in [min, max).
func (e *Engine) U32Range(min, max uint32) (uint32, error) {
	v, err := e.rangeU64(uint64(min), uint64(max))
	return uint32(v), err
}

// U64Range generates a uniform uint64 in [min, max).
func (e *Engine) U64Range(min, max uint64) (uint64, error) {
	return e.rangeU64(min, max)
}

// rangeU64 samples [min, max) for all widths up to 64 bits. The draw is a full
// 256-bit integer, so the statistical bias of the modular reduction is bounded
// by range/2^256, negligible for every practical range. Full rejection
// sampling is deliberately not used.
// rangeU64 对最宽 64 位的区间 [min, max) 抽样。抽取的是完整的 256 位整数，
// 因此模约简的统计偏差不超过 range/2^256，对任何实际区间都可忽略。
// 这里有意不使用完整的拒绝采样。
func (e *Engine) rangeU64(min, max uint64) (uint64, error) {
	if min >= max {
		return 0, ErrArithmeticUnderflow
	}
	r, err := e.U256()
	if err != nil {
		return 0, err
	}
	r.Mod(r, uint256.NewInt(max-min))
	return min + r.Uint64(), nil
}

// U128Range generates a uniform 128-bit unsigned integer in [min, max).
// Both bounds must fit in 128 bits.
func (e *Engine) U128Range(min, max *uint256.Int) (*uint256.Int, error) {
	if !min.Lt(max) {
		return nil, ErrArithmeticUnderflow
	}
	r, err := e.U256()
	if err != nil {
		return nil, err
	}
	span := new(uint256.Int).Sub(max, min)
	r.Mod(r, span)
	return r.Add(r, min), nil
}

// U256Range generates a uniform 256-bit unsigned integer in [min, max).
//
// A single 256-bit draw reduced modulo the range would reintroduce a bias of
// range/2^256, which is no longer negligible at this width. Instead two
// independent draws r0, r1 are combined: conceptually the 512-bit value
// r1·2^256 + r0 is reduced modulo the range, without ever materializing a
// 512-bit intermediate. sample starts as r1 mod range, is doubled modulo the
// range 256 times (replaying the 2^256 multiplier bit by bit), and finally
// r0 mod range is added in. The invariant 0 <= sample < range holds
// throughout.
// U256Range 在 [min, max) 中生成均匀的 256 位无符号整数。
// 单次 256 位抽样取模会在该位宽重新引入 range/2^256 的偏差，因此组合两次独立抽样
// r0、r1：概念上将 512 位值 r1·2^256 + r0 对区间长度取模，但从不构造 512 位中间值。
// sample 初始为 r1 mod range，再对区间长度连续翻倍 256 次（逐位重放 2^256 乘数），
// 最后加上 r0 mod range。全程保持不变式 0 <= sample < range。
func (e *Engine) U256Range(min, max *uint256.Int) (*uint256.Int, error) {
	if !min.Lt(max) {
		return nil, ErrArithmeticUnderflow
	}
	r0, err := e.U256()
	if err != nil {
		return nil, err
	}
	r1, err := e.U256()
	if err != nil {
		return nil, err
	}
	span := new(uint256.Int).Sub(max, min)
	sample := new(uint256.Int).Mod(r1, span)
	for i := 0; i < 256; i++ {
		sample = math.SafeAddMod(sample, sample, span)
	}
	sample = math.SafeAddMod(sample, new(uint256.Int).Mod(r0, span), span)
	return sample.Add(sample, min), nil
}

// Permutation generates a uniformly random permutation of [0, 1, ..., n-1]
// with an in-place shuffle: for every tail position from n-1 down to 1 the
// element placed there is chosen uniformly from the not-yet-fixed prefix.
// n must be at least 1.
// Permutation 通过原地洗牌生成 [0, 1, ..., n-1] 的均匀随机排列：
// 对从 n-1 递减到 1 的每个尾部位置，从尚未固定的前缀中均匀选出放置的元素。
// n 必须至少为 1。
func (e *Engine) Permutation(n uint64) ([]uint64, error) {
	if n == 0 {
		return nil, ErrArithmeticUnderflow
	}
	perm := make([]uint64, n)
	for i := range perm {
		perm[i] = uint64(i)
	}
	for tail := n - 1; tail > 0; tail-- {
		pick, err := e.rangeU64(0, tail+1)
		if err != nil {
			return nil, err
		}
		perm[pick], perm[tail] = perm[tail], perm[pick]
	}
	return perm, nil
}

// leUint256 interprets b as a little-endian unsigned integer. b holds the
// last bytes of a digest in their original order, so the final digest byte
// becomes the most significant byte of the result.
func leUint256(b []byte) *uint256.Int {
	var buf [32]byte
	copy(buf[:], b)
	z := new(uint256.Int)
	z[0] = binary.LittleEndian.Uint64(buf[0:8])
	z[1] = binary.LittleEndian.Uint64(buf[8:16])
	z[2] = binary.LittleEndian.Uint64(buf[16:24])
	z[3] = binary.LittleEndian.Uint64(buf[24:32])
	return z
}
