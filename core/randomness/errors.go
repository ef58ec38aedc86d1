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

import "errors"

var (
	// ErrUnauthorized is returned when a privileged seed operation is attempted
	// by an identity other than the designated one.
	// 当特权种子操作由非指定身份发起时返回 ErrUnauthorized。
	ErrUnauthorized = errors.New("unauthorized caller")

	// ErrAlreadyInitialized is returned when the seed store is initialized a
	// second time. This signals a deployment sequencing error.
	// 当种子存储被第二次初始化时返回 ErrAlreadyInitialized，表示部署顺序错误。
	ErrAlreadyInitialized = errors.New("seed store already initialized")

	// ErrSeedNotReady is returned when entropy is requested before the first
	// block rotation has supplied a seed.
	// 当在首次区块轮换提供种子之前请求熵时返回 ErrSeedNotReady。
	ErrSeedNotReady = errors.New("block randomness seed not ready")

	// ErrUnsafeCallContext is returned when randomness is consumed from a
	// composable, abortable call context. A transaction that could observe a
	// draw and then abort would be able to discard unfavorable outcomes, so
	// such contexts are rejected outright.
	// 当从可组合、可中止的调用上下文中消费随机性时返回 ErrUnsafeCallContext。
	// 能够观察结果后中止的交易可以丢弃不利的抽样，因此此类上下文被直接拒绝。
	ErrUnsafeCallContext = errors.New("randomness consumed from unsafe call context")

	// ErrArithmeticUnderflow is returned for an empty or inverted sampling
	// interval, or a zero-length permutation.
	// 当抽样区间为空或颠倒，或排列长度为零时返回 ErrArithmeticUnderflow。
	ErrArithmeticUnderflow = errors.New("arithmetic underflow")
)
