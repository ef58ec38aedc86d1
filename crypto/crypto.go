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

// Package crypto implements the hashing primitives of the randomness engine.
package crypto

import (
	"hash"

	"github.com/chainrand/go-chainrand/common"
	"golang.org/x/crypto/sha3"
)

// DigestLength sets the digest exact length in bytes.
// DigestLength 设置摘要的确切字节长度。
const DigestLength = 32

// NewSha3State creates a new SHA3-256 hash state.
func NewSha3State() hash.Hash {
	return sha3.New256()
}

// Sha3256 calculates and returns the SHA3-256 hash of the input data.
// Sha3256 计算并返回输入数据的 SHA3-256 哈希。
func Sha3256(data ...[]byte) []byte {
	d := sha3.New256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Sha3256Hash calculates and returns the SHA3-256 hash of the input data,
// converting it to an internal Hash data structure.
// Sha3256Hash 计算输入数据的 SHA3-256 哈希，并转换为内部 Hash 类型。
func Sha3256Hash(data ...[]byte) (h common.Hash) {
	d := sha3.New256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}
