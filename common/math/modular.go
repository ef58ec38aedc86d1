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

// Package math provides overflow-safe modular arithmetic over the 256-bit
// unsigned domain.
// Package math 提供 256 位无符号域上的防溢出模运算。
package math

import "github.com/holiman/uint256"

// SafeAddMod computes (x + y) mod m without ever forming x + y in a 256-bit
// register. Both x and y must already be reduced modulo m, i.e.
// 0 <= x, y < m.
//
// Let negY = m - y. If x < negY then x + y < m and the plain sum is already
// reduced and cannot wrap. Otherwise x - negY equals x + y - m, which is the
// reduced sum, and the subtraction cannot underflow because x >= negY.
//
// SafeAddMod 在不在 256 位寄存器中构造 x + y 的前提下计算 (x + y) mod m。
// x 和 y 必须都已对 m 取模，即 0 <= x, y < m。
// 令 negY = m - y：若 x < negY，则 x + y < m，直接相加不会回绕；
// 否则 x - negY 等于 x + y - m，即已约简的和，且因 x >= negY 减法不会下溢。
func SafeAddMod(x, y, m *uint256.Int) *uint256.Int {
	negY := new(uint256.Int).Sub(m, y)
	if x.Lt(negY) {
		return new(uint256.Int).Add(x, y)
	}
	return new(uint256.Int).Sub(x, negY)
}
