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
	"sync"

	"github.com/chainrand/go-chainrand/common"
	"github.com/chainrand/go-chainrand/log"
	"github.com/chainrand/go-chainrand/params"
)

// SeedStore holds the per-block randomness seed together with the block
// coordinates it was agreed on. It has a two-phase lifecycle: created exactly
// once at genesis by the framework identity, then overwritten once per block
// by the privileged execution identity. Rotation replaces all three fields as
// one atomic step from the perspective of any reader.
// SeedStore 保存每个区块的随机性种子及其协定时的区块坐标。
// 它有两阶段的生命周期：创世时由框架身份创建一次，之后由特权执行身份每区块覆写一次。
// 对任何读取者而言，轮换以单个原子步骤替换全部三个字段。
type SeedStore struct {
	mu      sync.RWMutex
	created bool
	epoch   uint64
	round   uint64
	seed    *common.Hash // nil until the first rotation supplies one
}

// NewSeedStore returns an empty, uncreated seed store. Tests and hosts
// construct isolated instances rather than sharing a hidden global.
func NewSeedStore() *SeedStore {
	return &SeedStore{}
}

// Initialize creates the seed record. Only the framework identity may call it,
// and only once; the record starts at epoch 0, round 0 with no seed.
// Initialize 创建种子记录。只有框架身份可以调用，且只能调用一次；
// 记录从 epoch 0、round 0 开始且没有种子。
func (s *SeedStore) Initialize(caller common.Address) error {
	if caller != params.FrameworkAddress {
		return ErrUnauthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.created {
		return ErrAlreadyInitialized
	}
	s.created = true
	s.epoch, s.round, s.seed = 0, 0, nil
	log.Info("Initialized randomness seed store")
	return nil
}

// Rotate overwrites the seed record with the entropy agreed on for a new
// block. Only the privileged execution identity may call it; the host
// serializes rotations at block boundaries. When the record was never created
// the call is a silent no-op: the host tolerates chains that never enabled
// randomness, and the record is not re-created here. A nil seed is written
// as instructed, taking the store back to the not-ready state.
// Rotate 用新区块协定的熵覆写种子记录。只有特权执行身份可以调用；
// 宿主在区块边界串行化轮换。若记录从未创建，则调用为静默空操作。
// 按指示写入 nil 种子会使存储回到未就绪状态。
func (s *SeedStore) Rotate(caller common.Address, epoch, round uint64, seed *common.Hash) error {
	if caller != params.VMAddress {
		return ErrUnauthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.created {
		return nil
	}
	s.epoch, s.round = epoch, round
	if seed == nil {
		s.seed = nil
		log.Warn("Rotated randomness seed to absent", "epoch", epoch, "round", round)
		return nil
	}
	cp := *seed
	s.seed = &cp
	log.Debug("Rotated randomness seed", "epoch", epoch, "round", round, "seed", cp)
	return nil
}

// Seed returns the current block seed, and whether one is present.
func (s *SeedStore) Seed() (common.Hash, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.seed == nil {
		return common.Hash{}, false
	}
	return *s.seed, true
}

// Epoch returns the epoch of the most recent rotation.
func (s *SeedStore) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Round returns the round of the most recent rotation.
func (s *SeedStore) Round() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.round
}

// Initialized reports whether the seed record has been created.
func (s *SeedStore) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.created
}
