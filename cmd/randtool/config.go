// Copyright 2025 The go-chainrand Authors
// This file is part of go-chainrand.
//
// go-chainrand is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-chainrand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-chainrand. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/chainrand/go-chainrand/common"
	"github.com/chainrand/go-chainrand/core/randomness"
	"github.com/chainrand/go-chainrand/log"
	"github.com/chainrand/go-chainrand/params"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
// 这些设置保证 TOML 键与 Go 结构体字段同名。
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// randtoolConfig is the TOML-loadable simulation setup: the block coordinates
// and seed served by the store, and the identity of the simulated transaction.
// randtoolConfig 是可从 TOML 加载的模拟配置：
// 存储中的区块坐标与种子，以及模拟交易的身份。
type randtoolConfig struct {
	Epoch   uint64
	Round   uint64
	Seed    common.Hash
	TxnHash common.Hash
}

func loadConfig(file string, cfg *randtoolConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadBaseConfig resolves the simulation setup from defaults, the optional
// config file and the command line flags, in ascending priority.
// loadBaseConfig 按默认值、可选配置文件、命令行标志的优先级解析模拟配置。
func loadBaseConfig(ctx *cli.Context) (randtoolConfig, error) {
	cfg := randtoolConfig{Epoch: 1, Round: 1}

	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(epochFlag.Name) {
		cfg.Epoch = ctx.Uint64(epochFlag.Name)
	}
	if ctx.IsSet(roundFlag.Name) {
		cfg.Round = ctx.Uint64(roundFlag.Name)
	}
	if ctx.IsSet(seedFlag.Name) || cfg.Seed == (common.Hash{}) {
		if err := cfg.Seed.UnmarshalText([]byte(ctx.String(seedFlag.Name))); err != nil {
			return cfg, fmt.Errorf("invalid --seed: %v", err)
		}
	}
	if ctx.IsSet(txnHashFlag.Name) || cfg.TxnHash == (common.Hash{}) {
		if err := cfg.TxnHash.UnmarshalText([]byte(ctx.String(txnHashFlag.Name))); err != nil {
			return cfg, fmt.Errorf("invalid --txhash: %v", err)
		}
	}
	return cfg, nil
}

// makeEngine rotates a fresh seed store to the configured block and returns
// an engine drawing for one simulated transaction.
// makeEngine 将全新的种子存储轮换到配置的区块，并返回为一笔模拟交易抽样的引擎。
func makeEngine(ctx *cli.Context) (*randomness.Engine, error) {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return nil, err
	}
	store := randomness.NewSeedStore()
	if err := store.Initialize(params.FrameworkAddress); err != nil {
		return nil, err
	}
	if err := store.Rotate(params.VMAddress, cfg.Epoch, cfg.Round, &cfg.Seed); err != nil {
		return nil, err
	}
	log.Info("Simulating randomness draws", "epoch", cfg.Epoch, "round", cfg.Round, "txhash", cfg.TxnHash)

	host := randomness.NewSimulatedHost(cfg.TxnHash)
	return randomness.New(store, host, host), nil
}
