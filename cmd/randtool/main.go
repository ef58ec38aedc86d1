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

// randtool is a command-line harness for the block randomness engine. It
// stands in for the host chain: it rotates a seed as the privileged execution
// identity, runs a simulated transaction and prints the requested draws.
// randtool 是区块随机引擎的命令行工具。它代替宿主链：
// 以特权执行身份轮换种子，运行一笔模拟交易并打印所请求的抽样。
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chainrand/go-chainrand/common/hexutil"
	"github.com/chainrand/go-chainrand/internal/flags"
	"github.com/chainrand/go-chainrand/log"
	"github.com/holiman/uint256"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
	seedFlag = &cli.StringFlag{
		Name:     "seed",
		Usage:    "Block seed as 32 hex-encoded bytes",
		Value:    "0x0000000000000000000000000000000000000000000000000000000000000000",
		Category: flags.RandomnessCategory,
	}
	epochFlag = &cli.Uint64Flag{
		Name:     "epoch",
		Usage:    "Epoch the seed was agreed on",
		Value:    1,
		Category: flags.RandomnessCategory,
	}
	roundFlag = &cli.Uint64Flag{
		Name:     "round",
		Usage:    "Round the seed was agreed on",
		Value:    1,
		Category: flags.RandomnessCategory,
	}
	txnHashFlag = &cli.StringFlag{
		Name:     "txhash",
		Usage:    "Hash of the simulated transaction as 32 hex-encoded bytes",
		Value:    "0x0000000000000000000000000000000000000000000000000000000000000000",
		Category: flags.RandomnessCategory,
	}
	verbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value:    3,
		Category: flags.LoggingCategory,
	}

	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "Integer width in bits (8, 16, 32, 64, 128 or 256)",
		Value: 64,
	}
	countFlag = &cli.IntFlag{
		Name:  "count",
		Usage: "Number of draws",
		Value: 1,
	}
	minFlag = &cli.StringFlag{
		Name:  "min",
		Usage: "Inclusive lower bound (decimal or 0x hex)",
		Value: "0",
	}
	maxFlag = &cli.StringFlag{
		Name:  "max",
		Usage: "Exclusive upper bound (decimal or 0x hex)",
		Value: "100",
	}
	lengthFlag = &cli.Uint64Flag{
		Name:  "n",
		Usage: "Sequence length",
		Value: 10,
	}
)

var app = flags.NewApp("the block randomness simulation tool")

func init() {
	app.Flags = flags.Merge(
		[]cli.Flag{configFileFlag, seedFlag, epochFlag, roundFlag, txnHashFlag},
		[]cli.Flag{verbosityFlag},
	)
	app.Commands = []*cli.Command{
		integerCommand,
		rangeCommand,
		permutationCommand,
		bytesCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		usecolor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		handler := log.NewTerminalHandlerWithLevel(os.Stderr, log.FromVerbosity(ctx.Int(verbosityFlag.Name)), usecolor)
		log.SetDefault(log.NewLogger(handler))
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var integerCommand = &cli.Command{
	Name:      "integer",
	Usage:     "Draw uniformly distributed fixed-width integers",
	ArgsUsage: " ",
	Flags:     []cli.Flag{widthFlag, countFlag},
	Action:    drawIntegers,
}

var rangeCommand = &cli.Command{
	Name:      "range",
	Usage:     "Draw uniform integers from the half-open interval [min, max)",
	ArgsUsage: " ",
	Flags:     []cli.Flag{widthFlag, countFlag, minFlag, maxFlag},
	Action:    drawRanges,
}

var permutationCommand = &cli.Command{
	Name:      "permutation",
	Usage:     "Draw a uniformly random permutation of {0, ..., n-1}",
	ArgsUsage: " ",
	Flags:     []cli.Flag{lengthFlag},
	Action:    drawPermutation,
}

var bytesCommand = &cli.Command{
	Name:      "bytes",
	Usage:     "Draw n uniformly distributed bytes",
	ArgsUsage: " ",
	Flags:     []cli.Flag{lengthFlag},
	Action:    drawBytes,
}

func drawIntegers(ctx *cli.Context) error {
	engine, err := makeEngine(ctx)
	if err != nil {
		return err
	}
	width := ctx.Int(widthFlag.Name)
	for i := 0; i < ctx.Int(countFlag.Name); i++ {
		var out string
		switch width {
		case 8:
			v, err := engine.U8()
			if err != nil {
				return err
			}
			out = fmt.Sprintf("%d", v)
		case 16:
			v, err := engine.U16()
			if err != nil {
				return err
			}
			out = fmt.Sprintf("%d", v)
		case 32:
			v, err := engine.U32()
			if err != nil {
				return err
			}
			out = fmt.Sprintf("%d", v)
		case 64:
			v, err := engine.U64()
			if err != nil {
				return err
			}
			out = fmt.Sprintf("%d", v)
		case 128:
			v, err := engine.U128()
			if err != nil {
				return err
			}
			out = v.Dec()
		case 256:
			v, err := engine.U256()
			if err != nil {
				return err
			}
			out = v.Dec()
		default:
			return fmt.Errorf("unsupported width %d", width)
		}
		fmt.Println(out)
	}
	return nil
}

func drawRanges(ctx *cli.Context) error {
	engine, err := makeEngine(ctx)
	if err != nil {
		return err
	}
	min, err := parseBound(ctx.String(minFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid --min: %v", err)
	}
	max, err := parseBound(ctx.String(maxFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid --max: %v", err)
	}
	width := ctx.Int(widthFlag.Name)
	for i := 0; i < ctx.Int(countFlag.Name); i++ {
		var out string
		switch width {
		case 8, 16, 32, 64:
			if !min.IsUint64() || !max.IsUint64() {
				return fmt.Errorf("bounds exceed %d bits", width)
			}
			v, err := engine.U64Range(min.Uint64(), max.Uint64())
			if err != nil {
				return err
			}
			out = fmt.Sprintf("%d", v)
		case 128:
			v, err := engine.U128Range(min, max)
			if err != nil {
				return err
			}
			out = v.Dec()
		case 256:
			v, err := engine.U256Range(min, max)
			if err != nil {
				return err
			}
			out = v.Dec()
		default:
			return fmt.Errorf("unsupported width %d", width)
		}
		fmt.Println(out)
	}
	return nil
}

func drawPermutation(ctx *cli.Context) error {
	engine, err := makeEngine(ctx)
	if err != nil {
		return err
	}
	perm, err := engine.Permutation(ctx.Uint64(lengthFlag.Name))
	if err != nil {
		return err
	}
	parts := make([]string, len(perm))
	for i, v := range perm {
		parts[i] = fmt.Sprintf("%d", v)
	}
	fmt.Println(strings.Join(parts, " "))
	return nil
}

func drawBytes(ctx *cli.Context) error {
	engine, err := makeEngine(ctx)
	if err != nil {
		return err
	}
	b, err := engine.Bytes(ctx.Uint64(lengthFlag.Name))
	if err != nil {
		return err
	}
	fmt.Println(hexutil.Encode(b))
	return nil
}

// parseBound parses a range bound given either as decimal or as 0x hex.
func parseBound(s string) (*uint256.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return uint256.FromHex(s)
	}
	return uint256.FromDecimal(s)
}
