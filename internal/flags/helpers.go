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

// Package flags holds helpers for command line flag handling.
package flags

import (
	"github.com/chainrand/go-chainrand/version"
	"github.com/urfave/cli/v2"
)

// Flag categories used to group the help output.
// 用于给帮助输出分组的标志类别。
const (
	RandomnessCategory = "RANDOMNESS"
	LoggingCategory    = "LOGGING AND DEBUGGING"
	MiscCategory       = "MISC"
)

func init() {
	cli.HelpFlag.(*cli.BoolFlag).Category = MiscCategory
	cli.VersionFlag.(*cli.BoolFlag).Category = MiscCategory
}

// NewApp creates an app with sane defaults.
// NewApp 创建一个带合理默认值的应用。
func NewApp(usage string) *cli.App {
	app := cli.NewApp()
	app.EnableBashCompletion = true
	app.Version = version.WithMeta
	app.Usage = usage
	app.Copyright = "Copyright 2025 The go-chainrand Authors"
	return app
}

// Merge merges the given flag slices.
func Merge(groups ...[]cli.Flag) []cli.Flag {
	var ret []cli.Flag
	for _, group := range groups {
		ret = append(ret, group...)
	}
	return ret
}
