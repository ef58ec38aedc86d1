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

package version

import "fmt"

const (
	Major = 0          // Major version component of the current release 当前发布版本的主要版本组成部分
	Minor = 1          // Minor version component of the current release 当前发布版本的次要版本组成部分
	Patch = 0          // Patch version component of the current release 当前发布版本的补丁版本组成部分
	Meta  = "unstable" // Version metadata to append to the version string 附加到版本字符串的版本元数据
)

// Semantic holds the textual version string of the release.
var Semantic = fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

// WithMeta holds the textual version string including the metadata.
var WithMeta = func() string {
	v := Semantic
	if Meta != "" {
		v += "-" + Meta
	}
	return v
}()
