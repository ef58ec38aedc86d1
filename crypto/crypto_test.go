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

package crypto

import (
	"bytes"
	"testing"

	"github.com/chainrand/go-chainrand/common"
)

// Published SHA3-256 test vectors.
var sha3Vectors = []struct {
	input string
	want  string
}{
	{"", "0xa7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	{"abc", "0x3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
}

func TestSha3256(t *testing.T) {
	for _, tt := range sha3Vectors {
		got := Sha3256([]byte(tt.input))
		if want := common.FromHex(tt.want); !bytes.Equal(got, want) {
			t.Errorf("Sha3256(%q) = %x, want %x", tt.input, got, want)
		}
	}
}

func TestSha3256Hash(t *testing.T) {
	for _, tt := range sha3Vectors {
		got := Sha3256Hash([]byte(tt.input))
		if want := common.HexToHash(tt.want); got != want {
			t.Errorf("Sha3256Hash(%q) = %v, want %v", tt.input, got, want)
		}
	}
}

func TestSha3256Concatenation(t *testing.T) {
	// Hashing split inputs must equal hashing the concatenation.
	joined := Sha3256([]byte("APTOS"), []byte("_"), []byte("RANDOMNESS"))
	whole := Sha3256([]byte("APTOS_RANDOMNESS"))
	if !bytes.Equal(joined, whole) {
		t.Errorf("split input hash %x != concatenated input hash %x", joined, whole)
	}
}
