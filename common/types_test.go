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

package common

import (
	"strings"
	"testing"
)

func TestHexToAddress(t *testing.T) {
	tests := []struct {
		input    string
		wantLast byte
	}{
		{"0x1", 0x01},
		{"0x0", 0x00},
		{"0x0000000000000000000000000000000000000000000000000000000000000001", 0x01},
		{"0xff", 0xff},
	}
	for _, tt := range tests {
		a := HexToAddress(tt.input)
		if a[AddressLength-1] != tt.wantLast {
			t.Errorf("HexToAddress(%q) last byte = %#x, want %#x", tt.input, a[AddressLength-1], tt.wantLast)
		}
		for _, b := range a[:AddressLength-1] {
			if b != 0 {
				t.Errorf("HexToAddress(%q) has non-zero padding byte", tt.input)
			}
		}
	}
}

func TestHashTextRoundTrip(t *testing.T) {
	h := HexToHash("0xdeadbeef")
	text, err := h.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var h2 Hash
	if err := h2.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if h != h2 {
		t.Errorf("round trip mismatch: %v != %v", h, h2)
	}
}

func TestHashUnmarshalTextErrors(t *testing.T) {
	tests := []string{
		"deadbeef",   // missing prefix
		"0xdeadbeef", // wrong length
		"0x" + strings.Repeat("zz", 32), // bad syntax
	}
	for _, input := range tests {
		var h Hash
		if err := h.UnmarshalText([]byte(input)); err == nil {
			t.Errorf("UnmarshalText(%q): expected error", input)
		}
	}
}

func TestAddressSetBytesCropping(t *testing.T) {
	long := make([]byte, AddressLength+4)
	for i := range long {
		long[i] = byte(i)
	}
	a := BytesToAddress(long)
	// Cropped from the left: the last AddressLength bytes survive.
	for i := 0; i < AddressLength; i++ {
		if a[i] != long[i+4] {
			t.Fatalf("byte %d = %#x, want %#x", i, a[i], long[i+4])
		}
	}
}
