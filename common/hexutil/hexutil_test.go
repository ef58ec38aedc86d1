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

package hexutil

import (
	"bytes"
	"testing"
)

type marshalTest struct {
	input []byte
	want  string
}

var encodeBytesTests = []marshalTest{
	{[]byte{}, "0x"},
	{[]byte{0}, "0x00"},
	{[]byte{0, 0, 1, 2}, "0x00000102"},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeBytesTests {
		enc := Encode(test.input)
		if enc != test.want {
			t.Errorf("input %x: wrong encoding %s", test.input, enc)
		}
	}
}

var decodeBytesTests = []struct {
	input   string
	want    []byte
	wantErr error
}{
	// invalid
	{input: ``, wantErr: ErrEmptyString},
	{input: `0`, wantErr: ErrMissingPrefix},
	{input: `0x0`, wantErr: ErrOddLength},
	{input: `0x023`, wantErr: ErrOddLength},
	{input: `0xxx`, wantErr: ErrSyntax},
	{input: `0x01zz01`, wantErr: ErrSyntax},
	// valid
	{input: `0x`, want: []byte{}},
	{input: `0X`, want: []byte{}},
	{input: `0x02`, want: []byte{0x02}},
	{input: `0xffffffffff`, want: []byte{0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeBytesTests {
		dec, err := Decode(test.input)
		if test.wantErr != nil {
			if err != test.wantErr {
				t.Errorf("input %s: error %v, want %v", test.input, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %s: unexpected error %v", test.input, err)
			continue
		}
		if !bytes.Equal(test.want, dec) {
			t.Errorf("input %s: value mismatch: got %x, want %x", test.input, dec, test.want)
		}
	}
}

func TestUnmarshalFixedText(t *testing.T) {
	out := make([]byte, 2)
	if err := UnmarshalFixedText("x", []byte("0x0102"), out); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !bytes.Equal(out, []byte{1, 2}) {
		t.Fatalf("wrong output %x", out)
	}
	if err := UnmarshalFixedText("x", []byte("0x01"), out); err == nil {
		t.Fatal("length mismatch not rejected")
	}
	if err := UnmarshalFixedText("x", []byte("0102"), out); err != ErrMissingPrefix {
		t.Fatalf("missing prefix: error %v, want %v", err, ErrMissingPrefix)
	}
	if err := UnmarshalFixedText("x", []byte("0xzzzz"), out); err != ErrSyntax {
		t.Fatalf("bad syntax: error %v, want %v", err, ErrSyntax)
	}
}
