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
	"encoding/binary"
	"errors"
	"math/big"
	"testing"

	"github.com/chainrand/go-chainrand/common"
	"github.com/chainrand/go-chainrand/crypto"
	"github.com/chainrand/go-chainrand/params"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds an engine over an initialized store rotated to the
// given seed, serving transactions with the given hash.
func newTestEngine(t *testing.T, seed, txnHash common.Hash) (*Engine, *SimulatedHost) {
	t.Helper()
	store := NewSeedStore()
	if err := store.Initialize(params.FrameworkAddress); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if err := store.Rotate(params.VMAddress, 1, 1, &seed); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	host := NewSimulatedHost(txnHash)
	return New(store, host, host), host
}

// stubDigests replaces the engine's hash function with one returning the
// given digests in order, cycling at the end.
func stubDigests(e *Engine, digests ...common.Hash) {
	i := 0
	e.hashFn = func([]byte) common.Hash {
		d := digests[i%len(digests)]
		i++
		return d
	}
}

// digestLE encodes v as a 32-byte little-endian digest, the inverse of the
// extractor's full-width decode.
func digestLE(v *uint256.Int) (d common.Hash) {
	binary.LittleEndian.PutUint64(d[0:8], v[0])
	binary.LittleEndian.PutUint64(d[8:16], v[1])
	binary.LittleEndian.PutUint64(d[16:24], v[2])
	binary.LittleEndian.PutUint64(d[24:32], v[3])
	return d
}

func TestNextBlobKnownAnswer(t *testing.T) {
	e, _ := newTestEngine(t, common.Hash{}, common.Hash{})

	// With a zero seed, zero transaction hash and counter value 0, the digest
	// is SHA3-256 of the domain tag followed by 96 zero bytes.
	input := make([]byte, 0, 112)
	input = append(input, params.RandomnessDST...)
	input = append(input, make([]byte, 96)...)
	want := crypto.Sha3256Hash(input)

	got, err := e.NextBlob()
	if err != nil {
		t.Fatalf("NextBlob: %v", err)
	}
	if got != want {
		t.Fatalf("NextBlob = %v, want %v", got, want)
	}

	// The second call uses counter value 1 and must hash differently in
	// (nearly) every byte.
	got2, err := e.NextBlob()
	if err != nil {
		t.Fatalf("NextBlob: %v", err)
	}
	if got2 == got {
		t.Fatal("consecutive blobs identical despite counter advance")
	}
	differing := 0
	for i := range got {
		if got[i] != got2[i] {
			differing++
		}
	}
	if differing < 16 {
		t.Fatalf("only %d of 32 bytes changed with the counter", differing)
	}
}

func TestNextBlobDeterminism(t *testing.T) {
	seed := common.HexToHash("0xaaaa")
	txn := common.HexToHash("0xbbbb")

	e1, _ := newTestEngine(t, seed, txn)
	e2, _ := newTestEngine(t, seed, txn)
	for i := 0; i < 5; i++ {
		b1, err1 := e1.NextBlob()
		b2, err2 := e2.NextBlob()
		if err1 != nil || err2 != nil {
			t.Fatalf("NextBlob: %v, %v", err1, err2)
		}
		if b1 != b2 {
			t.Fatalf("draw %d diverged: %v != %v", i, b1, b2)
		}
	}
}

func TestNextBlobCounterIndependence(t *testing.T) {
	e, _ := newTestEngine(t, common.Hash{}, common.Hash{})
	seen := make(map[common.Hash]bool)
	for i := 0; i < 32; i++ {
		blob, err := e.NextBlob()
		if err != nil {
			t.Fatalf("NextBlob: %v", err)
		}
		if seen[blob] {
			t.Fatalf("draw %d repeated an earlier digest", i)
		}
		seen[blob] = true
	}
}

func TestExtractorsKnownDigest(t *testing.T) {
	// Digest bytes 0x00, 0x01, ..., 0x1f. The extractors read the last k
	// bytes little-endian, so the final digest byte is most significant.
	var digest common.Hash
	for i := range digest {
		digest[i] = byte(i)
	}
	e, _ := newTestEngine(t, common.Hash{}, common.Hash{})
	stubDigests(e, digest)

	u8, err := e.U8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x1f), u8)

	u16, err := e.U16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1f1e), u16)

	u32, err := e.U32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x1f1e1d1c), u32)

	u64v, err := e.U64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x1f1e1d1c1b1a1918), u64v)

	// Wider widths: compare against a big-endian reversal of the same bytes.
	reversed := func(b []byte) *uint256.Int {
		rev := make([]byte, len(b))
		for i := range b {
			rev[len(b)-1-i] = b[i]
		}
		return new(uint256.Int).SetBytes(rev)
	}
	u128, err := e.U128()
	require.NoError(t, err)
	require.True(t, u128.Eq(reversed(digest[16:])), "u128 = %v", u128)

	u256, err := e.U256()
	require.NoError(t, err)
	require.True(t, u256.Eq(reversed(digest[:])), "u256 = %v", u256)
}

func TestU8SpecExample(t *testing.T) {
	// A digest whose last byte is 0x07 extracts to 7.
	var digest common.Hash
	digest[31] = 0x07
	e, _ := newTestEngine(t, common.Hash{}, common.Hash{})
	stubDigests(e, digest)

	v, err := e.U8()
	require.NoError(t, err)
	require.Equal(t, uint8(7), v)
}

func TestRangeSpecExample(t *testing.T) {
	// A 256-bit draw of 25 sampled into [10, 20) yields 10 + (25 mod 10) = 15.
	e, _ := newTestEngine(t, common.Hash{}, common.Hash{})
	stubDigests(e, digestLE(uint256.NewInt(25)))

	v, err := e.U64Range(10, 20)
	require.NoError(t, err)
	require.Equal(t, uint64(15), v)
}

func TestRangeContainment(t *testing.T) {
	e, _ := newTestEngine(t, common.HexToHash("0x5eed"), common.HexToHash("0x7a"))
	for i := 0; i < 50; i++ {
		v8, err := e.U8Range(10, 20)
		require.NoError(t, err)
		require.True(t, v8 >= 10 && v8 < 20, "u8 sample %d out of range", v8)

		v16, err := e.U16Range(1000, 1001)
		require.NoError(t, err)
		require.Equal(t, uint16(1000), v16)

		v32, err := e.U32Range(1<<30, 1<<31)
		require.NoError(t, err)
		require.True(t, v32 >= 1<<30 && v32 < 1<<31, "u32 sample %d out of range", v32)

		v64, err := e.U64Range(1<<62, 1<<63)
		require.NoError(t, err)
		require.True(t, v64 >= 1<<62 && v64 < 1<<63, "u64 sample %d out of range", v64)
	}

	min := uint256.MustFromHex("0x100000000000000000000000000000000") // 2^128
	max := uint256.MustFromHex("0x200000000000000000000000000000000")
	for i := 0; i < 20; i++ {
		v, err := e.U128Range(uint256.NewInt(5), uint256.NewInt(6))
		require.NoError(t, err)
		require.True(t, v.Eq(uint256.NewInt(5)))

		w, err := e.U256Range(min, max)
		require.NoError(t, err)
		require.True(t, !w.Lt(min) && w.Lt(max), "u256 sample %v out of range", w)
	}
}

func TestRangeUnderflow(t *testing.T) {
	e, _ := newTestEngine(t, common.Hash{}, common.Hash{})
	five := uint256.NewInt(5)

	for name, err := range map[string]error{
		"u8 empty":     second(e.U8Range(10, 10)),
		"u8 inverted":  second(e.U8Range(20, 10)),
		"u16 empty":    second(e.U16Range(0, 0)),
		"u32 inverted": second(e.U32Range(2, 1)),
		"u64 empty":    second(e.U64Range(1<<40, 1<<40)),
		"u128 empty":   second(e.U128Range(five, five)),
		"u256 inverted": second(e.U256Range(
			uint256.NewInt(6), five)),
		"permutation zero": func() error { _, err := e.Permutation(0); return err }(),
	} {
		if !errors.Is(err, ErrArithmeticUnderflow) {
			t.Errorf("%s: err = %v, want ErrArithmeticUnderflow", name, err)
		}
	}
}

func second[T any](_ T, err error) error { return err }

func TestU256RangeMatchesWideReference(t *testing.T) {
	two256 := new(big.Int).Lsh(big.NewInt(1), 256)

	cases := []struct {
		name     string
		r0, r1   *uint256.Int
		min, max *uint256.Int
	}{
		{"small span", uint256.NewInt(25), uint256.NewInt(3), uint256.NewInt(10), uint256.NewInt(20)},
		{"span one", uint256.NewInt(999), uint256.NewInt(999), uint256.NewInt(7), uint256.NewInt(8)},
		{"max draws", new(uint256.Int).SetAllOne(), new(uint256.Int).SetAllOne(), uint256.NewInt(0), uint256.MustFromHex("0xffffffffffffffffffffffffffffffffffffffffffffffff")},
		{"huge span", uint256.MustFromHex("0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"),
			uint256.MustFromHex("0xcafebabecafebabecafebabecafebabecafebabecafebabecafebabecafebabe"),
			uint256.NewInt(1), new(uint256.Int).SetAllOne()},
	}
	for _, tt := range cases {
		e, _ := newTestEngine(t, common.Hash{}, common.Hash{})
		stubDigests(e, digestLE(tt.r0), digestLE(tt.r1))

		got, err := e.U256Range(tt.min, tt.max)
		require.NoError(t, err, tt.name)

		// Reference: reduce the honest 512-bit value in big.Int arithmetic.
		span := new(big.Int).Sub(tt.max.ToBig(), tt.min.ToBig())
		wide := new(big.Int).Mul(tt.r1.ToBig(), two256)
		wide.Add(wide, tt.r0.ToBig())
		want := new(big.Int).Add(tt.min.ToBig(), wide.Mod(wide, span))

		require.Zero(t, got.ToBig().Cmp(want), "%s: got %v, want %v", tt.name, got, want)
	}
}

func TestPermutation(t *testing.T) {
	e, _ := newTestEngine(t, common.HexToHash("0x5eed"), common.Hash{})
	for _, n := range []uint64{1, 2, 3, 10, 64} {
		perm, err := e.Permutation(n)
		require.NoError(t, err)
		require.Len(t, perm, int(n))

		seen := make(map[uint64]bool, n)
		for _, v := range perm {
			require.True(t, v < n, "n=%d: value %d out of domain", n, v)
			require.False(t, seen[v], "n=%d: value %d repeated", n, v)
			seen[v] = true
		}
	}
}

func TestPermutationDeterminism(t *testing.T) {
	seed := common.HexToHash("0x5eed")
	e1, _ := newTestEngine(t, seed, common.Hash{})
	e2, _ := newTestEngine(t, seed, common.Hash{})

	p1, err := e1.Permutation(32)
	require.NoError(t, err)
	p2, err := e2.Permutation(32)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestBytes(t *testing.T) {
	e, _ := newTestEngine(t, common.Hash{}, common.Hash{})
	for _, n := range []uint64{0, 1, 31, 32, 33, 100} {
		b, err := e.Bytes(n)
		require.NoError(t, err)
		require.Len(t, b, int(n))
	}
	b1, err := e.Bytes(32)
	require.NoError(t, err)
	b2, err := e.Bytes(32)
	require.NoError(t, err)
	require.NotEqual(t, b1, b2, "consecutive byte draws identical")
}

func TestUnsafeCallContext(t *testing.T) {
	e, host := newTestEngine(t, common.Hash{}, common.Hash{})
	host.SetSafeCall(false)

	for name, err := range map[string]error{
		"next blob":   func() error { _, err := e.NextBlob(); return err }(),
		"u8":          second(e.U8()),
		"u64":         second(e.U64()),
		"u256":        second(e.U256()),
		"u64 range":   second(e.U64Range(0, 10)),
		"u256 range":  second(e.U256Range(uint256.NewInt(0), uint256.NewInt(10))),
		"bytes":       func() error { _, err := e.Bytes(1); return err }(),
		"permutation": func() error { _, err := e.Permutation(2); return err }(),
	} {
		if !errors.Is(err, ErrUnsafeCallContext) {
			t.Errorf("%s: err = %v, want ErrUnsafeCallContext", name, err)
		}
	}
}

func TestSeedNotReady(t *testing.T) {
	store := NewSeedStore()
	require.NoError(t, store.Initialize(params.FrameworkAddress))
	host := NewSimulatedHost(common.Hash{})
	e := New(store, host, host)

	_, err := e.U64()
	require.ErrorIs(t, err, ErrSeedNotReady)

	// After rotation the engine serves draws; rotating back to an absent seed
	// makes it fail again.
	seed := common.HexToHash("0x01")
	require.NoError(t, store.Rotate(params.VMAddress, 1, 1, &seed))
	_, err = e.U64()
	require.NoError(t, err)

	require.NoError(t, store.Rotate(params.VMAddress, 1, 2, nil))
	_, err = e.U64()
	require.ErrorIs(t, err, ErrSeedNotReady)
}

func TestSimulatedHostCounter(t *testing.T) {
	host := NewSimulatedHost(common.Hash{})
	c0 := host.NextCounter()
	c1 := host.NextCounter()
	if c0 != [32]byte{} {
		t.Fatalf("first counter = %x, want all zero", c0)
	}
	if c1[0] != 1 {
		t.Fatalf("second counter first byte = %d, want 1", c1[0])
	}
	host.BeginTx(common.HexToHash("0x02"))
	if c := host.NextCounter(); c != [32]byte{} {
		t.Fatalf("counter not reset on BeginTx: %x", c)
	}
}
