package aesblock

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"
)

func unhex(s string) []byte {
	p, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return p
}

func blockFromHex(s string) Block {
	p := unhex(s)
	if len(p) != BlockSize {
		panic("bad block length")
	}
	return NewBlock([BlockSize]byte(p))
}

func randBlock(t *testing.T) Block {
	t.Helper()
	var b [BlockSize]byte
	if _, err := rand.Read(b[:]); err != nil {
		t.Fatal(err)
	}
	return NewBlock(b)
}

// TestEncRound tests one full encryption round against the AESRound
// vector from draft-irtf-cfrg-aegis-aead, appendix A.1.
func TestEncRound(t *testing.T) {
	for _, tc := range []struct {
		in  string
		rk  string
		out string
	}{
		{
			in:  "000102030405060708090a0b0c0d0e0f",
			rk:  "101112131415161718191a1b1c1d1e1f",
			out: "7a7b4e5638782546a8c0477a3b813f43",
		},
	} {
		out := blockFromHex(tc.in).Enc(blockFromHex(tc.rk))
		if want := blockFromHex(tc.out); !out.Equal(want) {
			t.Fatalf("expected %s, got %s", want, out)
		}
	}
}

func TestBlockFromSlice(t *testing.T) {
	_, err := BlockFromSlice(make([]byte, 15))
	var lenErr *InvalidLengthError
	if !errors.As(err, &lenErr) {
		t.Fatalf("expected *InvalidLengthError, got %v", err)
	}
	if lenErr.Need != 16 || lenErr.Len != 15 {
		t.Fatalf("expected (16, 15), got (%d, %d)", lenErr.Need, lenErr.Len)
	}

	// Longer slices use the first 16 bytes.
	p := unhex("000102030405060708090a0b0c0d0e0fffffffff")
	b, err := BlockFromSlice(p)
	if err != nil {
		t.Fatal(err)
	}
	if want := blockFromHex("000102030405060708090a0b0c0d0e0f"); !b.Equal(want) {
		t.Fatalf("expected %s, got %s", want, b)
	}
}

func TestBlockBitwise(t *testing.T) {
	a := blockFromHex("0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f")
	b := blockFromHex("33333333333333333333333333333333")

	if got, want := a.Xor(b), blockFromHex("3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c3c"); !got.Equal(want) {
		t.Fatalf("Xor: expected %s, got %s", want, got)
	}
	if got, want := a.And(b), blockFromHex("03030303030303030303030303030303"); !got.Equal(want) {
		t.Fatalf("And: expected %s, got %s", want, got)
	}
	if got, want := a.Or(b), blockFromHex("3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f3f"); !got.Equal(want) {
		t.Fatalf("Or: expected %s, got %s", want, got)
	}
	if got, want := a.Not(), blockFromHex("f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0"); !got.Equal(want) {
		t.Fatalf("Not: expected %s, got %s", want, got)
	}
}

func TestBlockIsZero(t *testing.T) {
	if !(Block{}).IsZero() {
		t.Fatal("zero block should report zero")
	}
	var b [BlockSize]byte
	b[15] = 1
	if NewBlock(b).IsZero() {
		t.Fatal("nonzero block should not report zero")
	}
	x := randBlock(t)
	if !x.Equal(x) {
		t.Fatal("block should equal itself")
	}
	if !x.Xor(x).IsZero() {
		t.Fatal("x^x should be zero")
	}
}

func TestBlockString(t *testing.T) {
	const s = "00112233445566778899aabbccddeeff"
	if got := blockFromHex(s).String(); got != s {
		t.Fatalf("expected %q, got %q", s, got)
	}
}

func TestBlockStoreTo(t *testing.T) {
	b := randBlock(t)
	buf := make([]byte, 20)
	b.StoreTo(buf)
	got, err := BlockFromSlice(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(b) {
		t.Fatalf("expected %s, got %s", b, got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short destination")
		}
	}()
	b.StoreTo(make([]byte, 15))
}

// TestSubBytesCircuit pins the first sixteen S-box and inverse S-box
// entries computed by the bitsliced circuit.
func TestSubBytesCircuit(t *testing.T) {
	in := blockFromHex("000102030405060708090a0b0c0d0e0f")
	if got, want := subBytesGeneric(in), blockFromHex("637c777bf26b6fc53001672bfed7ab76"); !got.Equal(want) {
		t.Fatalf("SubBytes: expected %s, got %s", want, got)
	}
	if got, want := invSubBytesGeneric(in), blockFromHex("52096ad53036a538bf40a39e81f3d7fb"); !got.Equal(want) {
		t.Fatalf("InvSubBytes: expected %s, got %s", want, got)
	}

	for i := 0; i < 100; i++ {
		x := randBlock(t)
		if got := invSubBytesGeneric(subBytesGeneric(x)); !got.Equal(x) {
			t.Fatalf("round trip: expected %s, got %s", x, got)
		}
	}
}

func TestShiftRowsRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := randBlock(t)
		if got := invShiftRowsGeneric(shiftRowsGeneric(x)); !got.Equal(x) {
			t.Fatalf("expected %s, got %s", x, got)
		}
	}
}

func TestMixColumnsRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := randBlock(t)
		if got := x.Mc().Imc(); !got.Equal(x) {
			t.Fatalf("Mc/Imc: expected %s, got %s", x, got)
		}
		if got := x.Imc().Mc(); !got.Equal(x) {
			t.Fatalf("Imc/Mc: expected %s, got %s", x, got)
		}
	}
}

func TestRoundInverses(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := randBlock(t)
		rk := randBlock(t)
		// Dec with a zero key undoes EncLast(rk) after the rk XOR is
		// stripped, and likewise for the full rounds.
		if got := x.Enc(rk).Xor(rk).Imc().DecLast(Block{}); !got.Equal(x) {
			t.Fatalf("Enc inverse: expected %s, got %s", x, got)
		}
		if got := x.EncLast(rk).Xor(rk).DecLast(Block{}); !got.Equal(x) {
			t.Fatalf("EncLast inverse: expected %s, got %s", x, got)
		}
	}
}
