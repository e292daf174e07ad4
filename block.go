// Package aesblock implements the raw AES (Rijndael) block permutation
// for AES-128, AES-192, and AES-256.
//
// The package exposes the cipher as a set of pure value types: Block (one
// 128-bit state), BlockX2 and BlockX4 (two and four independent lanes),
// and per-key-size Encrypter/Decrypter instances holding an expanded
// round-key schedule. It implements only the single-block permutation and
// its batched variants; cipher modes, padding, and authenticated
// encryption are out of scope.
//
// Three backends exist: AES-NI on amd64, the ARMv8 cryptographic
// extensions on arm64, and a portable constant-time bitsliced
// implementation everywhere else (including the purego build and CPUs
// without the instructions). All backends produce bit-identical output.
package aesblock

import (
	"encoding/binary"
	"fmt"
)

// BlockSize is the size in bytes of one AES block.
const BlockSize = 16

// InvalidLengthError is returned when a byte slice is too short to
// convert into a fixed-size block or key.
type InvalidLengthError struct {
	// Need is the number of bytes required.
	Need int
	// Len is the actual length of the slice.
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("aesblock: slice too short: need %d bytes, got %d", e.Need, e.Len)
}

// Block is one 128-bit AES state.
//
// Byte i of a Block is byte i of the cipher state in the FIPS-197
// column-major convention. Block is an immutable value type: every
// operation returns a new value, and Blocks are safe to share between
// goroutines.
type Block struct {
	b [16]byte
}

// NewBlock returns the Block with the provided contents.
func NewBlock(value [16]byte) Block {
	return Block{b: value}
}

// BlockFromSlice converts the first 16 bytes of value into a Block.
//
// It returns an *InvalidLengthError carrying len(value) if the slice is
// shorter than 16 bytes.
func BlockFromSlice(value []byte) (Block, error) {
	if len(value) < 16 {
		return Block{}, &InvalidLengthError{Need: 16, Len: len(value)}
	}
	var b Block
	copy(b.b[:], value)
	return b, nil
}

// Bytes returns the contents of the Block.
func (b Block) Bytes() [16]byte {
	return b.b
}

// StoreTo writes the Block to the first 16 bytes of dst.
//
// It panics if dst is shorter than 16 bytes.
func (b Block) StoreTo(dst []byte) {
	if len(dst) < 16 {
		panic("aesblock: output slice too short")
	}
	copy(dst[:16], b.b[:])
}

// Xor returns b ^ x.
func (b Block) Xor(x Block) Block {
	b0, b1 := b.words()
	x0, x1 := x.words()
	return blockFromWords(b0^x0, b1^x1)
}

// And returns b & x.
func (b Block) And(x Block) Block {
	b0, b1 := b.words()
	x0, x1 := x.words()
	return blockFromWords(b0&x0, b1&x1)
}

// Or returns b | x.
func (b Block) Or(x Block) Block {
	b0, b1 := b.words()
	x0, x1 := x.words()
	return blockFromWords(b0|x0, b1|x1)
}

// Not returns ^b.
func (b Block) Not() Block {
	b0, b1 := b.words()
	return blockFromWords(^b0, ^b1)
}

// IsZero reports whether all 128 bits of b are zero.
func (b Block) IsZero() bool {
	b0, b1 := b.words()
	return b0|b1 == 0
}

// Equal reports whether b and x are bit-for-bit identical.
func (b Block) Equal(x Block) bool {
	return b.Xor(x).IsZero()
}

// String returns the Block as 32 lowercase hex digits.
func (b Block) String() string {
	return fmt.Sprintf("%x", b.b)
}

func (b Block) words() (lo, hi uint64) {
	return binary.LittleEndian.Uint64(b.b[0:8]),
		binary.LittleEndian.Uint64(b.b[8:16])
}

func blockFromWords(lo, hi uint64) Block {
	var b Block
	binary.LittleEndian.PutUint64(b.b[0:8], lo)
	binary.LittleEndian.PutUint64(b.b[8:16], hi)
	return b
}
