package aesblock

import (
	"encoding/binary"
	"math/bits"
)

// Rijndael key expansion, computed column-wise over little-endian
// 32-bit words and packed into Blocks four columns at a time.

// rcon holds the round-constant column for each expansion period.
var rcon = [10]uint32{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

func rotWord(w uint32) uint32 {
	return bits.RotateLeft32(w, -8)
}

// subWord applies the S-box to each byte of w through the active
// backend. ShiftRows only moves bytes between columns, so with all
// four columns equal a last round against a zero key reduces to
// SubBytes and any column of the result is the answer.
func subWord(w uint32) uint32 {
	var b [BlockSize]byte
	binary.LittleEndian.PutUint32(b[0:4], w)
	binary.LittleEndian.PutUint32(b[4:8], w)
	binary.LittleEndian.PutUint32(b[8:12], w)
	binary.LittleEndian.PutUint32(b[12:16], w)
	out := NewBlock(b).EncLast(Block{}).Bytes()
	return binary.LittleEndian.Uint32(out[0:4])
}

func packRoundKeys(dst []Block, cols []uint32) {
	for i := range dst {
		var b [BlockSize]byte
		binary.LittleEndian.PutUint32(b[0:4], cols[4*i])
		binary.LittleEndian.PutUint32(b[4:8], cols[4*i+1])
		binary.LittleEndian.PutUint32(b[8:12], cols[4*i+2])
		binary.LittleEndian.PutUint32(b[12:16], cols[4*i+3])
		dst[i] = NewBlock(b)
	}
}

func keySchedule128(key [16]byte) [11]Block {
	var cols [44]uint32
	for i := 0; i < 4; i++ {
		cols[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	for i := 4; i < 44; i++ {
		t := cols[i-1]
		if i%4 == 0 {
			t = rotWord(subWord(t)) ^ rcon[i/4-1]
		}
		cols[i] = cols[i-4] ^ t
	}
	var keys [11]Block
	packRoundKeys(keys[:], cols[:])
	return keys
}

func keySchedule192(key [24]byte) [13]Block {
	var cols [52]uint32
	for i := 0; i < 6; i++ {
		cols[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	for i := 6; i < 52; i++ {
		t := cols[i-1]
		if i%6 == 0 {
			t = rotWord(subWord(t)) ^ rcon[i/6-1]
		}
		cols[i] = cols[i-6] ^ t
	}
	var keys [13]Block
	packRoundKeys(keys[:], cols[:])
	return keys
}

func keySchedule256(key [32]byte) [15]Block {
	var cols [60]uint32
	for i := 0; i < 8; i++ {
		cols[i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	for i := 8; i < 60; i++ {
		t := cols[i-1]
		switch {
		case i%8 == 0:
			t = rotWord(subWord(t)) ^ rcon[i/8-1]
		case i%8 == 4:
			// The 256-bit period applies SubWord a second time,
			// halfway through, without the rotate.
			t = subWord(t)
		}
		cols[i] = cols[i-8] ^ t
	}
	var keys [15]Block
	packRoundKeys(keys[:], cols[:])
	return keys
}
