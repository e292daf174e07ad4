package aesblock

// BlockSizeX2 is the size in bytes of a BlockX2.
const BlockSizeX2 = 2 * BlockSize

// BlockX2 is a pair of Blocks processed as two independent lanes.
// Every round and bitwise operation applies lane-wise, with lane i of
// a round-key argument applied to lane i of the data.
type BlockX2 struct {
	l0, l1 Block
}

// NewBlockX2 loads two blocks from b, lane 0 from the first 16 bytes.
func NewBlockX2(b [BlockSizeX2]byte) BlockX2 {
	return BlockX2{
		l0: NewBlock([BlockSize]byte(b[0:16])),
		l1: NewBlock([BlockSize]byte(b[16:32])),
	}
}

// BlockX2FromSlice loads two blocks from the first 32 bytes of s.
func BlockX2FromSlice(s []byte) (BlockX2, error) {
	if len(s) < BlockSizeX2 {
		return BlockX2{}, &InvalidLengthError{Need: BlockSizeX2, Len: len(s)}
	}
	return NewBlockX2([BlockSizeX2]byte(s[:BlockSizeX2])), nil
}

// BlockX2FromBlocks packs two scalar blocks into lanes 0 and 1.
func BlockX2FromBlocks(b0, b1 Block) BlockX2 {
	return BlockX2{l0: b0, l1: b1}
}

// BroadcastX2 repeats b across both lanes.
func BroadcastX2(b Block) BlockX2 {
	return BlockX2{l0: b, l1: b}
}

// Split returns the two lanes.
func (b BlockX2) Split() (Block, Block) {
	return b.l0, b.l1
}

// Bytes returns the two lanes back to back, lane 0 first.
func (b BlockX2) Bytes() [BlockSizeX2]byte {
	var out [BlockSizeX2]byte
	copy(out[0:16], b.l0.b[:])
	copy(out[16:32], b.l1.b[:])
	return out
}

// StoreTo writes the value to the first 32 bytes of dst. It panics if
// dst is shorter than 32 bytes.
func (b BlockX2) StoreTo(dst []byte) {
	if len(dst) < BlockSizeX2 {
		panic("aesblock: output slice too short")
	}
	b.l0.StoreTo(dst[0:16])
	b.l1.StoreTo(dst[16:32])
}

func (b BlockX2) Xor(v BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.Xor(v.l0), l1: b.l1.Xor(v.l1)}
}

func (b BlockX2) And(v BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.And(v.l0), l1: b.l1.And(v.l1)}
}

func (b BlockX2) Or(v BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.Or(v.l0), l1: b.l1.Or(v.l1)}
}

func (b BlockX2) Not() BlockX2 {
	return BlockX2{l0: b.l0.Not(), l1: b.l1.Not()}
}

// IsZero reports whether both lanes are zero.
func (b BlockX2) IsZero() bool {
	return b.l0.IsZero() && b.l1.IsZero()
}

// Equal reports whether b and v match in both lanes.
func (b BlockX2) Equal(v BlockX2) bool {
	return b.Xor(v).IsZero()
}

func (b BlockX2) String() string {
	return b.l0.String() + b.l1.String()
}

func (b BlockX2) Enc(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.Enc(rk.l0), l1: b.l1.Enc(rk.l1)}
}

func (b BlockX2) Dec(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.Dec(rk.l0), l1: b.l1.Dec(rk.l1)}
}

func (b BlockX2) EncLast(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.EncLast(rk.l0), l1: b.l1.EncLast(rk.l1)}
}

func (b BlockX2) DecLast(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.DecLast(rk.l0), l1: b.l1.DecLast(rk.l1)}
}

func (b BlockX2) Mc() BlockX2 {
	return BlockX2{l0: b.l0.Mc(), l1: b.l1.Mc()}
}

func (b BlockX2) Imc() BlockX2 {
	return BlockX2{l0: b.l0.Imc(), l1: b.l1.Imc()}
}

func (b BlockX2) preEnc(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.preEnc(rk.l0), l1: b.l1.preEnc(rk.l1)}
}

func (b BlockX2) preDec(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.preDec(rk.l0), l1: b.l1.preDec(rk.l1)}
}

func (b BlockX2) preEncLast(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.preEncLast(rk.l0), l1: b.l1.preEncLast(rk.l1)}
}

func (b BlockX2) preDecLast(rk BlockX2) BlockX2 {
	return BlockX2{l0: b.l0.preDecLast(rk.l0), l1: b.l1.preDecLast(rk.l1)}
}
