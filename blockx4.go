package aesblock

// BlockSizeX4 is the size in bytes of a BlockX4.
const BlockSizeX4 = 4 * BlockSize

// BlockX4 is four Block lanes, held as two BlockX2 halves. Lanes 0 and
// 1 live in the low half, lanes 2 and 3 in the high half.
type BlockX4 struct {
	h0, h1 BlockX2
}

// NewBlockX4 loads four blocks from b, lane 0 from the first 16 bytes.
func NewBlockX4(b [BlockSizeX4]byte) BlockX4 {
	return BlockX4{
		h0: NewBlockX2([BlockSizeX2]byte(b[0:32])),
		h1: NewBlockX2([BlockSizeX2]byte(b[32:64])),
	}
}

// BlockX4FromSlice loads four blocks from the first 64 bytes of s.
func BlockX4FromSlice(s []byte) (BlockX4, error) {
	if len(s) < BlockSizeX4 {
		return BlockX4{}, &InvalidLengthError{Need: BlockSizeX4, Len: len(s)}
	}
	return NewBlockX4([BlockSizeX4]byte(s[:BlockSizeX4])), nil
}

// BlockX4FromBlocks packs four scalar blocks into lanes 0 through 3.
func BlockX4FromBlocks(b0, b1, b2, b3 Block) BlockX4 {
	return BlockX4{
		h0: BlockX2FromBlocks(b0, b1),
		h1: BlockX2FromBlocks(b2, b3),
	}
}

// BlockX4FromX2s packs two pairs into the low and high halves.
func BlockX4FromX2s(lo, hi BlockX2) BlockX4 {
	return BlockX4{h0: lo, h1: hi}
}

// BroadcastX4 repeats b across all four lanes.
func BroadcastX4(b Block) BlockX4 {
	return BlockX4{h0: BroadcastX2(b), h1: BroadcastX2(b)}
}

// Split returns the four lanes.
func (b BlockX4) Split() (Block, Block, Block, Block) {
	b0, b1 := b.h0.Split()
	b2, b3 := b.h1.Split()
	return b0, b1, b2, b3
}

// SplitX2 returns the two halves.
func (b BlockX4) SplitX2() (BlockX2, BlockX2) {
	return b.h0, b.h1
}

// Bytes returns the four lanes back to back, lane 0 first.
func (b BlockX4) Bytes() [BlockSizeX4]byte {
	var out [BlockSizeX4]byte
	b.h0.StoreTo(out[0:32])
	b.h1.StoreTo(out[32:64])
	return out
}

// StoreTo writes the value to the first 64 bytes of dst. It panics if
// dst is shorter than 64 bytes.
func (b BlockX4) StoreTo(dst []byte) {
	if len(dst) < BlockSizeX4 {
		panic("aesblock: output slice too short")
	}
	b.h0.StoreTo(dst[0:32])
	b.h1.StoreTo(dst[32:64])
}

func (b BlockX4) Xor(v BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.Xor(v.h0), h1: b.h1.Xor(v.h1)}
}

func (b BlockX4) And(v BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.And(v.h0), h1: b.h1.And(v.h1)}
}

func (b BlockX4) Or(v BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.Or(v.h0), h1: b.h1.Or(v.h1)}
}

func (b BlockX4) Not() BlockX4 {
	return BlockX4{h0: b.h0.Not(), h1: b.h1.Not()}
}

// IsZero reports whether all four lanes are zero.
func (b BlockX4) IsZero() bool {
	return b.h0.IsZero() && b.h1.IsZero()
}

// Equal reports whether b and v match in all four lanes.
func (b BlockX4) Equal(v BlockX4) bool {
	return b.Xor(v).IsZero()
}

func (b BlockX4) String() string {
	return b.h0.String() + b.h1.String()
}

func (b BlockX4) Enc(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.Enc(rk.h0), h1: b.h1.Enc(rk.h1)}
}

func (b BlockX4) Dec(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.Dec(rk.h0), h1: b.h1.Dec(rk.h1)}
}

func (b BlockX4) EncLast(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.EncLast(rk.h0), h1: b.h1.EncLast(rk.h1)}
}

func (b BlockX4) DecLast(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.DecLast(rk.h0), h1: b.h1.DecLast(rk.h1)}
}

func (b BlockX4) Mc() BlockX4 {
	return BlockX4{h0: b.h0.Mc(), h1: b.h1.Mc()}
}

func (b BlockX4) Imc() BlockX4 {
	return BlockX4{h0: b.h0.Imc(), h1: b.h1.Imc()}
}

func (b BlockX4) preEnc(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.preEnc(rk.h0), h1: b.h1.preEnc(rk.h1)}
}

func (b BlockX4) preDec(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.preDec(rk.h0), h1: b.h1.preDec(rk.h1)}
}

func (b BlockX4) preEncLast(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.preEncLast(rk.h0), h1: b.h1.preEncLast(rk.h1)}
}

func (b BlockX4) preDecLast(rk BlockX4) BlockX4 {
	return BlockX4{h0: b.h0.preDecLast(rk.h0), h1: b.h1.preDecLast(rk.h1)}
}
