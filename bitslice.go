package aesblock

// Constant-time software backend.
//
// SubBytes and InvSubBytes are fixed Boolean circuits over the state's
// byte planes rather than table lookups, so no data-dependent memory
// access or branch ever occurs. None of the circuit's steps carries
// information across a byte lane: every unmasked shift's cross-lane bits
// are killed by the following mask. The 128-bit state therefore splits
// into two independent 64-bit words, processed with plain integer ops.

// rep replicates x into every byte lane.
func rep(x byte) uint64 {
	return 0x0101010101010101 * uint64(x)
}

// ror1 rotates every byte lane right by one bit.
func ror1(x uint64) uint64 {
	return (x&rep(0xfe))>>1 | (x&rep(0x01))<<7
}

// ror2 rotates every byte lane right by two bits.
func ror2(x uint64) uint64 {
	return (x&rep(0xfc))>>2 | (x&rep(0x03))<<6
}

func swap2(x uint64) uint64 {
	return (x&rep(0xcc))>>2 | (x&rep(0x33))<<2
}

func stepA(a, b, mask uint64) uint64 {
	x := a & b
	return x ^ (x&mask)>>1 ^ ((a<<1)&b^(b<<1)&a)&mask
}

func stepB(a, mask uint64) uint64 {
	x := a & mask
	return (x | x>>1) ^ (a<<1)&mask
}

// sboxMiddle is the shared nonlinear core of the S-box circuit
// (inversion in GF(2^8) via the tower-field decomposition).
func sboxMiddle(x uint64) uint64 {
	a1 := x ^ (x&rep(0xf0))>>4
	a2 := swap2(x)
	a3 := stepA(x, a1, rep(0xaa))
	a4 := stepA(a1, a2, rep(0xaa))
	a5 := (a3 & rep(0xcc)) >> 2
	a3 ^= ((a4 << 2) ^ a4) & rep(0xcc)
	a4 = stepB(a5, rep(0x22))
	a3 ^= a4
	a5 = stepB(a3, rep(0xa0))
	a4 = a5 & rep(0xc0)
	a6 := a4 >> 2
	a4 ^= (a5 << 2) & rep(0xc0)
	a5 = stepB(a6, rep(0x20))
	a4 |= a5
	a3 = (a3 ^ a4>>4) & rep(0x0f)
	a2 = a3 ^ (a3&rep(0x0c))>>2
	a4 = stepA(a2, a3, rep(0x0a))
	a5 = stepB(a4, rep(0x08))
	a4 = (a4 ^ a5>>2) & rep(0x03)
	a4 ^= (a4 & rep(0x02)) >> 1
	a4 |= a4 << 2
	a3 = stepA(a2, a4, rep(0x0a))
	a3 |= a3 << 4
	a2 = swap2(a1)
	x = stepA(a1, a3, rep(0xaa))
	a4 = stepA(a2, a3, rep(0xaa))
	a5 = (x & rep(0xcc)) >> 2
	x ^= ((a4 << 2) ^ a4) & rep(0xcc)
	a4 = stepB(a5, rep(0x22))
	return x ^ a4
}

// subBytesW applies the AES S-box to every byte lane of x.
func subBytesW(x uint64) uint64 {
	y := ror1(x)
	x = x&rep(0xdd) ^ y&rep(0x57)
	y = ror1(y)
	x ^= y & rep(0x1c)
	y = ror1(y)
	x ^= y & rep(0x4a)
	y = ror1(y)
	x ^= y & rep(0x42)
	y = ror1(y)
	x ^= y & rep(0x64)
	y = ror1(y)
	x ^= y & rep(0xe0)

	x = sboxMiddle(x)

	y = ror1(x)
	x = x&rep(0x39) ^ y&rep(0x3f)
	y = ror2(y)
	x ^= y & rep(0x97)
	y = ror1(y)
	x ^= y & rep(0x9b)
	y = ror1(y)
	x ^= y & rep(0x3c)
	y = ror1(y)
	x ^= y & rep(0xdd)
	y = ror1(y)
	x ^= y & rep(0x72)

	return x ^ rep(0x63)
}

// invSubBytesW applies the inverse AES S-box to every byte lane of x.
func invSubBytesW(x uint64) uint64 {
	x ^= rep(0x63)
	y := ror1(x)
	x = x&rep(0xfd) ^ y&rep(0x5e)
	y = ror1(y)
	x ^= y & rep(0xf3)
	y = ror1(y)
	x ^= y & rep(0xf5)
	y = ror1(y)
	x ^= y & rep(0x78)
	y = ror1(y)
	x ^= y & rep(0x77)
	y = ror1(y)
	x ^= y & rep(0x15)
	y = ror1(y)
	x ^= y & rep(0xa5)

	x = sboxMiddle(x)

	y = ror1(x)
	x = x&rep(0xb5) ^ y&rep(0x40)
	y = ror1(y)
	x ^= y & rep(0x80)
	y = ror1(y)
	x ^= y & rep(0x16)
	y = ror1(y)
	x ^= y & rep(0xeb)
	y = ror1(y)
	x ^= y & rep(0x97)
	y = ror1(y)
	x ^= y & rep(0xfb)
	y = ror1(y)

	return x ^ y&rep(0x7d)
}

func shiftRowsGeneric(b Block) Block {
	s := &b.b
	return NewBlock([16]byte{
		s[0], s[5], s[10], s[15], s[4], s[9], s[14], s[3],
		s[8], s[13], s[2], s[7], s[12], s[1], s[6], s[11],
	})
}

func invShiftRowsGeneric(b Block) Block {
	s := &b.b
	return NewBlock([16]byte{
		s[0], s[13], s[10], s[7], s[4], s[1], s[14], s[11],
		s[8], s[5], s[2], s[15], s[12], s[9], s[6], s[3],
	})
}

// xtimeW multiplies every byte lane by x in GF(2^8).
func xtimeW(a uint64) uint64 {
	b := a & rep(0x80)
	a ^= b
	// 0x80 lanes become 0x7f, so the subtraction never borrows
	// across a lane.
	b = (b - b>>7) & rep(0x1b)
	return b ^ a<<1
}

func swap16W(x uint64) uint64 {
	return (x&0xffff0000ffff0000)>>16 | (x&0x0000ffff0000ffff)<<16
}

func swap8W(x uint64) uint64 {
	return (x&0xff00ff00ff00ff00)>>8 | (x&0x00ff00ff00ff00ff)<<8
}

// ror8x32W rotates every 32-bit column right by one byte.
func ror8x32W(x uint64) uint64 {
	return (x&0xffffff00ffffff00)>>8 ^ (x&0x000000ff000000ff)<<24
}

func mixColumnsW(x uint64) uint64 {
	s := x ^ swap16W(x)
	s = s ^ swap8W(s) ^ x
	t := xtimeW(x)
	return s ^ t ^ ror8x32W(t)
}

func invMixColumnsW(x uint64) uint64 {
	s := x ^ swap16W(x)
	s = s ^ swap8W(s) ^ x

	t := xtimeW(x)
	s = s ^ t ^ ror8x32W(t)
	t = xtimeW(t)
	t ^= swap16W(t)
	s ^= t
	t = xtimeW(t)

	return s ^ t ^ swap8W(t)
}

func mapWords(b Block, f func(uint64) uint64) Block {
	lo, hi := b.words()
	return blockFromWords(f(lo), f(hi))
}

func subBytesGeneric(b Block) Block    { return mapWords(b, subBytesW) }
func invSubBytesGeneric(b Block) Block { return mapWords(b, invSubBytesW) }
func mcGeneric(b Block) Block          { return mapWords(b, mixColumnsW) }
func imcGeneric(b Block) Block         { return mapWords(b, invMixColumnsW) }

func encGeneric(b, rk Block) Block {
	return mcGeneric(subBytesGeneric(shiftRowsGeneric(b))).Xor(rk)
}

func decGeneric(b, rk Block) Block {
	return imcGeneric(invSubBytesGeneric(invShiftRowsGeneric(b))).Xor(rk)
}

func encLastGeneric(b, rk Block) Block {
	return subBytesGeneric(shiftRowsGeneric(b)).Xor(rk)
}

func decLastGeneric(b, rk Block) Block {
	return invSubBytesGeneric(invShiftRowsGeneric(b)).Xor(rk)
}

func preEncGeneric(b, rk Block) Block {
	return mcGeneric(subBytesGeneric(shiftRowsGeneric(b.Xor(rk))))
}

func preDecGeneric(b, rk Block) Block {
	return imcGeneric(invSubBytesGeneric(invShiftRowsGeneric(b.Xor(rk))))
}

func preEncLastGeneric(b, rk Block) Block {
	return subBytesGeneric(shiftRowsGeneric(b.Xor(rk)))
}

func preDecLastGeneric(b, rk Block) Block {
	return invSubBytesGeneric(invShiftRowsGeneric(b.Xor(rk)))
}
