package aesblock

// Round operations on Block. Each method computes one AES round step and
// produces the same bits on every backend; the per-target round functions
// pick between hardware instructions and the bitsliced circuit at runtime.

// Enc computes one encryption round: SubBytes, ShiftRows, MixColumns,
// then an XOR with the round key rk.
func (b Block) Enc(rk Block) Block { return encRound(b, rk) }

// Dec computes one decryption round: InvSubBytes, InvShiftRows,
// InvMixColumns, then an XOR with the round key rk.
func (b Block) Dec(rk Block) Block { return decRound(b, rk) }

// EncLast computes the final encryption round, which skips MixColumns.
func (b Block) EncLast(rk Block) Block { return encLastRound(b, rk) }

// DecLast computes the final decryption round, which skips
// InvMixColumns.
func (b Block) DecLast(rk Block) Block { return decLastRound(b, rk) }

// Mc applies MixColumns to the block.
func (b Block) Mc() Block { return mixColumns(b) }

// Imc applies InvMixColumns to the block. It is the transform applied
// to encryption round keys to derive the decryption schedule under the
// equivalent-inverse cipher convention.
func (b Block) Imc() Block { return invMixColumns(b) }

// Fused pre-round forms. preEnc(rk) is (b XOR rk).Enc(zero) in one
// step; a round chain built from them folds each whitening XOR into
// the following round. Only meaningful when hasPreRound is set.

func (b Block) preEnc(rk Block) Block     { return preEncRound(b, rk) }
func (b Block) preDec(rk Block) Block     { return preDecRound(b, rk) }
func (b Block) preEncLast(rk Block) Block { return preEncLastRound(b, rk) }
func (b Block) preDecLast(rk Block) Block { return preDecLastRound(b, rk) }
