package aesblock

// roundBlock is satisfied by Block, BlockX2 and BlockX4, letting the
// round chain and the schedule direction transform be written once for
// every width.
type roundBlock[B any] interface {
	Xor(B) B
	Enc(B) B
	Dec(B) B
	EncLast(B) B
	DecLast(B) B
	Mc() B
	Imc() B
	preEnc(B) B
	preDec(B) B
	preEncLast(B) B
	preDecLast(B) B
}

// chainEnc runs the full encryption round chain: whiten with keys[0],
// a full round per middle key, a last round with the final key. With
// hasPreRound set the whitening XOR is folded into the rounds instead.
// A schedule always has a whitening key and a last-round key, so fewer
// than 2 keys is a programming error.
func chainEnc[B roundBlock[B]](b B, keys []B) B {
	n := len(keys)
	if n < 2 {
		panic("aesblock: round-key schedule shorter than 2 keys")
	}
	if hasPreRound {
		for _, rk := range keys[:n-2] {
			b = b.preEnc(rk)
		}
		return b.preEncLast(keys[n-2]).Xor(keys[n-1])
	}
	b = b.Xor(keys[0])
	for _, rk := range keys[1 : n-1] {
		b = b.Enc(rk)
	}
	return b.EncLast(keys[n-1])
}

// chainDec is the decryption mirror of chainEnc. keys must already be
// a decryption schedule (see decScheduleFromEnc).
func chainDec[B roundBlock[B]](b B, keys []B) B {
	n := len(keys)
	if n < 2 {
		panic("aesblock: round-key schedule shorter than 2 keys")
	}
	if hasPreRound {
		for _, rk := range keys[:n-2] {
			b = b.preDec(rk)
		}
		return b.preDecLast(keys[n-2]).Xor(keys[n-1])
	}
	b = b.Xor(keys[0])
	for _, rk := range keys[1 : n-1] {
		b = b.Dec(rk)
	}
	return b.DecLast(keys[n-1])
}

// decScheduleFromEnc converts an encryption schedule to the matching
// decryption schedule in place: reverse the key order and apply
// InvMixColumns to every key except the outer two (equivalent-inverse
// cipher convention).
func decScheduleFromEnc[B roundBlock[B]](keys []B) {
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	for i := 1; i < len(keys)-1; i++ {
		keys[i] = keys[i].Imc()
	}
}

// encScheduleFromDec is the inverse of decScheduleFromEnc.
func encScheduleFromDec[B roundBlock[B]](keys []B) {
	for i := 1; i < len(keys)-1; i++ {
		keys[i] = keys[i].Mc()
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
}
