package aesblock

// Per-lane-key ×2 cipher instances. The two schedules are interleaved
// into wide round keys so the wide round chain runs both lanes in one
// pass; lane i of every input is processed under keys[i].

func interleaveX2(dst []BlockX2, k0, k1 []Block) {
	for i := range dst {
		dst[i] = BlockX2FromBlocks(k0[i], k1[i])
	}
}

// widenX2Key spreads a two-lane round key over four lanes so each key
// covers one half: lane 0's key fills the low half, lane 1's the high.
func widenX2Key(k BlockX2) BlockX4 {
	a, b := k.Split()
	return BlockX4FromX2s(BroadcastX2(a), BroadcastX2(b))
}

// AES128EncX2 encrypts two lanes under two independent AES-128 keys.
type AES128EncX2 struct {
	keys [numKeys128]BlockX2
}

// NewAES128EncX2 expands both keys, keys[0] for lane 0.
func NewAES128EncX2(keys [2][16]byte) *AES128EncX2 {
	c := new(AES128EncX2)
	k0, k1 := keySchedule128(keys[0]), keySchedule128(keys[1])
	interleaveX2(c.keys[:], k0[:], k1[:])
	return c
}

// Encrypt2Blocks encrypts lane i of b under key i.
func (c *AES128EncX2) Encrypt2Blocks(b BlockX2) BlockX2 {
	return chainEnc(b, c.keys[:])
}

// Encrypt4Blocks encrypts lanes 0 and 1 of b under key 0 and lanes 2
// and 3 under key 1.
func (c *AES128EncX2) Encrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys128]BlockX4
	for i, k := range c.keys {
		keys[i] = widenX2Key(k)
	}
	return chainEnc(b, keys[:])
}

// Decrypter derives the matching decryption instance.
func (c *AES128EncX2) Decrypter() *AES128DecX2 {
	d := &AES128DecX2{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES128DecX2 decrypts two lanes under two independent AES-128 keys.
type AES128DecX2 struct {
	keys [numKeys128]BlockX2
}

// NewAES128DecX2 expands both keys into decryption schedules.
func NewAES128DecX2(keys [2][16]byte) *AES128DecX2 {
	return NewAES128EncX2(keys).Decrypter()
}

func (c *AES128DecX2) Decrypt2Blocks(b BlockX2) BlockX2 {
	return chainDec(b, c.keys[:])
}

func (c *AES128DecX2) Decrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys128]BlockX4
	for i, k := range c.keys {
		keys[i] = widenX2Key(k)
	}
	return chainDec(b, keys[:])
}

func (c *AES128DecX2) Encrypter() *AES128EncX2 {
	e := &AES128EncX2{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}

// AES192EncX2 encrypts two lanes under two independent AES-192 keys.
type AES192EncX2 struct {
	keys [numKeys192]BlockX2
}

// NewAES192EncX2 expands both keys, keys[0] for lane 0.
func NewAES192EncX2(keys [2][24]byte) *AES192EncX2 {
	c := new(AES192EncX2)
	k0, k1 := keySchedule192(keys[0]), keySchedule192(keys[1])
	interleaveX2(c.keys[:], k0[:], k1[:])
	return c
}

func (c *AES192EncX2) Encrypt2Blocks(b BlockX2) BlockX2 {
	return chainEnc(b, c.keys[:])
}

func (c *AES192EncX2) Encrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys192]BlockX4
	for i, k := range c.keys {
		keys[i] = widenX2Key(k)
	}
	return chainEnc(b, keys[:])
}

func (c *AES192EncX2) Decrypter() *AES192DecX2 {
	d := &AES192DecX2{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES192DecX2 decrypts two lanes under two independent AES-192 keys.
type AES192DecX2 struct {
	keys [numKeys192]BlockX2
}

// NewAES192DecX2 expands both keys into decryption schedules.
func NewAES192DecX2(keys [2][24]byte) *AES192DecX2 {
	return NewAES192EncX2(keys).Decrypter()
}

func (c *AES192DecX2) Decrypt2Blocks(b BlockX2) BlockX2 {
	return chainDec(b, c.keys[:])
}

func (c *AES192DecX2) Decrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys192]BlockX4
	for i, k := range c.keys {
		keys[i] = widenX2Key(k)
	}
	return chainDec(b, keys[:])
}

func (c *AES192DecX2) Encrypter() *AES192EncX2 {
	e := &AES192EncX2{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}

// AES256EncX2 encrypts two lanes under two independent AES-256 keys.
type AES256EncX2 struct {
	keys [numKeys256]BlockX2
}

// NewAES256EncX2 expands both keys, keys[0] for lane 0.
func NewAES256EncX2(keys [2][32]byte) *AES256EncX2 {
	c := new(AES256EncX2)
	k0, k1 := keySchedule256(keys[0]), keySchedule256(keys[1])
	interleaveX2(c.keys[:], k0[:], k1[:])
	return c
}

func (c *AES256EncX2) Encrypt2Blocks(b BlockX2) BlockX2 {
	return chainEnc(b, c.keys[:])
}

func (c *AES256EncX2) Encrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys256]BlockX4
	for i, k := range c.keys {
		keys[i] = widenX2Key(k)
	}
	return chainEnc(b, keys[:])
}

func (c *AES256EncX2) Decrypter() *AES256DecX2 {
	d := &AES256DecX2{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES256DecX2 decrypts two lanes under two independent AES-256 keys.
type AES256DecX2 struct {
	keys [numKeys256]BlockX2
}

// NewAES256DecX2 expands both keys into decryption schedules.
func NewAES256DecX2(keys [2][32]byte) *AES256DecX2 {
	return NewAES256EncX2(keys).Decrypter()
}

func (c *AES256DecX2) Decrypt2Blocks(b BlockX2) BlockX2 {
	return chainDec(b, c.keys[:])
}

func (c *AES256DecX2) Decrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys256]BlockX4
	for i, k := range c.keys {
		keys[i] = widenX2Key(k)
	}
	return chainDec(b, keys[:])
}

func (c *AES256DecX2) Encrypter() *AES256EncX2 {
	e := &AES256EncX2{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}
