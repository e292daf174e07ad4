package aesblock

// Per-lane-key ×4 cipher instances, one independent key per lane.

func interleaveX4(dst []BlockX4, k0, k1, k2, k3 []Block) {
	for i := range dst {
		dst[i] = BlockX4FromBlocks(k0[i], k1[i], k2[i], k3[i])
	}
}

// AES128EncX4 encrypts four lanes under four independent AES-128 keys.
type AES128EncX4 struct {
	keys [numKeys128]BlockX4
}

// NewAES128EncX4 expands all four keys, keys[i] for lane i.
func NewAES128EncX4(keys [4][16]byte) *AES128EncX4 {
	c := new(AES128EncX4)
	k0, k1 := keySchedule128(keys[0]), keySchedule128(keys[1])
	k2, k3 := keySchedule128(keys[2]), keySchedule128(keys[3])
	interleaveX4(c.keys[:], k0[:], k1[:], k2[:], k3[:])
	return c
}

// Encrypt4Blocks encrypts lane i of b under key i.
func (c *AES128EncX4) Encrypt4Blocks(b BlockX4) BlockX4 {
	return chainEnc(b, c.keys[:])
}

// Decrypter derives the matching decryption instance.
func (c *AES128EncX4) Decrypter() *AES128DecX4 {
	d := &AES128DecX4{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES128DecX4 decrypts four lanes under four independent AES-128 keys.
type AES128DecX4 struct {
	keys [numKeys128]BlockX4
}

// NewAES128DecX4 expands all four keys into decryption schedules.
func NewAES128DecX4(keys [4][16]byte) *AES128DecX4 {
	return NewAES128EncX4(keys).Decrypter()
}

func (c *AES128DecX4) Decrypt4Blocks(b BlockX4) BlockX4 {
	return chainDec(b, c.keys[:])
}

func (c *AES128DecX4) Encrypter() *AES128EncX4 {
	e := &AES128EncX4{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}

// AES192EncX4 encrypts four lanes under four independent AES-192 keys.
type AES192EncX4 struct {
	keys [numKeys192]BlockX4
}

// NewAES192EncX4 expands all four keys, keys[i] for lane i.
func NewAES192EncX4(keys [4][24]byte) *AES192EncX4 {
	c := new(AES192EncX4)
	k0, k1 := keySchedule192(keys[0]), keySchedule192(keys[1])
	k2, k3 := keySchedule192(keys[2]), keySchedule192(keys[3])
	interleaveX4(c.keys[:], k0[:], k1[:], k2[:], k3[:])
	return c
}

func (c *AES192EncX4) Encrypt4Blocks(b BlockX4) BlockX4 {
	return chainEnc(b, c.keys[:])
}

func (c *AES192EncX4) Decrypter() *AES192DecX4 {
	d := &AES192DecX4{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES192DecX4 decrypts four lanes under four independent AES-192 keys.
type AES192DecX4 struct {
	keys [numKeys192]BlockX4
}

// NewAES192DecX4 expands all four keys into decryption schedules.
func NewAES192DecX4(keys [4][24]byte) *AES192DecX4 {
	return NewAES192EncX4(keys).Decrypter()
}

func (c *AES192DecX4) Decrypt4Blocks(b BlockX4) BlockX4 {
	return chainDec(b, c.keys[:])
}

func (c *AES192DecX4) Encrypter() *AES192EncX4 {
	e := &AES192EncX4{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}

// AES256EncX4 encrypts four lanes under four independent AES-256 keys.
type AES256EncX4 struct {
	keys [numKeys256]BlockX4
}

// NewAES256EncX4 expands all four keys, keys[i] for lane i.
func NewAES256EncX4(keys [4][32]byte) *AES256EncX4 {
	c := new(AES256EncX4)
	k0, k1 := keySchedule256(keys[0]), keySchedule256(keys[1])
	k2, k3 := keySchedule256(keys[2]), keySchedule256(keys[3])
	interleaveX4(c.keys[:], k0[:], k1[:], k2[:], k3[:])
	return c
}

func (c *AES256EncX4) Encrypt4Blocks(b BlockX4) BlockX4 {
	return chainEnc(b, c.keys[:])
}

func (c *AES256EncX4) Decrypter() *AES256DecX4 {
	d := &AES256DecX4{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES256DecX4 decrypts four lanes under four independent AES-256 keys.
type AES256DecX4 struct {
	keys [numKeys256]BlockX4
}

// NewAES256DecX4 expands all four keys into decryption schedules.
func NewAES256DecX4(keys [4][32]byte) *AES256DecX4 {
	return NewAES256EncX4(keys).Decrypter()
}

func (c *AES256DecX4) Decrypt4Blocks(b BlockX4) BlockX4 {
	return chainDec(b, c.keys[:])
}

func (c *AES256DecX4) Encrypter() *AES256EncX4 {
	e := &AES256EncX4{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}
