package aesblock

// Cipher instances hold a fully expanded round-key schedule and are
// otherwise stateless, so each is safe for concurrent use. Encryption
// and decryption directions are separate types holding differently
// transformed schedules; either can derive the other without the raw
// key.

// Number of round keys per key size.
const (
	numKeys128 = 11
	numKeys192 = 13
	numKeys256 = 15
)

// AES128Enc is the encryption direction of AES-128.
type AES128Enc struct {
	keys [numKeys128]Block
}

// NewAES128Enc expands key into an encryption schedule.
func NewAES128Enc(key [16]byte) *AES128Enc {
	return &AES128Enc{keys: keySchedule128(key)}
}

// EncryptBlock encrypts one block.
func (c *AES128Enc) EncryptBlock(b Block) Block {
	return chainEnc(b, c.keys[:])
}

// Encrypt2Blocks encrypts both lanes of b under the same key.
func (c *AES128Enc) Encrypt2Blocks(b BlockX2) BlockX2 {
	var keys [numKeys128]BlockX2
	for i, k := range c.keys {
		keys[i] = BroadcastX2(k)
	}
	return chainEnc(b, keys[:])
}

// Encrypt4Blocks encrypts all four lanes of b under the same key.
func (c *AES128Enc) Encrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys128]BlockX4
	for i, k := range c.keys {
		keys[i] = BroadcastX4(k)
	}
	return chainEnc(b, keys[:])
}

// Decrypter derives the matching decryption instance from the
// expanded schedule.
func (c *AES128Enc) Decrypter() *AES128Dec {
	d := &AES128Dec{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES128Dec is the decryption direction of AES-128.
type AES128Dec struct {
	keys [numKeys128]Block
}

// NewAES128Dec expands key into a decryption schedule.
func NewAES128Dec(key [16]byte) *AES128Dec {
	return NewAES128Enc(key).Decrypter()
}

// DecryptBlock decrypts one block.
func (c *AES128Dec) DecryptBlock(b Block) Block {
	return chainDec(b, c.keys[:])
}

// Decrypt2Blocks decrypts both lanes of b under the same key.
func (c *AES128Dec) Decrypt2Blocks(b BlockX2) BlockX2 {
	var keys [numKeys128]BlockX2
	for i, k := range c.keys {
		keys[i] = BroadcastX2(k)
	}
	return chainDec(b, keys[:])
}

// Decrypt4Blocks decrypts all four lanes of b under the same key.
func (c *AES128Dec) Decrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys128]BlockX4
	for i, k := range c.keys {
		keys[i] = BroadcastX4(k)
	}
	return chainDec(b, keys[:])
}

// Encrypter derives the matching encryption instance from the
// expanded schedule.
func (c *AES128Dec) Encrypter() *AES128Enc {
	e := &AES128Enc{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}

// AES192Enc is the encryption direction of AES-192.
type AES192Enc struct {
	keys [numKeys192]Block
}

// NewAES192Enc expands key into an encryption schedule.
func NewAES192Enc(key [24]byte) *AES192Enc {
	return &AES192Enc{keys: keySchedule192(key)}
}

func (c *AES192Enc) EncryptBlock(b Block) Block {
	return chainEnc(b, c.keys[:])
}

func (c *AES192Enc) Encrypt2Blocks(b BlockX2) BlockX2 {
	var keys [numKeys192]BlockX2
	for i, k := range c.keys {
		keys[i] = BroadcastX2(k)
	}
	return chainEnc(b, keys[:])
}

func (c *AES192Enc) Encrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys192]BlockX4
	for i, k := range c.keys {
		keys[i] = BroadcastX4(k)
	}
	return chainEnc(b, keys[:])
}

func (c *AES192Enc) Decrypter() *AES192Dec {
	d := &AES192Dec{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES192Dec is the decryption direction of AES-192.
type AES192Dec struct {
	keys [numKeys192]Block
}

// NewAES192Dec expands key into a decryption schedule.
func NewAES192Dec(key [24]byte) *AES192Dec {
	return NewAES192Enc(key).Decrypter()
}

func (c *AES192Dec) DecryptBlock(b Block) Block {
	return chainDec(b, c.keys[:])
}

func (c *AES192Dec) Decrypt2Blocks(b BlockX2) BlockX2 {
	var keys [numKeys192]BlockX2
	for i, k := range c.keys {
		keys[i] = BroadcastX2(k)
	}
	return chainDec(b, keys[:])
}

func (c *AES192Dec) Decrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys192]BlockX4
	for i, k := range c.keys {
		keys[i] = BroadcastX4(k)
	}
	return chainDec(b, keys[:])
}

func (c *AES192Dec) Encrypter() *AES192Enc {
	e := &AES192Enc{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}

// AES256Enc is the encryption direction of AES-256.
type AES256Enc struct {
	keys [numKeys256]Block
}

// NewAES256Enc expands key into an encryption schedule.
func NewAES256Enc(key [32]byte) *AES256Enc {
	return &AES256Enc{keys: keySchedule256(key)}
}

func (c *AES256Enc) EncryptBlock(b Block) Block {
	return chainEnc(b, c.keys[:])
}

func (c *AES256Enc) Encrypt2Blocks(b BlockX2) BlockX2 {
	var keys [numKeys256]BlockX2
	for i, k := range c.keys {
		keys[i] = BroadcastX2(k)
	}
	return chainEnc(b, keys[:])
}

func (c *AES256Enc) Encrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys256]BlockX4
	for i, k := range c.keys {
		keys[i] = BroadcastX4(k)
	}
	return chainEnc(b, keys[:])
}

func (c *AES256Enc) Decrypter() *AES256Dec {
	d := &AES256Dec{keys: c.keys}
	decScheduleFromEnc(d.keys[:])
	return d
}

// AES256Dec is the decryption direction of AES-256.
type AES256Dec struct {
	keys [numKeys256]Block
}

// NewAES256Dec expands key into a decryption schedule.
func NewAES256Dec(key [32]byte) *AES256Dec {
	return NewAES256Enc(key).Decrypter()
}

func (c *AES256Dec) DecryptBlock(b Block) Block {
	return chainDec(b, c.keys[:])
}

func (c *AES256Dec) Decrypt2Blocks(b BlockX2) BlockX2 {
	var keys [numKeys256]BlockX2
	for i, k := range c.keys {
		keys[i] = BroadcastX2(k)
	}
	return chainDec(b, keys[:])
}

func (c *AES256Dec) Decrypt4Blocks(b BlockX4) BlockX4 {
	var keys [numKeys256]BlockX4
	for i, k := range c.keys {
		keys[i] = BroadcastX4(k)
	}
	return chainDec(b, keys[:])
}

func (c *AES256Dec) Encrypter() *AES256Enc {
	e := &AES256Enc{keys: c.keys}
	encScheduleFromDec(e.keys[:])
	return e
}
