package aes

// Aes128Enc is an AES-128 forward (encryption) key schedule: 11 round-key
// blocks derived from a single 128-bit user key.
type Aes128Enc struct {
	roundKeys [11]AesBlock
}

// NewAes128Enc expands a 128-bit key into its forward round-key schedule.
func NewAes128Enc(key [16]byte) Aes128Enc {
	return Aes128Enc{roundKeys: keygen128(key)}
}

// NewAes128EncFromSlice is the slice-accepting equivalent of NewAes128Enc;
// it returns a KeySizeError if key is not exactly 16 bytes.
func NewAes128EncFromSlice(key []byte) (Aes128Enc, error) {
	k, err := keyFromSlice16(key)
	if err != nil {
		return Aes128Enc{}, err
	}
	return NewAes128Enc(k), nil
}

// EncryptBlock encrypts one 128-bit block.
func (c Aes128Enc) EncryptBlock(plaintext AesBlock) AesBlock {
	return plaintext.ChainEncryptWithLast(c.roundKeys[:])
}

// EncryptBlocksX2 encrypts two independent blocks under the same schedule.
func (c Aes128Enc) EncryptBlocksX2(p AesBlockX2) AesBlockX2 {
	return p.ChainEncryptWithLast(broadcastKeysX2(c.roundKeys[:]))
}

// EncryptBlocksX4 encrypts four independent blocks under the same
// schedule.
func (c Aes128Enc) EncryptBlocksX4(p AesBlockX4) AesBlockX4 {
	return p.ChainEncryptWithLast(broadcastKeysX4(c.roundKeys[:]))
}

// Decrypter derives the matching decryption schedule without re-expanding
// the user key.
func (c Aes128Enc) Decrypter() Aes128Dec {
	var out Aes128Dec
	copy(out.roundKeys[:], decRoundKeys(c.roundKeys[:]))
	return out
}

// Aes128Dec is an AES-128 inverse (decryption) key schedule, in
// equivalent-inverse-cipher form.
type Aes128Dec struct {
	roundKeys [11]AesBlock
}

// DecryptBlock decrypts one 128-bit block.
func (c Aes128Dec) DecryptBlock(ciphertext AesBlock) AesBlock {
	return ciphertext.ChainDecryptWithLast(c.roundKeys[:])
}

// DecryptBlocksX2 decrypts two independent blocks under the same schedule.
func (c Aes128Dec) DecryptBlocksX2(ct AesBlockX2) AesBlockX2 {
	return ct.ChainDecryptWithLast(broadcastKeysX2(c.roundKeys[:]))
}

// DecryptBlocksX4 decrypts four independent blocks under the same
// schedule.
func (c Aes128Dec) DecryptBlocksX4(ct AesBlockX4) AesBlockX4 {
	return ct.ChainDecryptWithLast(broadcastKeysX4(c.roundKeys[:]))
}

// Encrypter derives the matching encryption schedule without re-expanding
// the user key.
func (c Aes128Dec) Encrypter() Aes128Enc {
	var out Aes128Enc
	copy(out.roundKeys[:], encRoundKeys(c.roundKeys[:]))
	return out
}

// Aes128 bundles both directions of an AES-128 key schedule, expanded once
// from a single user key.
type Aes128 struct {
	Enc Aes128Enc
	Dec Aes128Dec
}

// NewAes128 expands a 128-bit key into both the forward and inverse
// schedules.
func NewAes128(key [16]byte) Aes128 {
	enc := NewAes128Enc(key)
	return Aes128{Enc: enc, Dec: enc.Decrypter()}
}

// NewAes128FromSlice is the slice-accepting equivalent of NewAes128.
func NewAes128FromSlice(key []byte) (Aes128, error) {
	k, err := keyFromSlice16(key)
	if err != nil {
		return Aes128{}, err
	}
	return NewAes128(k), nil
}

func (c Aes128) EncryptBlock(plaintext AesBlock) AesBlock { return c.Enc.EncryptBlock(plaintext) }
func (c Aes128) DecryptBlock(ciphertext AesBlock) AesBlock {
	return c.Dec.DecryptBlock(ciphertext)
}

// Aes128EncX2 is a ×2 forward schedule built from two independent 128-bit
// keys, one per lane (distinct from EncryptBlocksX2 above, which reuses a
// single schedule across both lanes).
type Aes128EncX2 struct {
	Lo, Hi Aes128Enc
}

// NewAes128EncX2 expands two independent 128-bit keys, one per lane.
func NewAes128EncX2(keyLo, keyHi [16]byte) Aes128EncX2 {
	return Aes128EncX2{Lo: NewAes128Enc(keyLo), Hi: NewAes128Enc(keyHi)}
}

// EncryptBlocks encrypts a ×2 vector, each lane under its own key.
func (c Aes128EncX2) EncryptBlocks(p AesBlockX2) AesBlockX2 {
	return p.ChainEncryptWithLast(zipKeysX2(c.Lo.roundKeys[:], c.Hi.roundKeys[:]))
}

// Decrypter derives the matching per-lane ×2 decryption schedule.
func (c Aes128EncX2) Decrypter() Aes128DecX2 {
	return Aes128DecX2{Lo: c.Lo.Decrypter(), Hi: c.Hi.Decrypter()}
}

// Aes128DecX2 is a ×2 inverse schedule built from two independent 128-bit
// keys, one per lane.
type Aes128DecX2 struct {
	Lo, Hi Aes128Dec
}

// DecryptBlocks decrypts a ×2 vector, each lane under its own key.
func (c Aes128DecX2) DecryptBlocks(ct AesBlockX2) AesBlockX2 {
	return ct.ChainDecryptWithLast(zipKeysX2(c.Lo.roundKeys[:], c.Hi.roundKeys[:]))
}

// Aes128EncX4 is a ×4 forward schedule built from four independent
// 128-bit keys, one per lane.
type Aes128EncX4 struct {
	B0, B1, B2, B3 Aes128Enc
}

// NewAes128EncX4 expands four independent 128-bit keys, one per lane.
func NewAes128EncX4(k0, k1, k2, k3 [16]byte) Aes128EncX4 {
	return Aes128EncX4{
		B0: NewAes128Enc(k0), B1: NewAes128Enc(k1),
		B2: NewAes128Enc(k2), B3: NewAes128Enc(k3),
	}
}

// EncryptBlocks encrypts a ×4 vector, each lane under its own key.
func (c Aes128EncX4) EncryptBlocks(p AesBlockX4) AesBlockX4 {
	return p.ChainEncryptWithLast(zipKeysX4(
		c.B0.roundKeys[:], c.B1.roundKeys[:], c.B2.roundKeys[:], c.B3.roundKeys[:]))
}

// Decrypter derives the matching per-lane ×4 decryption schedule.
func (c Aes128EncX4) Decrypter() Aes128DecX4 {
	return Aes128DecX4{
		B0: c.B0.Decrypter(), B1: c.B1.Decrypter(),
		B2: c.B2.Decrypter(), B3: c.B3.Decrypter(),
	}
}

// Aes128DecX4 is a ×4 inverse schedule built from four independent
// 128-bit keys, one per lane.
type Aes128DecX4 struct {
	B0, B1, B2, B3 Aes128Dec
}

// DecryptBlocks decrypts a ×4 vector, each lane under its own key.
func (c Aes128DecX4) DecryptBlocks(ct AesBlockX4) AesBlockX4 {
	return ct.ChainDecryptWithLast(zipKeysX4(
		c.B0.roundKeys[:], c.B1.roundKeys[:], c.B2.roundKeys[:], c.B3.roundKeys[:]))
}
