package aes

// Aes256Enc is an AES-256 forward key schedule: 15 round-key blocks
// derived from a single 256-bit user key.
type Aes256Enc struct {
	roundKeys [15]AesBlock
}

// NewAes256Enc expands a 256-bit key into its forward round-key schedule.
func NewAes256Enc(key [32]byte) Aes256Enc {
	return Aes256Enc{roundKeys: keygen256(key)}
}

// NewAes256EncFromSlice is the slice-accepting equivalent of
// NewAes256Enc; it returns a KeySizeError if key is not exactly 32 bytes.
func NewAes256EncFromSlice(key []byte) (Aes256Enc, error) {
	k, err := keyFromSlice32(key)
	if err != nil {
		return Aes256Enc{}, err
	}
	return NewAes256Enc(k), nil
}

func (c Aes256Enc) EncryptBlock(plaintext AesBlock) AesBlock {
	return plaintext.ChainEncryptWithLast(c.roundKeys[:])
}

func (c Aes256Enc) EncryptBlocksX2(p AesBlockX2) AesBlockX2 {
	return p.ChainEncryptWithLast(broadcastKeysX2(c.roundKeys[:]))
}

func (c Aes256Enc) EncryptBlocksX4(p AesBlockX4) AesBlockX4 {
	return p.ChainEncryptWithLast(broadcastKeysX4(c.roundKeys[:]))
}

func (c Aes256Enc) Decrypter() Aes256Dec {
	var out Aes256Dec
	copy(out.roundKeys[:], decRoundKeys(c.roundKeys[:]))
	return out
}

// Aes256Dec is an AES-256 inverse key schedule, in equivalent-inverse-
// cipher form.
type Aes256Dec struct {
	roundKeys [15]AesBlock
}

func (c Aes256Dec) DecryptBlock(ciphertext AesBlock) AesBlock {
	return ciphertext.ChainDecryptWithLast(c.roundKeys[:])
}

func (c Aes256Dec) DecryptBlocksX2(ct AesBlockX2) AesBlockX2 {
	return ct.ChainDecryptWithLast(broadcastKeysX2(c.roundKeys[:]))
}

func (c Aes256Dec) DecryptBlocksX4(ct AesBlockX4) AesBlockX4 {
	return ct.ChainDecryptWithLast(broadcastKeysX4(c.roundKeys[:]))
}

func (c Aes256Dec) Encrypter() Aes256Enc {
	var out Aes256Enc
	copy(out.roundKeys[:], encRoundKeys(c.roundKeys[:]))
	return out
}

// Aes256 bundles both directions of an AES-256 key schedule.
type Aes256 struct {
	Enc Aes256Enc
	Dec Aes256Dec
}

func NewAes256(key [32]byte) Aes256 {
	enc := NewAes256Enc(key)
	return Aes256{Enc: enc, Dec: enc.Decrypter()}
}

func NewAes256FromSlice(key []byte) (Aes256, error) {
	k, err := keyFromSlice32(key)
	if err != nil {
		return Aes256{}, err
	}
	return NewAes256(k), nil
}

func (c Aes256) EncryptBlock(plaintext AesBlock) AesBlock { return c.Enc.EncryptBlock(plaintext) }
func (c Aes256) DecryptBlock(ciphertext AesBlock) AesBlock {
	return c.Dec.DecryptBlock(ciphertext)
}

// Aes256EncX2 is a ×2 forward schedule built from two independent
// 256-bit keys, one per lane.
type Aes256EncX2 struct {
	Lo, Hi Aes256Enc
}

func NewAes256EncX2(keyLo, keyHi [32]byte) Aes256EncX2 {
	return Aes256EncX2{Lo: NewAes256Enc(keyLo), Hi: NewAes256Enc(keyHi)}
}

func (c Aes256EncX2) EncryptBlocks(p AesBlockX2) AesBlockX2 {
	return p.ChainEncryptWithLast(zipKeysX2(c.Lo.roundKeys[:], c.Hi.roundKeys[:]))
}

func (c Aes256EncX2) Decrypter() Aes256DecX2 {
	return Aes256DecX2{Lo: c.Lo.Decrypter(), Hi: c.Hi.Decrypter()}
}

// Aes256DecX2 is a ×2 inverse schedule built from two independent
// 256-bit keys, one per lane.
type Aes256DecX2 struct {
	Lo, Hi Aes256Dec
}

func (c Aes256DecX2) DecryptBlocks(ct AesBlockX2) AesBlockX2 {
	return ct.ChainDecryptWithLast(zipKeysX2(c.Lo.roundKeys[:], c.Hi.roundKeys[:]))
}

// Aes256EncX4 is a ×4 forward schedule built from four independent
// 256-bit keys, one per lane.
type Aes256EncX4 struct {
	B0, B1, B2, B3 Aes256Enc
}

func NewAes256EncX4(k0, k1, k2, k3 [32]byte) Aes256EncX4 {
	return Aes256EncX4{
		B0: NewAes256Enc(k0), B1: NewAes256Enc(k1),
		B2: NewAes256Enc(k2), B3: NewAes256Enc(k3),
	}
}

func (c Aes256EncX4) EncryptBlocks(p AesBlockX4) AesBlockX4 {
	return p.ChainEncryptWithLast(zipKeysX4(
		c.B0.roundKeys[:], c.B1.roundKeys[:], c.B2.roundKeys[:], c.B3.roundKeys[:]))
}

func (c Aes256EncX4) Decrypter() Aes256DecX4 {
	return Aes256DecX4{
		B0: c.B0.Decrypter(), B1: c.B1.Decrypter(),
		B2: c.B2.Decrypter(), B3: c.B3.Decrypter(),
	}
}

// Aes256DecX4 is a ×4 inverse schedule built from four independent
// 256-bit keys, one per lane.
type Aes256DecX4 struct {
	B0, B1, B2, B3 Aes256Dec
}

func (c Aes256DecX4) DecryptBlocks(ct AesBlockX4) AesBlockX4 {
	return ct.ChainDecryptWithLast(zipKeysX4(
		c.B0.roundKeys[:], c.B1.roundKeys[:], c.B2.roundKeys[:], c.B3.roundKeys[:]))
}
