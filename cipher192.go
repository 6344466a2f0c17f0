package aes

// Aes192Enc is an AES-192 forward key schedule: 13 round-key blocks
// derived from a single 192-bit user key.
type Aes192Enc struct {
	roundKeys [13]AesBlock
}

// NewAes192Enc expands a 192-bit key into its forward round-key schedule.
func NewAes192Enc(key [24]byte) Aes192Enc {
	return Aes192Enc{roundKeys: keygen192(key)}
}

// NewAes192EncFromSlice is the slice-accepting equivalent of
// NewAes192Enc; it returns a KeySizeError if key is not exactly 24 bytes.
func NewAes192EncFromSlice(key []byte) (Aes192Enc, error) {
	k, err := keyFromSlice24(key)
	if err != nil {
		return Aes192Enc{}, err
	}
	return NewAes192Enc(k), nil
}

func (c Aes192Enc) EncryptBlock(plaintext AesBlock) AesBlock {
	return plaintext.ChainEncryptWithLast(c.roundKeys[:])
}

func (c Aes192Enc) EncryptBlocksX2(p AesBlockX2) AesBlockX2 {
	return p.ChainEncryptWithLast(broadcastKeysX2(c.roundKeys[:]))
}

func (c Aes192Enc) EncryptBlocksX4(p AesBlockX4) AesBlockX4 {
	return p.ChainEncryptWithLast(broadcastKeysX4(c.roundKeys[:]))
}

func (c Aes192Enc) Decrypter() Aes192Dec {
	var out Aes192Dec
	copy(out.roundKeys[:], decRoundKeys(c.roundKeys[:]))
	return out
}

// Aes192Dec is an AES-192 inverse key schedule, in equivalent-inverse-
// cipher form.
type Aes192Dec struct {
	roundKeys [13]AesBlock
}

func (c Aes192Dec) DecryptBlock(ciphertext AesBlock) AesBlock {
	return ciphertext.ChainDecryptWithLast(c.roundKeys[:])
}

func (c Aes192Dec) DecryptBlocksX2(ct AesBlockX2) AesBlockX2 {
	return ct.ChainDecryptWithLast(broadcastKeysX2(c.roundKeys[:]))
}

func (c Aes192Dec) DecryptBlocksX4(ct AesBlockX4) AesBlockX4 {
	return ct.ChainDecryptWithLast(broadcastKeysX4(c.roundKeys[:]))
}

func (c Aes192Dec) Encrypter() Aes192Enc {
	var out Aes192Enc
	copy(out.roundKeys[:], encRoundKeys(c.roundKeys[:]))
	return out
}

// Aes192 bundles both directions of an AES-192 key schedule.
type Aes192 struct {
	Enc Aes192Enc
	Dec Aes192Dec
}

func NewAes192(key [24]byte) Aes192 {
	enc := NewAes192Enc(key)
	return Aes192{Enc: enc, Dec: enc.Decrypter()}
}

func NewAes192FromSlice(key []byte) (Aes192, error) {
	k, err := keyFromSlice24(key)
	if err != nil {
		return Aes192{}, err
	}
	return NewAes192(k), nil
}

func (c Aes192) EncryptBlock(plaintext AesBlock) AesBlock { return c.Enc.EncryptBlock(plaintext) }
func (c Aes192) DecryptBlock(ciphertext AesBlock) AesBlock {
	return c.Dec.DecryptBlock(ciphertext)
}

// Aes192EncX2 is a ×2 forward schedule built from two independent
// 192-bit keys, one per lane.
type Aes192EncX2 struct {
	Lo, Hi Aes192Enc
}

func NewAes192EncX2(keyLo, keyHi [24]byte) Aes192EncX2 {
	return Aes192EncX2{Lo: NewAes192Enc(keyLo), Hi: NewAes192Enc(keyHi)}
}

func (c Aes192EncX2) EncryptBlocks(p AesBlockX2) AesBlockX2 {
	return p.ChainEncryptWithLast(zipKeysX2(c.Lo.roundKeys[:], c.Hi.roundKeys[:]))
}

func (c Aes192EncX2) Decrypter() Aes192DecX2 {
	return Aes192DecX2{Lo: c.Lo.Decrypter(), Hi: c.Hi.Decrypter()}
}

// Aes192DecX2 is a ×2 inverse schedule built from two independent
// 192-bit keys, one per lane.
type Aes192DecX2 struct {
	Lo, Hi Aes192Dec
}

func (c Aes192DecX2) DecryptBlocks(ct AesBlockX2) AesBlockX2 {
	return ct.ChainDecryptWithLast(zipKeysX2(c.Lo.roundKeys[:], c.Hi.roundKeys[:]))
}

// Aes192EncX4 is a ×4 forward schedule built from four independent
// 192-bit keys, one per lane.
type Aes192EncX4 struct {
	B0, B1, B2, B3 Aes192Enc
}

func NewAes192EncX4(k0, k1, k2, k3 [24]byte) Aes192EncX4 {
	return Aes192EncX4{
		B0: NewAes192Enc(k0), B1: NewAes192Enc(k1),
		B2: NewAes192Enc(k2), B3: NewAes192Enc(k3),
	}
}

func (c Aes192EncX4) EncryptBlocks(p AesBlockX4) AesBlockX4 {
	return p.ChainEncryptWithLast(zipKeysX4(
		c.B0.roundKeys[:], c.B1.roundKeys[:], c.B2.roundKeys[:], c.B3.roundKeys[:]))
}

func (c Aes192EncX4) Decrypter() Aes192DecX4 {
	return Aes192DecX4{
		B0: c.B0.Decrypter(), B1: c.B1.Decrypter(),
		B2: c.B2.Decrypter(), B3: c.B3.Decrypter(),
	}
}

// Aes192DecX4 is a ×4 inverse schedule built from four independent
// 192-bit keys, one per lane.
type Aes192DecX4 struct {
	B0, B1, B2, B3 Aes192Dec
}

func (c Aes192DecX4) DecryptBlocks(ct AesBlockX4) AesBlockX4 {
	return ct.ChainDecryptWithLast(zipKeysX4(
		c.B0.roundKeys[:], c.B1.roundKeys[:], c.B2.roundKeys[:], c.B3.roundKeys[:]))
}
