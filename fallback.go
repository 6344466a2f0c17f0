package aes

// fallbackPreEnc, and its siblings below, pick between the table-driven and
// bit-sliced software backends for any platform (or any purego build) that
// has no hardware AES instruction available. Both amd64/arm64's runtime
// no-AES-NI/no-crypto-extension path and every other GOARCH route through
// here, so the constanttime tag has one behavior regardless of what
// hardware happens to be present.

func fallbackPreEnc(b, k AesBlock) AesBlock {
	if constantTimeFallback {
		return b.bitslicePreEnc(k)
	}
	return b.softPreEnc(k)
}

func fallbackEncLast(b, k AesBlock) AesBlock {
	if constantTimeFallback {
		return b.bitsliceEncLast(k)
	}
	return b.softEncLast(k)
}

func fallbackPreDec(b, k AesBlock) AesBlock {
	if constantTimeFallback {
		return b.bitslicePreDec(k)
	}
	return b.softPreDec(k)
}

func fallbackDecLast(b, k AesBlock) AesBlock {
	if constantTimeFallback {
		return b.bitsliceDecLast(k)
	}
	return b.softDecLast(k)
}

func fallbackIMC(b AesBlock) AesBlock {
	if constantTimeFallback {
		return b.bitsliceIMC()
	}
	return b.softIMC()
}
