package mldsacore

// Rejection-sampling polynomial generators from spec.md §4.2, grounded on
// the teacher's sample.go but re-pointed at the sponge types in keccak.go
// instead of crypto/sha3, and generalized to take eta/gamma1/tau as
// runtime parameters.

// UniformPoly deterministically derives a polynomial with coefficients
// uniform in [0, Q) from a 32-byte seed and a nonce, by rejection-sampling
// 23-bit chunks out of SHAKE128(seed || nonce). This is ExpandA's
// per-entry sampler: the result is used directly as a matrix entry in NTT
// domain, never passed through NTT (spec.md §4.6).
func UniformPoly(rho []byte, nonce uint16) Poly {
	h := newShake128()
	h.absorb(rho)
	h.absorb([]byte{byte(nonce), byte(nonce >> 8)})
	h.finalize()

	var buf [shake128Rate]byte
	var p Poly
	j := 0
	for {
		h.squeezeBlocks(buf[:])
		for i := 0; i+3 <= len(buf) && j < N; i += 3 {
			d := uint32(buf[i]) | uint32(buf[i+1])<<8 | uint32(buf[i+2]&0x7F)<<16
			if d < Q {
				p[j] = int32(d)
				j++
			}
		}
		if j >= N {
			return p
		}
	}
}

// UniformEtaPoly deterministically derives a polynomial with coefficients
// uniform in [-eta, eta] from a seed and nonce, by rejection-sampling
// nibbles out of SHAKE256(seed || nonce). eta must be 2 or 4.
func UniformEtaPoly(seed []byte, nonce uint16, eta int32) Poly {
	h := newShake256()
	h.absorb(seed)
	h.absorb([]byte{byte(nonce), byte(nonce >> 8)})
	h.finalize()

	var buf [shake256Rate]byte
	var p Poly
	j := 0
	offset := len(buf)
	for j < N {
		if offset >= len(buf) {
			h.squeezeBlocks(buf[:])
			offset = 0
		}
		z0 := buf[offset] & 0x0F
		z1 := buf[offset] >> 4
		offset++

		if eta == 2 {
			if z0 < 15 {
				p[j] = 2 - int32(z0%5)
				j++
			}
			if j < N && z1 < 15 {
				p[j] = 2 - int32(z1%5)
				j++
			}
		} else {
			if z0 <= 8 {
				p[j] = 4 - int32(z0)
				j++
			}
			if j < N && z1 <= 8 {
				p[j] = 4 - int32(z1)
				j++
			}
		}
	}
	return p
}

// UniformGamma1Poly deterministically derives a polynomial with
// coefficients in (-gamma1, gamma1] from a seed and nonce: the mask
// vector y sampler behind ExpandMask. It squeezes exactly the packed
// size for the given width and unpacks it with the same bit layout
// PackZ/UnpackZ use for z in a signature (spec.md §4.2, §4.5).
func UniformGamma1Poly(seed []byte, nonce uint16, gamma1 int32) Poly {
	h := newShake256()
	h.absorb(seed)
	h.absorb([]byte{byte(nonce), byte(nonce >> 8)})
	h.finalize()

	var buf [640]byte // big enough for either width (576 or 640 bytes)
	size := N * 18 / 8
	if gamma1 == 1<<19 {
		size = N * 20 / 8
	}
	h.squeeze(buf[:size])
	return UnpackZ(buf[:size], gamma1)
}

// ChallengePoly deterministically derives a sparse polynomial with
// exactly tau coefficients set to +1 or -1 (the rest zero) from a
// challenge seed, via SHAKE256 and a Fisher-Yates-style shuffle of
// sign/position bits (spec.md §4.2's SampleInBall).
func ChallengePoly(seed []byte, tau int32) Poly {
	h := newShake256()
	h.absorb(seed)
	h.finalize()

	var buf [shake256Rate]byte
	h.squeezeBlocks(buf[:])

	var signs uint64
	for i := 0; i < 8; i++ {
		signs |= uint64(buf[i]) << (8 * i)
	}
	offset := 8

	var p Poly
	for i := N - int(tau); i < N; i++ {
		var j byte
		for {
			if offset >= len(buf) {
				h.squeezeBlocks(buf[:])
				offset = 0
			}
			j = buf[offset]
			offset++
			if int(j) <= i {
				break
			}
		}
		p[i] = p[j]
		if signs&1 == 1 {
			p[j] = -1
		} else {
			p[j] = 1
		}
		signs >>= 1
	}
	return p
}
