package mldsacore

import "encoding/binary"

// This file implements the Keccak-f[1600] permutation and the sponge
// construction (absorb/squeeze/finalize) that SHAKE128, SHAKE256, SHA3-256
// and SHA3-512 are built on. It is a from-scratch, portable implementation
// grounded in the public-domain reference algorithm in
// _examples/original_source/ref/fips202.c (round constants, rate/capacity
// split, domain-separation bytes, and the absorb/squeeze byte-cursor state
// machine) rather than a port of its 2-rounds-unrolled C.
//
// Every ML-DSA sampler in sample.go is a rejection-sampling consumer of one
// of the two SHAKE XOFs exposed here.

const (
	shake128Rate = 168
	shake256Rate = 136
	sha3_256Rate = 136
	sha3_512Rate = 72

	shakeDomain = 0x1F
	sha3Domain  = 0x06

	keccakRounds = 24
)

// roundConstants are the 24 Keccak-f[1600] round constants (iota step).
var roundConstants = [keccakRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets[i] is the rho-step left-rotation amount applied to the
// lane that pi moves into position rhoPiLane[i].
var rotationOffsets = [24]uint{
	1, 3, 6, 10, 15, 21,
	28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43,
	62, 18, 39, 61, 20, 44,
}

// rhoPiLane[i] is the destination lane index (0..24, row-major x+5y) for
// the combined rho/pi step, paired with rotationOffsets[i].
var rhoPiLane = [24]int{
	10, 7, 11, 17, 18, 3,
	5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2,
	20, 14, 22, 9, 6, 1,
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}

// keccakF1600 applies the 24-round Keccak-f[1600] permutation to the 25
// 64-bit lanes of state in place.
func keccakF1600(a *[25]uint64) {
	var bc [5]uint64

	for round := 0; round < keccakRounds; round++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[i+j] ^= t
			}
		}

		// rho + pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := rhoPiLane[i]
			bc[0] = a[j]
			a[j] = rotl64(t, rotationOffsets[i])
			t = bc[0]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] = bc[i] ^ ((^bc[(i+1)%5]) & bc[(i+2)%5])
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}

// sponge is a Keccak sponge state: 25 lanes plus a byte cursor into the
// current rate window. Created fresh per sampling call; owned exclusively
// by its caller.
type sponge struct {
	a      [25]uint64
	rate   int
	domain byte
	pos    int
	// squeezing becomes true once finalize has run; absorbing after that
	// is a caller error this type does not defend against (spec.md §4.1:
	// "callers must not absorb after squeezing begins").
	squeezing bool
}

func newSponge(rate int, domain byte) *sponge {
	return &sponge{rate: rate, domain: domain}
}

// absorb XORs p into the state at the current cursor, permuting and
// resetting the cursor each time it reaches the rate.
func (s *sponge) absorb(p []byte) {
	for len(p) > 0 {
		n := s.rate - s.pos
		if n > len(p) {
			n = len(p)
		}
		for i := 0; i < n; i++ {
			lane := (s.pos + i) / 8
			shift := uint((s.pos + i) % 8 * 8)
			s.a[lane] ^= uint64(p[i]) << shift
		}
		p = p[n:]
		s.pos += n
		if s.pos == s.rate {
			keccakF1600(&s.a)
			s.pos = 0
		}
	}
}

// absorbOnce initializes the state from scratch, absorbs p, and finalizes
// in a single pass: the fast path used when the whole input is available
// up front (the one-shot Shake128/Shake256/Sha3_256/Sha3_512 wrappers use
// this form; the samplers in sample.go absorb incrementally instead).
func (s *sponge) absorbOnce(p []byte) {
	s.a = [25]uint64{}
	s.pos = 0
	s.absorb(p)
	s.finalize()
}

// finalize XORs the domain-separation byte at the current cursor and sets
// the top bit of the last byte of the rate window, then leaves the state
// ready to squeeze. This applies uniformly whether or not the last absorb
// call landed exactly on a rate boundary (pos == 0): that is simply the
// pad applied to a fresh block, per spec.md §9's open-question resolution.
func (s *sponge) finalize() {
	lane := s.pos / 8
	shift := uint(s.pos % 8 * 8)
	s.a[lane] ^= uint64(s.domain) << shift

	lastLane := (s.rate - 1) / 8
	s.a[lastLane] ^= uint64(1) << 63

	s.pos = s.rate
	s.squeezing = true
}

// squeeze emits len(out) bytes from the state at the cursor, permuting and
// resetting the cursor whenever it exhausts the rate.
func (s *sponge) squeeze(out []byte) {
	for len(out) > 0 {
		if s.pos == s.rate {
			keccakF1600(&s.a)
			s.pos = 0
		}
		n := s.rate - s.pos
		if n > len(out) {
			n = len(out)
		}
		for i := 0; i < n; i++ {
			lane := (s.pos + i) / 8
			shift := uint((s.pos + i) % 8 * 8)
			out[i] = byte(s.a[lane] >> shift)
		}
		out = out[n:]
		s.pos += n
	}
}

// squeezeBlocks emits len(out)/rate full rate-sized blocks, always
// permuting before emitting (the cursor is always at rate after finalize,
// so the first call's permute produces the first output block). len(out)
// must be a multiple of the rate.
func (s *sponge) squeezeBlocks(out []byte) {
	for len(out) >= s.rate {
		keccakF1600(&s.a)
		for i := 0; i < s.rate/8; i++ {
			binary.LittleEndian.PutUint64(out[8*i:], s.a[i])
		}
		out = out[s.rate:]
	}
	s.pos = s.rate
}

// Shake128 is the one-shot SHAKE128 XOF: it writes len(out) bytes derived
// from in into out.
func Shake128(out, in []byte) {
	shakeOneShot(out, in, shake128Rate)
}

// Shake256 is the one-shot SHAKE256 XOF.
func Shake256(out, in []byte) {
	shakeOneShot(out, in, shake256Rate)
}

func shakeOneShot(out, in []byte, rate int) {
	s := newSponge(rate, shakeDomain)
	s.absorbOnce(in)

	nblocks := len(out) / rate
	if nblocks > 0 {
		s.squeezeBlocks(out[:nblocks*rate])
	}
	s.squeeze(out[nblocks*rate:])
}

// Sha3_256 returns the 32-byte SHA3-256 digest of in.
func Sha3_256(in []byte) [32]byte {
	s := newSponge(sha3_256Rate, sha3Domain)
	s.absorbOnce(in)
	var out [32]byte
	s.squeeze(out[:])
	return out
}

// Sha3_512 returns the 64-byte SHA3-512 digest of in.
func Sha3_512(in []byte) [64]byte {
	s := newSponge(sha3_512Rate, sha3Domain)
	s.absorbOnce(in)
	var out [64]byte
	s.squeeze(out[:])
	return out
}

// shake128State and shake256State wrap sponge with the fixed rate baked
// in, exposing the incremental init/absorb/finalize/squeeze/squeezeblocks
// contract from spec.md §4.1 for samplers that need to interleave absorbs
// (e.g. absorbing a seed and then a nonce separately) or pull output one
// block at a time.
type shake128State struct{ s *sponge }
type shake256State struct{ s *sponge }

func newShake128() *shake128State { return &shake128State{s: newSponge(shake128Rate, shakeDomain)} }
func newShake256() *shake256State { return &shake256State{s: newSponge(shake256Rate, shakeDomain)} }

func (h *shake128State) absorb(p []byte)      { h.s.absorb(p) }
func (h *shake128State) finalize()            { h.s.finalize() }
func (h *shake128State) squeeze(out []byte)   { h.s.squeeze(out) }
func (h *shake128State) squeezeBlocks(b []byte) { h.s.squeezeBlocks(b) }

func (h *shake256State) absorb(p []byte)      { h.s.absorb(p) }
func (h *shake256State) finalize()            { h.s.finalize() }
func (h *shake256State) squeeze(out []byte)   { h.s.squeeze(out) }
func (h *shake256State) squeezeBlocks(b []byte) { h.s.squeezeBlocks(b) }
