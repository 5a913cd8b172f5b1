package mldsacore

// Decomposition, hint, and norm-check primitives from spec.md §4.4,
// grounded on the teacher's compress.go but generalized to take gamma2
// as a runtime parameter instead of branching on a compile-time constant.
// All coefficients here are taken as representatives in [0, Q), per
// spec.md §4.4.

// Power2Round splits a into (a1, a0) such that a1*2^D + a0 ≡ a (mod Q),
// with a0 in (-2^(D-1), 2^(D-1)]. Implements spec.md §4.4's power2round.
func Power2Round(a int32) (a1, a0 int32) {
	a1 = (a + (1 << (D - 1)) - 1) >> D
	a0 = a - (a1 << D)
	return a1, a0
}

// Decompose splits a into (a1, a0) where a ≡ a1*alpha + a0 (mod Q) and
// alpha = 2*gamma2, with a0 centered in (-gamma2, gamma2]. The one
// exception is the top range where a1 would equal (Q-1)/alpha: there a1
// is set to 0 and a0 = a - Q, which lies in [-gamma2, 0). gamma2 must be
// one of the two values a Params can produce; other values are a caller
// bug. Implements spec.md §4.4's decompose.
func Decompose(a, gamma2 int32) (a1, a0 int32) {
	a1 = (a + 127) >> 7
	switch gamma2 {
	case (Q - 1) / 32:
		a1 = (a1*1025 + (1 << 21)) >> 22
		a1 &= 15
	case (Q - 1) / 88:
		a1 = (a1*11275 + (1 << 23)) >> 24
		a1 ^= ((43 - a1) >> 31) & a1
	}

	a0 = a - a1*2*gamma2
	a0 -= (((Q-1)/2 - a0) >> 31) & Q
	return a1, a0
}

// MakeHint returns 1 if the low bits a0 (from Decompose) are large enough
// that the corresponding high bits a1 could flip under a small
// perturbation, 0 otherwise. Implements spec.md §4.4's make_hint.
func MakeHint(a0, a1, gamma2 int32) int32 {
	if a0 > gamma2 || a0 < -gamma2 || (a0 == -gamma2 && a1 != 0) {
		return 1
	}
	return 0
}

// UseHint recovers the correct high bits of a given a hint bit h produced
// by MakeHint. Implements spec.md §4.4's use_hint.
func UseHint(a, h, gamma2 int32) int32 {
	a1, a0 := Decompose(a, gamma2)
	if h == 0 {
		return a1
	}

	if gamma2 == (Q-1)/32 {
		if a0 > 0 {
			return (a1 + 1) & 15
		}
		return (a1 - 1) & 15
	}

	// gamma2 == (Q-1)/88, m = 44
	if a0 > 0 {
		if a1 == 43 {
			return 0
		}
		return a1 + 1
	}
	if a1 == 0 {
		return 43
	}
	return a1 - 1
}
