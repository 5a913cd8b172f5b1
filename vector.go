package mldsacore

// Vector and matrix lifts of the single-polynomial primitives, grounded on
// original_source/ref/polyvec.c. A vector is a plain []Poly; its length is
// whatever the caller's Params says it should be (K or L), never checked
// here; that is the caller's contract to keep, matching the reference's
// fixed-array convention minus the compile-time size.

// AddVec sets v[i] = a[i] + b[i] for every element.
func AddVec(v, a, b []Poly) {
	for i := range v {
		v[i].Add(&a[i], &b[i])
	}
}

// SubVec sets v[i] = a[i] - b[i] for every element.
func SubVec(v, a, b []Poly) {
	for i := range v {
		v[i].Sub(&a[i], &b[i])
	}
}

// ReduceVec applies Poly.Reduce to every element.
func ReduceVec(v []Poly) {
	for i := range v {
		v[i].Reduce()
	}
}

// CAddQVec applies Poly.CAddQ to every element.
func CAddQVec(v []Poly) {
	for i := range v {
		v[i].CAddQ()
	}
}

// NTTVec applies Poly.NTT to every element.
func NTTVec(v []Poly) {
	for i := range v {
		v[i].NTT()
	}
}

// InvNTTToMontVec applies Poly.InvNTTToMont to every element.
func InvNTTToMontVec(v []Poly) {
	for i := range v {
		v[i].InvNTTToMont()
	}
}

// ChkNormVec reports whether any element of v has a coefficient of
// magnitude at least bound.
func ChkNormVec(v []Poly, bound int32) bool {
	for i := range v {
		if v[i].ChkNorm(bound) {
			return true
		}
	}
	return false
}

// ShiftLVec applies Poly.ShiftL to every element.
func ShiftLVec(v []Poly) {
	for i := range v {
		v[i].ShiftL()
	}
}

// ExpandA deterministically derives the K-by-L public matrix A from a
// 32-byte seed rho: row i, column j is UniformPoly(rho, nonce) with nonce
// encoding (i, j) as (i<<8)|j, matching the reference's ExpandA nonce
// convention (spec.md §4.6). The result is already in NTT domain.
func ExpandA(rho []byte, k, l int) [][]Poly {
	mat := make([][]Poly, k)
	for i := 0; i < k; i++ {
		mat[i] = make([]Poly, l)
		for j := 0; j < l; j++ {
			nonce := uint16(i<<8) | uint16(j)
			mat[i][j] = UniformPoly(rho, nonce)
		}
	}
	return mat
}

// MatrixPointwiseMontgomeryVec computes, for each row of mat, the
// Montgomery pointwise dot product against v, writing the K results into
// w. This is the core of both A*s1 (key generation's t computation, out
// of this core's scope but exercised by tests) and A*y (the w = A*y step
// of signing).
func MatrixPointwiseMontgomeryVec(w []Poly, mat [][]Poly, v []Poly) {
	var t Poly
	for i := range mat {
		w[i] = Poly{}
		for j := range v {
			PointwiseMontgomery(&t, &mat[i][j], &v[j])
			w[i].Add(&w[i], &t)
		}
	}
}

// MakeHintVec computes, for each coefficient of every element, the hint
// bit comparing the low bits of a0 against the high bits of a1, returning
// the hint vector and its total popcount.
func MakeHintVec(a0, a1 []Poly, gamma2 int32) (hints []Poly, popcount int32) {
	hints = make([]Poly, len(a0))
	for i := range a0 {
		for j := 0; j < N; j++ {
			h := MakeHint(a0[i][j], a1[i][j], gamma2)
			hints[i][j] = h
			popcount += h
		}
	}
	return hints, popcount
}

// UseHintVec applies UseHint element-wise, reconstructing the corrected
// high-bits vector w1 from a and the hint vector h.
func UseHintVec(w1, a, h []Poly, gamma2 int32) {
	for i := range a {
		for j := 0; j < N; j++ {
			w1[i][j] = UseHint(a[i][j], h[i][j], gamma2)
		}
	}
}

// Power2RoundVec applies Power2Round element-wise, splitting a into its
// high- and low-bits vectors.
func Power2RoundVec(a1, a0, a []Poly) {
	for i := range a {
		for j := 0; j < N; j++ {
			a1[i][j], a0[i][j] = Power2Round(a[i][j])
		}
	}
}

// DecomposeVec applies Decompose element-wise.
func DecomposeVec(a1, a0, a []Poly, gamma2 int32) {
	for i := range a {
		for j := 0; j < N; j++ {
			a1[i][j], a0[i][j] = Decompose(a[i][j], gamma2)
		}
	}
}
