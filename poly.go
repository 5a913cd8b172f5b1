package mldsacore

// Poly is a polynomial in the ring Z_Q[x]/(x^N+1): N signed coefficients,
// each representable in a 32-bit signed range. Whether a given Poly is in
// "normal" or "NTT" domain is a logical tag the caller tracks; the type
// itself carries no such distinction (spec.md §3). All operations below
// permit aliasing the output with either input, matching the teacher's
// in-place style.
type Poly [N]int32

// Add sets p = a + b, coefficient-wise, with no reduction.
func (p *Poly) Add(a, b *Poly) {
	for i := range p {
		p[i] = a[i] + b[i]
	}
}

// Sub sets p = a - b, coefficient-wise, with no reduction.
func (p *Poly) Sub(a, b *Poly) {
	for i := range p {
		p[i] = a[i] - b[i]
	}
}

// Reduce applies centralReduce to every coefficient, folding magnitudes
// down to spec.md §4.3's "reduce" bound (≤ 6283008 in magnitude for inputs
// that started below the documented NTT output bound).
func (p *Poly) Reduce() {
	for i := range p {
		p[i] = centralReduce(p[i])
	}
}

// CAddQ folds every negative coefficient into [0, Q) by adding Q.
func (p *Poly) CAddQ() {
	for i := range p {
		p[i] = caddq(p[i])
	}
}

// ShiftL multiplies every coefficient by 2^D. Callers must ensure
// coefficients are below 2^(31-D) beforehand (spec.md §4.3).
func (p *Poly) ShiftL() {
	for i := range p {
		p[i] <<= D
	}
}

// PointwiseMontgomery sets c[i] = montgomeryReduce(a[i]*b[i]) for every
// coefficient, the NTT-domain multiplication primitive everything else
// in the ring builds on.
func PointwiseMontgomery(c, a, b *Poly) {
	for i := range c {
		c[i] = montgomeryReduce(int64(a[i]) * int64(b[i]))
	}
}

// ChkNorm reports whether any coefficient of p has magnitude at least
// bound. Any bound above (Q-1)/8 is reported as violated regardless of
// the coefficients. It assumes p has already been centrally reduced, so each
// coefficient's magnitude is just its absolute value (spec.md §4.3's
// "reduce" bound keeps every coefficient well inside int32 range). It
// runs in constant time: no branch depends on coefficient values, only
// on the final OR-accumulated mask (spec.md §4.4, §5, §9).
func (p *Poly) ChkNorm(bound int32) bool {
	if bound > (Q-1)/8 {
		return true
	}

	var violated int32
	for _, c := range p {
		sign := c >> 31
		abs := c - (sign & (2 * c))
		// high bit of (bound-1-abs) is set iff abs >= bound.
		violated |= (bound - 1 - abs) >> 31
	}
	return violated != 0
}
