package mldsacore

// Montgomery and central reduction primitives operating on the signed
// int32 representative domain spec.md §4.3 describes, adapted from the
// teacher's always-reduced uint32 field type (field.go in KarpelesLab-mldsa)
// down to the bounds the reference NTT and packing code actually rely on.

// montgomeryReduce returns r such that r*2^32 ≡ a (mod Q) and |r| < Q,
// for |a| < Q*2^31. QInv = Q^-1 mod 2^32, so a - t*Q is divisible by 2^32
// (spec.md §4.3).
func montgomeryReduce(a int64) int32 {
	t := int32(a) * QInv
	r := (a - int64(t)*Q) >> 32
	return int32(r)
}

// centralReduce returns r ≡ a (mod Q) with |r| bounded close to Q/2, per
// spec.md §4.3's "reduce" operation.
func centralReduce(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*Q
}

// caddq adds Q to a negative coefficient, folding it into [0, Q).
func caddq(a int32) int32 {
	a += (a >> 31) & Q
	return a
}
