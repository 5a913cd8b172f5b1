package mldsacore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMontgomeryReduceRoundTrip(t *testing.T) {
	// 2^64 mod Q: one montgomeryReduce of a*montR2 lifts a plain
	// representative into Montgomery form (a*2^32 mod Q).
	const montR2 = 2365951

	for _, a := range []int32{0, 1, -1, Q - 1, -(Q - 1), 12345, -12345} {
		lifted := montgomeryReduce(int64(a) * montR2)
		back := montgomeryReduce(int64(lifted))
		require.Equal(t, (int64(a)%Q+Q)%Q, (int64(centralReduce(back))%Q+Q)%Q,
			"round trip through Montgomery form must preserve residue for a=%d", a)
	}
}

func TestCentralReduceStaysCongruent(t *testing.T) {
	for _, a := range []int32{0, Q, -Q, 2 * Q, -2*Q + 5, 1 << 30, -(1 << 30)} {
		r := centralReduce(a)
		require.Equal(t, int64(0), ((int64(a)-int64(r))%Q+Q)%Q,
			"centralReduce(%d) = %d is not congruent mod Q", a, r)
	}
}

func TestCaddqFoldsNegativesIntoRange(t *testing.T) {
	require.Equal(t, int32(Q-1), caddq(-1))
	require.Equal(t, int32(0), caddq(0))
	require.Equal(t, int32(Q-2), caddq(-2))
	require.Equal(t, int32(5), caddq(5))
}
