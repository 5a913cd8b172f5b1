package mldsacore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformPolyIsDeterministicAndInRange(t *testing.T) {
	rho := make([]byte, SeedBytes)
	for i := range rho {
		rho[i] = byte(i)
	}

	p1 := UniformPoly(rho, 7)
	p2 := UniformPoly(rho, 7)
	require.Equal(t, p1, p2, "UniformPoly must be a pure function of (seed, nonce)")

	for _, c := range p1 {
		require.True(t, c >= 0 && c < Q)
	}

	p3 := UniformPoly(rho, 8)
	require.NotEqual(t, p1, p3, "different nonces must not collide on a full polynomial")
}

func TestUniformEtaPolyRangeForBothWidths(t *testing.T) {
	seed := make([]byte, SeedBytes)

	for _, eta := range []int32{2, 4} {
		p := UniformEtaPoly(seed, 3, eta)
		for _, c := range p {
			require.True(t, c >= -eta && c <= eta,
				"coefficient %d out of [-%d, %d]", c, eta, eta)
		}
	}
}

func TestUniformGamma1PolyRangeForBothWidths(t *testing.T) {
	seed := make([]byte, CRHBytes)

	for _, gamma1 := range []int32{1 << 17, 1 << 19} {
		p := UniformGamma1Poly(seed, 0, gamma1)
		for _, c := range p {
			require.True(t, c > -gamma1 && c <= gamma1,
				"coefficient %d out of (-%d, %d]", c, gamma1, gamma1)
		}
	}
}

func TestUniformGamma1PolyIsDeterministic(t *testing.T) {
	seed := make([]byte, CRHBytes)
	p1 := UniformGamma1Poly(seed, 4, 1<<17)
	p2 := UniformGamma1Poly(seed, 4, 1<<17)
	require.Equal(t, p1, p2)
}

func TestChallengePolyHasExactlyTauNonzeroCoefficients(t *testing.T) {
	seed := make([]byte, 48) // CTildeBytes varies by level; any length works here

	for _, tau := range []int32{39, 49, 60} {
		p := ChallengePoly(seed, tau)
		var count int32
		for _, c := range p {
			require.True(t, c == -1 || c == 0 || c == 1)
			if c != 0 {
				count++
			}
		}
		require.Equal(t, tau, count, "challenge polynomial must have exactly tau nonzero coefficients")
	}
}
