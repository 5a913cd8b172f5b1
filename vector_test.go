package mldsacore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandAIsDeterministicAndShaped(t *testing.T) {
	rho := make([]byte, SeedBytes)
	for i := range rho {
		rho[i] = byte(2 * i)
	}

	matA := ExpandA(rho, 4, 4)
	require.Len(t, matA, 4)
	for _, row := range matA {
		require.Len(t, row, 4)
	}

	matB := ExpandA(rho, 4, 4)
	require.Equal(t, matA, matB, "ExpandA must be a pure function of rho")

	require.NotEqual(t, matA[0][0], matA[0][1],
		"distinct (row, col) pairs must not collide on a full polynomial")
	require.NotEqual(t, matA[0][0], matA[1][0])
}

func TestMatrixPointwiseMontgomeryVecShape(t *testing.T) {
	rho := make([]byte, SeedBytes)
	matA := ExpandA(rho, 6, 5)

	v := make([]Poly, 5)
	for i := range v {
		v[i] = UniformEtaPoly(rho, uint16(i), 4)
		v[i].NTT()
	}

	w := make([]Poly, 6)
	MatrixPointwiseMontgomeryVec(w, matA, v)
	require.Len(t, w, 6)
}

func TestAddSubVecRoundTrip(t *testing.T) {
	a := make([]Poly, 3)
	b := make([]Poly, 3)
	for i := range a {
		a[i][0] = int32(i + 1)
		b[i][0] = int32(2 * (i + 1))
	}

	sum := make([]Poly, 3)
	AddVec(sum, a, b)

	diff := make([]Poly, 3)
	SubVec(diff, sum, b)

	require.Equal(t, a, diff)
}

func TestPower2RoundVecAndDecomposeVecMatchScalar(t *testing.T) {
	a := make([]Poly, 2)
	for i := range a {
		for j := 0; j < N; j++ {
			a[i][j] = int32((j*7 + i*13) % Q)
		}
	}

	a1 := make([]Poly, 2)
	a0 := make([]Poly, 2)
	Power2RoundVec(a1, a0, a)

	for i := range a {
		for j := 0; j < N; j++ {
			wantA1, wantA0 := Power2Round(a[i][j])
			require.Equal(t, wantA1, a1[i][j])
			require.Equal(t, wantA0, a0[i][j])
		}
	}

	gamma2 := int32((Q - 1) / 32)
	DecomposeVec(a1, a0, a, gamma2)

	for i := range a {
		for j := 0; j < N; j++ {
			wantA1, wantA0 := Decompose(a[i][j], gamma2)
			require.Equal(t, wantA1, a1[i][j])
			require.Equal(t, wantA0, a0[i][j])
		}
	}
}

func TestMakeHintVecPopcountMatchesScalarSum(t *testing.T) {
	gamma2 := (Q - 1) / 32

	a0 := make([]Poly, 2)
	a1 := make([]Poly, 2)
	for i := range a0 {
		for j := 0; j < N; j++ {
			a0[i][j] = int32(j%7) - 3
			a1[i][j] = int32(j % 16)
		}
	}

	hints, popcount := MakeHintVec(a0, a1, int32(gamma2))

	var want int32
	for i := range a0 {
		for j := 0; j < N; j++ {
			h := MakeHint(a0[i][j], a1[i][j], int32(gamma2))
			require.Equal(t, h, hints[i][j])
			want += h
		}
	}
	require.Equal(t, want, popcount)
}
