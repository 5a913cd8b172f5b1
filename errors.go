package mldsacore

import "github.com/pkg/errors"

// Sentinel errors for the two recoverable failure classes this core
// exposes: malformed small-coefficient (eta) encodings and malformed hint
// vectors. Both surface from unpacking untrusted bytes. The only other
// error, errInvalidLevel, is returned by ParamsForLevel for a level other
// than 2, 3 or 5; everything else in the package is total on well-typed
// input.
var (
	errInvalidLevel = errors.New("mldsacore: invalid parameter level")

	// ErrInvalidEtaEncoding is returned by UnpackEta when a packed nibble
	// or tribit group does not correspond to any coefficient in [-eta, eta].
	ErrInvalidEtaEncoding = errors.New("mldsacore: invalid eta encoding")

	// ErrInvalidHintEncoding is returned by UnpackHint when the packed
	// hint vector has non-monotone positions within a polynomial, a
	// running popcount that decreases, or a total popcount exceeding omega.
	ErrInvalidHintEncoding = errors.New("mldsacore: invalid hint encoding")
)
