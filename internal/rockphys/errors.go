package rockphys

import "errors"

// Domain errors for model evaluation.
var (
	// ErrBulkModulus indicates a non-positive solid bulk modulus.
	ErrBulkModulus = errors.New("rockphys: bulk modulus must be positive")

	// ErrShearModulus indicates a non-positive solid shear modulus.
	ErrShearModulus = errors.New("rockphys: shear modulus must be positive")

	// ErrPorosityRange indicates a porosity outside [0, 1).
	ErrPorosityRange = errors.New("rockphys: porosity out of range [0, 1)")

	// ErrFractionRange indicates a volume fraction outside [0, 1].
	ErrFractionRange = errors.New("rockphys: volume fraction out of range [0, 1]")

	// ErrIterations indicates a non-positive iteration count.
	ErrIterations = errors.New("rockphys: iteration count must be at least 1")

	// ErrPressure indicates a negative confining pressure.
	ErrPressure = errors.New("rockphys: confining pressure must be non-negative")

	// ErrCoordination indicates a non-positive coordination number.
	ErrCoordination = errors.New("rockphys: coordination number must be positive")

	// ErrCrackDensity indicates a negative crack density.
	ErrCrackDensity = errors.New("rockphys: crack density must be non-negative")

	// ErrDensity indicates a non-positive bulk density.
	ErrDensity = errors.New("rockphys: density must be positive")

	// ErrBound indicates an unknown Hashin-Shtrikman bound selector.
	ErrBound = errors.New("rockphys: bound must be \"upper\" or \"lower\"")
)
