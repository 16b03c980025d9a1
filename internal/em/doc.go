// Package em provides effective-medium models for porous and cracked rocks.
//
// The package covers two-phase elastic bounds and inclusion models:
//
//   - [Voigt], [Reuss], [VoigtReussHill]: microgeometry-free averages
//   - [HS]: Hashin-Shtrikman upper/lower bounds
//   - [SwissCheese]: non-interacting spherical-pore model
//   - [SC]: self-consistent spherical-pore model (iterative)
//   - [DiluteCrack]: non-interacting randomly oriented crack model
//   - [OConnellBudiansky]: self-consistent crack model
//
// All moduli are in GPa. Porosity and crack density are dimensionless.
//
// # Validity
//
// The inclusion models assume dilute or moderately concentrated pore space.
// The self-consistent model returns numeric values for any porosity in
// [0, 1), but results near or beyond the critical porosity (about 0.5 for
// spherical pores) lose physical meaning and may go negative; no error is
// reported for them.
package em
