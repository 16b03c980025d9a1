// Package models binds the closed-form rock-physics equations to the
// [sweep.Model] interface.
//
// Each model evaluates effective bulk and shear moduli along one sweep
// axis:
//
//   - [Voigt], [HSBound]: elastic bounds vs porosity
//   - [SwissCheese]: non-interacting spherical pores vs porosity
//   - [SC]: self-consistent spherical pores vs porosity (iterative)
//   - [DiluteCrack], [OConnellBudiansky]: crack models vs crack density
//   - [HertzMindlin], [Walton]: grain packs vs confining pressure
//   - [CriticalPorosity]: Nur's modified Voigt trend vs porosity
//   - [Saturated]: Gassmann saturation of a dry porosity-axis model
//
// All models implement [sweep.Configurable] for runtime parameter
// adjustment by the live explorer.
package models
