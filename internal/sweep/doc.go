// Package sweep provides the parameter-sweep engine for rock-physics
// models.
//
// The package defines the interfaces and types used to evaluate a model
// over a one-dimensional grid:
//
//   - [Model]: point-wise model on a named axis (porosity, pressure, ...)
//   - [Metric]: scalar diagnostic accumulated over a sweep
//   - [Runner]: orchestrates one sweep
//   - [Batch]: runs several models over the same grid concurrently
//
// # Example
//
//	m := models.NewSC()
//	r := sweep.New(m)
//	result, _ := r.Run(ctx, sweep.DefaultConfig())
//
// # Thread Safety
//
// Runner instances are NOT thread-safe. Grid points are evaluated in
// parallel internally; each point is independent of every other.
package sweep
