// Package viz provides terminal-based visualization for sweep results.
//
// Curve charts are rendered with asciigraph; crossplots use a Braille
// pixel [Canvas]. The [Explorer] is an interactive Bubble Tea application
// that re-evaluates a sweep as model parameters are tuned.
//
// # Key Bindings
//
//	Tab   - Cycle parameters
//	Up/K  - Increase selected parameter (+5%)
//	Down/J- Decrease selected parameter (-5%)
//	S     - Toggle bulk/shear modulus view
//	R     - Reset parameters
//	Q     - Quit
package viz
