// Package qmath provides dense complex linear algebra for the simulation
// engine: row-major complex128 matrices plus the small kernel set quantum
// operators actually need.
//
// 🚀 What is qmath?
//
//	The numeric floor under state vectors and operators:
//	  • Dense — flat row-major complex128 storage with bounds-checked access
//	  • Mul / Add / Sub / Scale — classic matrix algebra
//	  • Kron / KronVec — Kronecker products for operators and amplitude vectors
//	  • Adjoint — conjugate transpose
//	  • Sqrt2x2 — principal square root of a normal 2×2 matrix
//	  • IsUnitary — U†U ≈ I within a numeric tolerance
//
// ✨ Why its own package?
//
//   - Deterministic: fixed loop orders, no hidden randomness, no global state
//   - Fail-fast: every kernel validates shapes and returns sentinel errors
//   - Flat storage: kernels walk contiguous slices, cache-friendly by design
//
// Numeric policy: DefaultEps (1e-6) is the default tolerance for unitarity
// and normalization checks; callers may pass their own epsilon where a
// function takes one.
//
// All kernels allocate fresh results and never mutate their operands.
package qmath
