// Package kernel applies 1-qubit and controlled 1-qubit gates to a dense
// amplitude vector in place, touching only the amplitude pairs the gate
// actually mixes.
//
// 🚀 What is the kernel?
//
//	The hot loop of the whole engine. Given ψ (length 2^n), a 2×2 gate and a
//	target qubit, it updates the 2^(n−1) index pairs that differ in the
//	target bit — for controlled gates, only pairs whose control bit is 1 —
//	and never materializes the full 2^n×2^n operator.
//
// ✨ Two interchangeable backends:
//   - Optimized — block iteration plus bounded goroutine fan-out on large
//     states; the pairs are disjoint, so parallelism cannot change results
//   - Fallback  — one sequential masked scan; simple, allocation-free
//
// Both are exported for direct use and must agree within floating tolerance
// on every input. Default() performs a one-time, process-wide capability
// probe: if the optimized backend is unavailable (purego build, or
// QCC_PUREGO set) it degrades silently to the fallback, emitting a one-time
// diagnostic through charmbracelet/log. The selection is immutable
// afterwards and read-only from every circuit.
//
// Bit order is big-endian: qubit 0 is the most significant bit of a basis
// index, so target t maps to bit position n−1−t.
package kernel
