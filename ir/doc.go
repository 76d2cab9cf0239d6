// Package ir is the circuit intermediate representation: an ordered,
// appendable log of gate intents, independent of whether or when they were
// applied to a live state.
//
// 🚀 What is the IR?
//
//	Every high-level gate call can append a Node describing the call —
//	operator, target, optional control, optional real parameter, label.
//	The log can later be replayed into another circuit (composition at an
//	offset), reversed with adjointed operators (inversion), rewritten with
//	an extra control (promotion), or walked read-only by exporters.
//
// ✨ Node kinds:
//   - Single / Controlled — the gate nodes, immutable once appended
//   - Section / EndSection — named grouping markers for structured export;
//     no simulation semantics
//   - Register — records a register allocation (size, name, first index)
//
// Control-by-0 is lowered to X-bracket nodes when recorded; the controlled
// node additionally carries a ByZero marker so exporters can render the
// original intent (replay relies on the brackets alone — nothing is applied
// twice).
//
// The IR is owned by exactly one circuit and is not safe for concurrent
// mutation; exporters get a stable snapshot through Nodes().
package ir
