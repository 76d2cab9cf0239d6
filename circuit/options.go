// Package circuit: functional configuration for circuit construction.
//
// Design goals (shared across the repository):
//   - Deterministic behavior: no global state, no implicit randomness —
//     random constructors draw from an explicitly seeded source.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error), never on runtime conditions.

package circuit

import (
	"math"
	"math/rand"

	"github.com/orionthewake/qcc/kernel"
	"github.com/orionthewake/qcc/qmath"
)

// Defaults (single source of truth).
const (
	// DefaultSeed seeds the circuit's random source when no WithSeed/WithRand
	// option is given. A fixed default keeps runs reproducible.
	DefaultSeed = 1
)

// Stable panic messages for invalid option parameters.
const (
	panicToleranceInvalid = "circuit: WithTolerance requires a positive finite epsilon"
	panicBackendNil       = "circuit: WithBackend requires a non-nil backend"
	panicRandNil          = "circuit: WithRand requires a non-nil source"
)

// config holds the resolved per-circuit settings. Fields are unexported;
// public APIs consume ...Option.
type config struct {
	eager   bool           // apply gates to the live state
	record  bool           // append IR nodes
	eps     float64        // numeric tolerance for unitarity checks
	backend kernel.Backend // nil = process-wide kernel.Default() at first use
	rng     *rand.Rand     // source for Rand/RandBits constructors
}

// Option mutates the circuit configuration at construction time.
type Option func(*config)

// defaultConfig is the "typical interactive use" mode: eager and recording.
func defaultConfig() config {
	return config{
		eager:  true,
		record: true,
		eps:    qmath.DefaultEps,
		rng:    rand.New(rand.NewSource(DefaultSeed)),
	}
}

// WithDeferred makes the circuit record-only: gate calls append IR nodes and
// never touch the state. This is how reusable and invertible sub-circuits
// are built before being composed into a live circuit.
func WithDeferred() Option {
	return func(c *config) {
		c.eager = false
		c.record = true
	}
}

// WithoutRecording makes the circuit eager-only: gate calls mutate the state
// and leave no IR. Used when replaying an already-recorded circuit.
func WithoutRecording() Option {
	return func(c *config) {
		c.eager = true
		c.record = false
	}
}

// WithTolerance overrides the numeric tolerance used for unitarity checks
// (square-root decomposition). Panics on a non-positive or non-finite eps —
// programmer error, validated at construction.
func WithTolerance(eps float64) Option {
	if eps <= 0 || math.IsInf(eps, 0) || math.IsNaN(eps) {
		panic(panicToleranceInvalid)
	}

	return func(c *config) { c.eps = eps }
}

// WithBackend pins the gate kernel backend for this circuit instead of the
// process-wide selection — the test seam for backend comparison. Panics on
// nil.
func WithBackend(b kernel.Backend) Option {
	if b == nil {
		panic(panicBackendNil)
	}

	return func(c *config) { c.backend = b }
}

// WithSeed seeds a fresh random source for the circuit's random-state
// constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares an existing random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(c *config) { c.rng = r }
}
