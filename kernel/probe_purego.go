//go:build purego

// Package kernel: capability probe for the optimized backend (purego build).

package kernel

// probeOptimized always fails under the purego build tag; Default() degrades
// to the sequential fallback.
func probeOptimized() (Backend, error) {
	return nil, ErrUnavailable
}
