//go:build !purego

// Package kernel: capability probe for the optimized backend (default build).

package kernel

import "os"

// probeOptimized attempts to load the optimized backend. In the default
// build it succeeds unless QCC_PUREGO is set in the environment, which
// forces the fallback for debugging and A/B comparison.
func probeOptimized() (Backend, error) {
	if os.Getenv("QCC_PUREGO") != "" {
		return nil, ErrUnavailable
	}

	return NewOptimized(), nil
}
