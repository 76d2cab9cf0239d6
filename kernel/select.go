// Package kernel: one-time, process-wide backend selection.

package kernel

import (
	"sync"

	"github.com/charmbracelet/log"
)

var (
	selectOnce sync.Once
	selected   Backend
)

// Default returns the process-wide backend. The first call probes for the
// optimized implementation; a probe failure is not fatal — execution is
// redirected to the pure fallback with a one-time diagnostic, and behavior
// is otherwise identical. The choice is memoized and immutable afterwards;
// every circuit reads the same backend.
func Default() Backend {
	selectOnce.Do(func() {
		selected = selectBackend(probeOptimized)
	})

	return selected
}

// selectBackend runs one capability probe and substitutes the fallback on
// failure. Split from Default so tests can exercise the degradation path
// without touching the memoized process-wide state.
func selectBackend(probe func() (Backend, error)) Backend {
	b, err := probe()
	if err != nil {
		log.Warn("optimized gate kernel unavailable, using pure fallback; performance may suffer",
			"err", err)

		return NewFallback()
	}

	return b
}
