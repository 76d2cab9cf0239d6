package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBackend_ProbeSuccess(t *testing.T) {
	opt := NewOptimized()
	b := selectBackend(func() (Backend, error) { return opt, nil })
	require.Same(t, opt, b)
}

func TestSelectBackend_ProbeFailureFallsBack(t *testing.T) {
	b := selectBackend(func() (Backend, error) { return nil, ErrUnavailable })
	_, ok := b.(*Fallback)
	require.True(t, ok) // degraded, never nil
}
