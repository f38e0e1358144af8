// SPDX-License-Identifier: MIT
package strassen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/strassen"
)

// TestDefaultOptions verifies the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := strassen.DefaultOptions()
	require.Equal(t, strassen.DefaultMaxDepth, o.MaxDepth())
	require.Equal(t, strassen.DefaultParallel, o.Parallel())
	require.Equal(t, strassen.DefaultRowGrain, o.RowGrain())
	require.Equal(t, "maxDepth=1 parallel=true rowGrain=64", o.String())
	require.Equal(t, o, strassen.New[int]().Options())
}

// TestOptionOverrides verifies that later options win and nil is skipped.
func TestOptionOverrides(t *testing.T) {
	o := strassen.New[int](
		strassen.WithSequential(),
		nil,
		strassen.WithMaxDepth(4),
		strassen.WithRowGrain(16),
		strassen.WithParallel(),
	).Options()
	require.True(t, o.Parallel())
	require.Equal(t, 4, o.MaxDepth())
	require.Equal(t, 16, o.RowGrain())
}

// TestOptionPanics verifies that nonsensical values panic at construction.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { strassen.WithMaxDepth(-1) })
	require.Panics(t, func() { strassen.WithRowGrain(0) })
	require.NotPanics(t, func() { strassen.WithMaxDepth(0) })
}
