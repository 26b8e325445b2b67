package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrip_EdgeLength(t *testing.T) {
	t.Run("finite and non-negative for valid params", func(t *testing.T) {
		for _, params := range []Params{
			{Radius: 1, Width: 0.2, Resolution: 2},
			{Radius: 1, Width: 0.2, Resolution: 3},
			{Radius: 0.5, Width: 2, Resolution: 50},
		} {
			edge := mustStrip(t, params).EdgeLength()
			require.False(t, math.IsNaN(edge))
			require.False(t, math.IsInf(edge, 0))
			require.GreaterOrEqual(t, edge, 0.0)
		}
	})

	t.Run("idempotent on the same strip", func(t *testing.T) {
		strip := mustStrip(t, Params{Radius: 1, Width: 0.3, Resolution: 50})
		require.Equal(t, strip.EdgeLength(), strip.EdgeLength())
	})

	t.Run("reference scenario R=1 w=0.3 n=200", func(t *testing.T) {
		edge := mustStrip(t, Params{Radius: 1, Width: 0.3, Resolution: 200}).EdgeLength()
		require.Greater(t, edge, 12.5)
		require.Less(t, edge, 13.5)
	})

	t.Run("collapses to twice the centerline circumference", func(t *testing.T) {
		// As w→0 both rim curves converge onto the centerline circle, so the
		// two-curve sum approaches 2·(2πR).
		edge := mustStrip(t, Params{Radius: 1, Width: 1e-9, Resolution: 1000}).EdgeLength()
		require.InDelta(t, 4*math.Pi, edge, 1e-3)
	})

	t.Run("chord sum stays below the two-rim arc length bound", func(t *testing.T) {
		// Each rim has speed sqrt((R+v·cos(u/2))² + v²/4) ≤ R + w/2 + w/4,
		// so the polyline total is bounded by 2·2π·(R + 3w/4).
		params := Params{Radius: 1, Width: 0.3, Resolution: 400}
		edge := mustStrip(t, params).EdgeLength()
		bound := 4 * math.Pi * (params.Radius + 0.75*params.Width)
		require.Less(t, edge, bound)
	})

	t.Run("minimal resolution stays finite", func(t *testing.T) {
		// With n=2 each rim is a single chord from u=0 to u=2π.
		edge := mustStrip(t, Params{Radius: 1, Width: 0.3, Resolution: 2}).EdgeLength()
		require.False(t, math.IsNaN(edge))
		require.GreaterOrEqual(t, edge, 0.0)
	})
}

func BenchmarkEdgeLength(b *testing.B) {
	strip, err := NewStrip(Params{Radius: 1, Width: 0.3, Resolution: 200})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = strip.EdgeLength()
	}
}
