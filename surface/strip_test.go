package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/moebius/errs"
)

func TestNewStrip(t *testing.T) {
	t.Run("rejects invalid params before sampling", func(t *testing.T) {
		strip, err := NewStrip(Params{Radius: 1, Width: 0.2, Resolution: 1})
		require.Nil(t, strip)
		require.ErrorIs(t, err, errs.ErrInvalidParameter)

		strip, err = NewStrip(Params{Radius: -1, Width: 0.2, Resolution: 10})
		require.Nil(t, strip)
		require.ErrorIs(t, err, errs.ErrInvalidParameter)
	})

	t.Run("grids are always n×n", func(t *testing.T) {
		for _, params := range []Params{
			{Radius: 1, Width: 0.2, Resolution: 2},
			{Radius: 0.5, Width: 1.5, Resolution: 7},
			{Radius: 10, Width: 0.01, Resolution: 33},
		} {
			strip, err := NewStrip(params)
			require.NoError(t, err)

			n := params.Resolution
			for _, g := range []Grid{strip.X(), strip.Y(), strip.Z()} {
				require.Equal(t, n, g.Resolution())
				require.Len(t, g.Values(), n*n)
			}
		}
	})

	t.Run("recomputation is bit-identical", func(t *testing.T) {
		params := Params{Radius: 1.3, Width: 0.25, Resolution: 41}
		a, err := NewStrip(params)
		require.NoError(t, err)
		b, err := NewStrip(params)
		require.NoError(t, err)

		require.Equal(t, a.X().Values(), b.X().Values())
		require.Equal(t, a.Y().Values(), b.Y().Values())
		require.Equal(t, a.Z().Values(), b.Z().Values())
	})

	t.Run("matches the embedding at known samples", func(t *testing.T) {
		// Resolution 5 puts u = {0, π/2, π, 3π/2, 2π} on the rows and
		// v = {-0.1, -0.05, 0, 0.05, 0.1} on the columns.
		strip, err := NewStrip(Params{Radius: 1, Width: 0.2, Resolution: 5})
		require.NoError(t, err)

		// u=0, v=0.1: x = R + v, y = 0, z = 0.
		require.InDelta(t, 1.1, strip.X().At(0, 4), 1e-15)
		require.InDelta(t, 0.0, strip.Y().At(0, 4), 1e-15)
		require.InDelta(t, 0.0, strip.Z().At(0, 4), 1e-15)

		// u=π, v=0.1: cos(π/2)=0, so x = -R, y = 0, z = v.
		require.InDelta(t, -1.0, strip.X().At(2, 4), 1e-15)
		require.InDelta(t, 0.0, strip.Y().At(2, 4), 1e-12)
		require.InDelta(t, 0.1, strip.Z().At(2, 4), 1e-15)

		// u=2π, v=0.1: cos(π)=-1, so x = R - v (the seam flips v).
		require.InDelta(t, 0.9, strip.X().At(4, 4), 1e-12)

		// Centerline column v=0 stays on the circle of radius R.
		for i := 0; i < 5; i++ {
			r := math.Hypot(strip.X().At(i, 2), strip.Y().At(i, 2))
			require.InDelta(t, 1.0, r, 1e-12)
			require.InDelta(t, 0.0, strip.Z().At(i, 2), 1e-15)
		}
	})

	t.Run("all samples are finite", func(t *testing.T) {
		strip, err := NewStrip(Params{Radius: 2, Width: 0.5, Resolution: 16})
		require.NoError(t, err)

		for _, g := range []Grid{strip.X(), strip.Y(), strip.Z()} {
			for _, val := range g.Values() {
				require.False(t, math.IsNaN(val))
				require.False(t, math.IsInf(val, 0))
			}
		}
	})
}

func TestFromGrids(t *testing.T) {
	params := Params{Radius: 1, Width: 0.3, Resolution: 9}
	strip, err := NewStrip(params)
	require.NoError(t, err)

	t.Run("round trip preserves grids and estimates", func(t *testing.T) {
		restored, err := FromGrids(params, strip.X(), strip.Y(), strip.Z())
		require.NoError(t, err)
		require.Equal(t, strip.X().Values(), restored.X().Values())
		require.Equal(t, strip.SurfaceArea(), restored.SurfaceArea())
		require.Equal(t, strip.EdgeLength(), restored.EdgeLength())
	})

	t.Run("rejects mismatched resolution", func(t *testing.T) {
		small := NewGrid(4)
		_, err := FromGrids(params, small, strip.Y(), strip.Z())
		require.ErrorIs(t, err, errs.ErrResolutionMismatch)
	})

	t.Run("rejects invalid params", func(t *testing.T) {
		bad := Params{Radius: 0, Width: 0.3, Resolution: 9}
		_, err := FromGrids(bad, strip.X(), strip.Y(), strip.Z())
		require.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}

func TestGridFromValues(t *testing.T) {
	t.Run("adopts a well-sized slice", func(t *testing.T) {
		vals := []float64{1, 2, 3, 4}
		g, err := GridFromValues(2, vals)
		require.NoError(t, err)
		require.Equal(t, 2, g.Resolution())
		require.Equal(t, 1.0, g.At(0, 0))
		require.Equal(t, 4.0, g.At(1, 1))
		require.Equal(t, []float64{3, 4}, g.Row(1))
	})

	t.Run("rejects a short slice", func(t *testing.T) {
		_, err := GridFromValues(3, []float64{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrResolutionMismatch)
	})
}
