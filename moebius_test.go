package moebius

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/format"
	"github.com/arloliu/moebius/mesh"
	"github.com/arloliu/moebius/surface"
)

// TestNew verifies the default constructor applies options over defaults.
func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		strip, err := New()
		require.NoError(t, err)
		require.Equal(t, surface.DefaultParams(), strip.Params())
	})

	t.Run("options override defaults", func(t *testing.T) {
		strip, err := New(
			surface.WithRadius(2.0),
			surface.WithWidth(0.3),
			surface.WithResolution(50),
		)
		require.NoError(t, err)
		require.Equal(t, surface.Params{Radius: 2.0, Width: 0.3, Resolution: 50}, strip.Params())
	})

	t.Run("invalid options fail construction", func(t *testing.T) {
		strip, err := New(surface.WithResolution(1))
		require.Nil(t, strip)
		require.ErrorIs(t, err, errs.ErrInvalidParameter)
	})
}

// TestEndToEnd exercises the sample → estimate → snapshot → restore pipeline.
func TestEndToEnd(t *testing.T) {
	strip, err := New(surface.WithWidth(0.3), surface.WithResolution(64))
	require.NoError(t, err)

	area := strip.SurfaceArea()
	edge := strip.EdgeLength()
	require.Greater(t, area, 0.0)
	require.Greater(t, edge, 0.0)

	snapshot, err := EncodeSnapshot(strip, mesh.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	restored, err := DecodeSnapshot(snapshot.Bytes())
	require.NoError(t, err)

	require.Equal(t, area, restored.SurfaceArea())
	require.Equal(t, edge, restored.EdgeLength())
	require.Equal(t, Fingerprint(strip), Fingerprint(restored))
}

// TestNewWithParams verifies explicit parameter construction.
func TestNewWithParams(t *testing.T) {
	strip, err := NewWithParams(surface.Params{Radius: 1.5, Width: 0.25, Resolution: 40})
	require.NoError(t, err)
	require.Equal(t, 40, strip.X().Resolution())

	_, err = NewWithParams(surface.Params{Radius: -1, Width: 0.25, Resolution: 40})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}
