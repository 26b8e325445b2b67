package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/format"
	"github.com/arloliu/moebius/surface"
)

func sampleStrip(t *testing.T, params surface.Params) *surface.Strip {
	t.Helper()
	strip, err := surface.NewStrip(params)
	require.NoError(t, err)

	return strip
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	strip := sampleStrip(t, surface.Params{Radius: 1.0, Width: 0.3, Resolution: 32})

	for _, tt := range []struct {
		name string
		opts []EncoderOption
	}{
		{"defaults", nil},
		{"zstd", []EncoderOption{WithCompression(format.CompressionZstd)}},
		{"s2", []EncoderOption{WithCompression(format.CompressionS2)}},
		{"lz4", []EncoderOption{WithCompression(format.CompressionLZ4)}},
		{"big endian", []EncoderOption{WithBigEndian()}},
		{"big endian zstd", []EncoderOption{WithBigEndian(), WithCompression(format.CompressionZstd)}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewEncoder(tt.opts...)
			require.NoError(t, err)

			snapshot, err := encoder.Encode(strip)
			require.NoError(t, err)
			require.Equal(t, len(snapshot.Bytes()), snapshot.Size())
			require.GreaterOrEqual(t, snapshot.Size(), HeaderSize)

			restored, err := Decode(snapshot.Bytes())
			require.NoError(t, err)

			require.Equal(t, strip.Params(), restored.Params())
			require.Equal(t, strip.X().Values(), restored.X().Values())
			require.Equal(t, strip.Y().Values(), restored.Y().Values())
			require.Equal(t, strip.Z().Values(), restored.Z().Values())

			// Estimates over restored grids are bit-identical too.
			require.Equal(t, strip.SurfaceArea(), restored.SurfaceArea())
			require.Equal(t, strip.EdgeLength(), restored.EdgeLength())
		})
	}
}

func TestEncoder_InvalidOptions(t *testing.T) {
	encoder, err := NewEncoder(WithCompression(format.CompressionType(0xEE)))
	require.Nil(t, encoder)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestDecode_Corruption(t *testing.T) {
	strip := sampleStrip(t, surface.Params{Radius: 1.0, Width: 0.3, Resolution: 16})

	encoder, err := NewEncoder()
	require.NoError(t, err)
	snapshot, err := encoder.Encode(strip)
	require.NoError(t, err)

	t.Run("flipped payload byte fails the checksum", func(t *testing.T) {
		data := append([]byte(nil), snapshot.Bytes()...)
		data[HeaderSize+17] ^= 0xFF

		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("truncated payload", func(t *testing.T) {
		data := snapshot.Bytes()[:HeaderSize+100]

		_, err := Decode(data)
		require.ErrorIs(t, err, errs.ErrPayloadTruncated)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decode(snapshot.Bytes()[:10])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})
}

func TestFingerprint(t *testing.T) {
	params := surface.Params{Radius: 1.0, Width: 0.3, Resolution: 24}

	t.Run("stable across resampling", func(t *testing.T) {
		a := sampleStrip(t, params)
		b := sampleStrip(t, params)
		require.Equal(t, Fingerprint(a), Fingerprint(b))
	})

	t.Run("distinguishes shapes", func(t *testing.T) {
		a := sampleStrip(t, params)
		b := sampleStrip(t, surface.Params{Radius: 1.0, Width: 0.31, Resolution: 24})
		require.NotEqual(t, Fingerprint(a), Fingerprint(b))
	})

	t.Run("survives a snapshot round trip", func(t *testing.T) {
		strip := sampleStrip(t, params)
		encoder, err := NewEncoder(WithCompression(format.CompressionS2))
		require.NoError(t, err)
		snapshot, err := encoder.Encode(strip)
		require.NoError(t, err)

		restored, err := Decode(snapshot.Bytes())
		require.NoError(t, err)
		require.Equal(t, Fingerprint(strip), Fingerprint(restored))
	})
}

func BenchmarkEncode(b *testing.B) {
	strip, err := surface.NewStrip(surface.Params{Radius: 1, Width: 0.3, Resolution: 200})
	if err != nil {
		b.Fatal(err)
	}

	for _, comp := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		encoder, err := NewEncoder(WithCompression(comp))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(comp.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := encoder.Encode(strip); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
