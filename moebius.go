// Package moebius computes discretized Möbius strips: given a centerline
// radius, strip width and grid resolution it samples the half-twist embedding
// into n×n coordinate grids and derives two scalar estimates from that
// discretization, an approximate surface area and an approximate boundary
// edge length.
//
// # Core Features
//
//   - Immutable sampled strips: the coordinate grids are a pure function of
//     the shape parameters, recomputation is bit-identical
//   - Surface-area estimation via second-order finite differences and
//     cross-product area-element integration
//   - Edge-length estimation via polyline chord summation over both rims
//   - Binary mesh snapshots with optional compression (Zstd, S2, LZ4) and
//     xxHash64 integrity checksums
//   - A decoupled software renderer consuming only the coordinate grids
//
// # Basic Usage
//
//	strip, err := moebius.New(
//	    surface.WithRadius(1.0),
//	    surface.WithWidth(0.3),
//	    surface.WithResolution(200),
//	)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("area: %.4f edge: %.4f\n", strip.SurfaceArea(), strip.EdgeLength())
//
// Persisting and restoring a sampled strip:
//
//	snapshot, _ := moebius.EncodeSnapshot(strip,
//	    mesh.WithCompression(format.CompressionZstd),
//	)
//	restored, _ := moebius.DecodeSnapshot(snapshot.Bytes())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the surface and
// mesh packages, covering the common cases. For fine-grained control use the
// surface, mesh and render packages directly.
package moebius

import (
	"github.com/arloliu/moebius/internal/options"
	"github.com/arloliu/moebius/mesh"
	"github.com/arloliu/moebius/surface"
)

// New samples a Möbius strip from the default shape parameters (radius 1.0,
// width 0.2, resolution 100) adjusted by the given options.
//
// Parameters:
//   - opts: Optional configuration (surface.WithRadius, surface.WithWidth,
//     surface.WithResolution)
//
// Returns:
//   - *surface.Strip: The sampled strip
//   - error: An error wrapping errs.ErrInvalidParameter when the resulting
//     parameters are invalid
//
// Example:
//
//	strip, err := moebius.New(surface.WithResolution(200))
func New(opts ...surface.Option) (*surface.Strip, error) {
	params := surface.DefaultParams()
	if err := options.Apply(&params, opts...); err != nil {
		return nil, err
	}

	return surface.NewStrip(params)
}

// NewWithParams samples a Möbius strip from explicit shape parameters.
//
// Returns:
//   - *surface.Strip: The sampled strip
//   - error: An error wrapping errs.ErrInvalidParameter when params are invalid
func NewWithParams(params surface.Params) (*surface.Strip, error) {
	return surface.NewStrip(params)
}

// EncodeSnapshot serializes a sampled strip into a binary mesh snapshot.
//
// Parameters:
//   - strip: The strip to serialize
//   - opts: Optional encoder configuration (mesh.WithCompression,
//     mesh.WithLittleEndian, mesh.WithBigEndian)
//
// Returns:
//   - mesh.Snapshot: The encoded snapshot
//   - error: An error if the encoder configuration or encoding fails
func EncodeSnapshot(strip *surface.Strip, opts ...mesh.EncoderOption) (mesh.Snapshot, error) {
	encoder, err := mesh.NewEncoder(opts...)
	if err != nil {
		return mesh.Snapshot{}, err
	}

	return encoder.Encode(strip)
}

// DecodeSnapshot restores a strip from snapshot bytes, validating the header
// and payload checksum. The restored grids are bit-identical to the encoded
// ones.
func DecodeSnapshot(data []byte) (*surface.Strip, error) {
	return mesh.Decode(data)
}

// Fingerprint returns the xxHash64 identity of a sampled strip. Strips
// sampled from the same parameters always share a fingerprint, so it can key
// snapshot caches.
func Fingerprint(strip *surface.Strip) uint64 {
	return mesh.Fingerprint(strip)
}
