package surface

import (
	"fmt"
	"math"

	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/numeric"
)

// Strip is an immutable sampled Möbius strip: the shape parameters plus the
// three coordinate grids produced by evaluating the half-twist embedding over
// the full (u, v) parameter grid.
//
// The u parameter spans [0, 2π] and the v parameter spans [-Width/2, +Width/2],
// each with Resolution evenly spaced samples including both endpoints. Every
// (u, v) pair maps to one 3D point, so each coordinate grid is
// Resolution×Resolution.
//
// A Strip never changes after construction; SurfaceArea and EdgeLength are
// pure queries over the stored grids.
type Strip struct {
	params Params

	u []float64
	v []float64

	x Grid
	y Grid
	z Grid
}

// NewStrip validates params and samples the surface.
//
// The parametric mapping for each (u, v), with half = u/2:
//
//	x = (R + v·cos(half))·cos(u)
//	y = (R + v·cos(half))·sin(u)
//	z = v·sin(half)
//
// Returns:
//   - *Strip: The sampled strip
//   - error: An error wrapping errs.ErrInvalidParameter when params are
//     outside their valid domain; no sampling occurs in that case
func NewStrip(params Params) (*Strip, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := params.Resolution
	half := params.Width / 2

	s := &Strip{
		params: params,
		u:      numeric.Linspace(0, 2*math.Pi, n),
		v:      numeric.Linspace(-half, half, n),
		x:      NewGrid(n),
		y:      NewGrid(n),
		z:      NewGrid(n),
	}

	for i, u := range s.u {
		row := i * n
		for j, v := range s.v {
			p := evalPoint(params.Radius, u, v)
			s.x.vals[row+j] = p.X
			s.y.vals[row+j] = p.Y
			s.z.vals[row+j] = p.Z
		}
	}

	return s, nil
}

// FromGrids reconstructs a Strip from previously sampled coordinate grids,
// e.g. grids decoded from a mesh snapshot. The grids are adopted as-is; they
// are not resampled or verified against the mapping.
//
// Returns:
//   - *Strip: The reconstructed strip
//   - error: An error wrapping errs.ErrInvalidParameter for invalid params,
//     or errs.ErrResolutionMismatch when a grid is not Resolution×Resolution
func FromGrids(params Params, x, y, z Grid) (*Strip, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := params.Resolution
	for _, g := range [...]Grid{x, y, z} {
		if g.n != n || len(g.vals) != n*n {
			return nil, fmt.Errorf("%w: grid is %dx%d, params declare %dx%d",
				errs.ErrResolutionMismatch, g.n, g.n, n, n)
		}
	}

	half := params.Width / 2

	return &Strip{
		params: params,
		u:      numeric.Linspace(0, 2*math.Pi, n),
		v:      numeric.Linspace(-half, half, n),
		x:      x,
		y:      y,
		z:      z,
	}, nil
}

// Params returns the shape parameters the strip was sampled from.
func (s *Strip) Params() Params {
	return s.params
}

// X returns the x coordinate grid. The grid aliases the strip's storage and
// must be treated as read-only.
func (s *Strip) X() Grid { return s.x }

// Y returns the y coordinate grid. The grid aliases the strip's storage and
// must be treated as read-only.
func (s *Strip) Y() Grid { return s.y }

// Z returns the z coordinate grid. The grid aliases the strip's storage and
// must be treated as read-only.
func (s *Strip) Z() Grid { return s.z }

// evalPoint evaluates the half-twist Möbius embedding at (u, v).
func evalPoint(radius, u, v float64) numeric.Vec3 {
	half := u / 2
	ring := radius + v*math.Cos(half)

	return numeric.Vec3{
		X: ring * math.Cos(u),
		Y: ring * math.Sin(u),
		Z: v * math.Sin(half),
	}
}
