package surface

import (
	"math"

	"github.com/arloliu/moebius/numeric"
)

// EdgeLength approximates the total length of the strip's rim by tracing the
// two boundary curves at v = +Width/2 and v = -Width/2 and summing their
// polyline lengths.
//
// Each curve resamples u over [0, 2π] with Resolution points (the same
// sampling convention as the main grid, independent of it) and sums the
// Euclidean distances between consecutive points.
//
// Note that the half-twist parameterization traces the strip's single
// physical boundary curve twice, once per rim; the returned value is the
// total length of both rim traces, not the length of the topological
// boundary.
//
// Returns:
//   - float64: Non-negative total length of both rim curves
func (s *Strip) EdgeLength() float64 {
	us := numeric.Linspace(0, 2*math.Pi, s.params.Resolution)
	half := s.params.Width / 2

	return rimLength(s.params.Radius, us, +half) + rimLength(s.params.Radius, us, -half)
}

// rimLength sums the chord lengths of the boundary curve at fixed v.
func rimLength(radius float64, us []float64, v float64) float64 {
	prev := evalPoint(radius, us[0], v)

	var total float64
	for _, u := range us[1:] {
		p := evalPoint(radius, u, v)
		total += p.Dist(prev)
		prev = p
	}

	return total
}
