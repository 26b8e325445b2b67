// Package numeric provides the slice-based numerical kernels used by the
// surface estimators: evenly spaced sampling, finite-difference gradients,
// and small 3D vector operations.
//
// All functions operate on plain float64 slices and are deterministic: the
// same inputs always produce bit-identical outputs.
package numeric

// Linspace returns n evenly spaced samples over [start, stop], inclusive of
// both endpoints.
//
// The spacing is (stop-start)/(n-1). The last sample is forced to stop
// exactly so accumulated rounding never shifts the endpoint.
//
// Parameters:
//   - start: First sample value
//   - stop: Last sample value
//   - n: Number of samples, must be >= 2
//
// Returns:
//   - []float64: Slice of n samples
func Linspace(start, stop float64, n int) []float64 {
	vals := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range vals {
		vals[i] = start + float64(i)*step
	}
	vals[n-1] = stop

	return vals
}

// Gradient computes the numerical derivative of evenly spaced samples with
// respect to their sample coordinate, using central differences in the
// interior and second-order one-sided differences at both ends.
//
// The one-sided stencils are (-3f0 + 4f1 - f2)/(2h) at the start and its
// mirror at the end, so the boundary values carry the same O(h²) accuracy as
// the interior. With only two samples the gradient degrades to the plain
// two-point difference at both positions.
//
// Parameters:
//   - vals: Sample values, len(vals) >= 2
//   - h: Spacing between consecutive samples, must be non-zero
//
// Returns:
//   - []float64: Derivative estimate at every sample position
func Gradient(vals []float64, h float64) []float64 {
	n := len(vals)
	out := make([]float64, n)
	GradientInto(out, vals, h)

	return out
}

// GradientInto is the allocation-free form of Gradient. It writes the
// derivative estimates into out, which must have the same length as vals.
func GradientInto(out, vals []float64, h float64) {
	n := len(vals)
	if n == 2 {
		d := (vals[1] - vals[0]) / h
		out[0] = d
		out[1] = d

		return
	}

	inv2h := 1.0 / (2.0 * h)
	out[0] = (-3.0*vals[0] + 4.0*vals[1] - vals[2]) * inv2h
	for i := 1; i < n-1; i++ {
		out[i] = (vals[i+1] - vals[i-1]) * inv2h
	}
	out[n-1] = (3.0*vals[n-1] - 4.0*vals[n-2] + vals[n-3]) * inv2h
}
