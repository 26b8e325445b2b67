package surface

import (
	"fmt"

	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/internal/options"
)

// Default shape parameters, used by DefaultParams and the root-package
// constructor when an option is not supplied.
const (
	DefaultRadius     = 1.0
	DefaultWidth      = 0.2
	DefaultResolution = 100
)

// Params holds the shape parameters of a Möbius strip.
//
// Params fully determine the sampled geometry: the same Params always produce
// the same coordinate grids. Params are validated once when a Strip is
// constructed and are immutable afterwards.
type Params struct {
	// Radius is the distance from the origin to the strip centerline.
	// Must be positive.
	Radius float64

	// Width is the full width of the strip; the cross-parameter v spans
	// [-Width/2, +Width/2]. Must be positive.
	Width float64

	// Resolution is the number of samples per parameter axis, producing
	// Resolution×Resolution coordinate grids. Must be at least 2, since the
	// grid spacing and finite-difference stencils divide by Resolution-1.
	Resolution int
}

// DefaultParams returns the default shape parameters: Radius 1.0, Width 0.2,
// Resolution 100.
func DefaultParams() Params {
	return Params{
		Radius:     DefaultRadius,
		Width:      DefaultWidth,
		Resolution: DefaultResolution,
	}
}

// Validate checks the parameters against their valid domains.
//
// Returns:
//   - error: An error wrapping errs.ErrInvalidParameter describing the first
//     violated constraint, or nil when all parameters are valid.
func (p Params) Validate() error {
	// The negated comparisons also reject NaN.
	if !(p.Radius > 0) {
		return fmt.Errorf("%w: radius must be positive, got %v", errs.ErrInvalidParameter, p.Radius)
	}
	if !(p.Width > 0) {
		return fmt.Errorf("%w: width must be positive, got %v", errs.ErrInvalidParameter, p.Width)
	}
	if p.Resolution < 2 {
		return fmt.Errorf("%w: resolution must be at least 2, got %d", errs.ErrInvalidParameter, p.Resolution)
	}

	return nil
}

// Option is a functional option applied to Params before a Strip is
// constructed. Invalid values are not rejected by the option itself; Params
// validation happens once at construction.
type Option = options.Option[*Params]

// WithRadius sets the centerline radius.
func WithRadius(r float64) Option {
	return options.NoError(func(p *Params) {
		p.Radius = r
	})
}

// WithWidth sets the full strip width.
func WithWidth(w float64) Option {
	return options.NoError(func(p *Params) {
		p.Width = w
	})
}

// WithResolution sets the number of samples per parameter axis.
func WithResolution(n int) Option {
	return options.NoError(func(p *Params) {
		p.Resolution = n
	})
}
