package render

import (
	"fmt"
	"image/color"

	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/internal/options"
)

// Default view settings.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultElevation = 30.0  // degrees above the xy-plane
	DefaultAzimuth   = -60.0 // degrees around the z axis
)

type config struct {
	width     int
	height    int
	elevation float64
	azimuth   float64
	margin    float64

	background color.RGBA
	surface    color.RGBA
}

func defaultConfig() config {
	return config{
		width:      DefaultWidth,
		height:     DefaultHeight,
		elevation:  DefaultElevation,
		azimuth:    DefaultAzimuth,
		margin:     0.06,
		background: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		surface:    color.RGBA{R: 0x46, G: 0x8F, B: 0xC8, A: 0xFF},
	}
}

// Option is a functional option configuring a rendering.
type Option = options.Option[*config]

// WithSize sets the output image size in pixels.
func WithSize(width, height int) Option {
	return options.New(func(c *config) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: image size must be positive, got %dx%d",
				errs.ErrInvalidParameter, width, height)
		}
		c.width = width
		c.height = height

		return nil
	})
}

// WithElevation sets the viewing elevation in degrees above the xy-plane.
func WithElevation(deg float64) Option {
	return options.NoError(func(c *config) {
		c.elevation = deg
	})
}

// WithAzimuth sets the viewing azimuth in degrees around the z axis.
func WithAzimuth(deg float64) Option {
	return options.NoError(func(c *config) {
		c.azimuth = deg
	})
}

// WithBackground sets the background fill color.
func WithBackground(col color.RGBA) Option {
	return options.NoError(func(c *config) {
		c.background = col
	})
}

// WithSurfaceColor sets the base surface color before shading.
func WithSurfaceColor(col color.RGBA) Option {
	return options.NoError(func(c *config) {
		c.surface = col
	})
}
