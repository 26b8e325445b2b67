package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// viewConfig mimics the renderer-style configs this package backs.
type viewConfig struct {
	width     int
	height    int
	elevation float64
}

func (c *viewConfig) setSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return errors.New("size must be positive")
	}
	c.width = w
	c.height = h

	return nil
}

func TestNew(t *testing.T) {
	t.Run("applies and reports success", func(t *testing.T) {
		cfg := &viewConfig{}
		opt := New(func(c *viewConfig) error {
			return c.setSize(640, 480)
		})

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 640, cfg.width)
		require.Equal(t, 480, cfg.height)
	})

	t.Run("propagates errors", func(t *testing.T) {
		cfg := &viewConfig{}
		opt := New(func(c *viewConfig) error {
			return c.setSize(-1, 480)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "size must be positive")
	})
}

func TestNoError(t *testing.T) {
	cfg := &viewConfig{}
	opt := NoError(func(c *viewConfig) {
		c.elevation = 30
	})

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, 30.0, cfg.elevation)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &viewConfig{}
		err := Apply(cfg,
			New(func(c *viewConfig) error { return c.setSize(100, 100) }),
			NoError(func(c *viewConfig) { c.elevation = 15 }),
			New(func(c *viewConfig) error { return c.setSize(800, 600) }),
		)

		require.NoError(t, err)
		require.Equal(t, 800, cfg.width)
		require.Equal(t, 15.0, cfg.elevation)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		cfg := &viewConfig{}
		err := Apply(cfg,
			New(func(c *viewConfig) error { return c.setSize(0, 0) }),
			NoError(func(c *viewConfig) { c.elevation = 99 }),
		)

		require.Error(t, err)
		require.Equal(t, 0.0, cfg.elevation, "later options must not run")
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &viewConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, &viewConfig{}, cfg)
	})
}
