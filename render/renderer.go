package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/arloliu/moebius/errs"
	"github.com/arloliu/moebius/internal/options"
	"github.com/arloliu/moebius/numeric"
	"github.com/arloliu/moebius/surface"
)

// lightDir is the fixed light direction in view space.
var lightDir = numeric.Vec3{X: 0.3, Y: -0.4, Z: 0.85}.Unit()

// quad is one projected grid cell ready for rasterization.
type quad struct {
	depth float64
	sx    [4]float32
	sy    [4]float32
	col   color.RGBA
}

// Render draws a shaded rendering of the surface described by the three
// coordinate grids.
//
// The grids must share one resolution of at least 2. The output is
// deterministic: the same grids and options always produce the same pixels.
//
// Parameters:
//   - x, y, z: Coordinate grids, one 3D point per grid cell
//   - opts: View options (size, elevation, azimuth, colors)
//
// Returns:
//   - *image.RGBA: The rendered image
//   - error: An error wrapping errs.ErrInvalidParameter for mismatched or
//     degenerate grids or invalid options
func Render(x, y, z surface.Grid, opts ...Option) (*image.RGBA, error) {
	n := x.Resolution()
	if n < 2 || y.Resolution() != n || z.Resolution() != n {
		return nil, fmt.Errorf("%w: renderer requires matching grids with resolution >= 2, got %d/%d/%d",
			errs.ErrInvalidParameter, x.Resolution(), y.Resolution(), z.Resolution())
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	// Rotate every grid point into view space: screen axes are the rotated x
	// and y, the rotated z is the depth toward the viewer.
	rot := viewMatrix(cfg.elevation, cfg.azimuth)
	pts := make([]numeric.Vec3, n*n)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := rot.apply(numeric.Vec3{X: x.At(i, j), Y: y.At(i, j), Z: z.At(i, j)})
			pts[i*n+j] = p
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}

	scale, offX, offY := fitView(cfg, minX, maxX, minY, maxY)

	quads := buildQuads(pts, n, cfg, scale, offX, offY)
	sort.SliceStable(quads, func(a, b int) bool {
		return quads[a].depth < quads[b].depth
	})

	img := image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.background), image.Point{}, draw.Src)

	raster := vector.NewRasterizer(cfg.width, cfg.height)
	for _, q := range quads {
		raster.Reset(cfg.width, cfg.height)
		raster.MoveTo(q.sx[0], q.sy[0])
		raster.LineTo(q.sx[1], q.sy[1])
		raster.LineTo(q.sx[2], q.sy[2])
		raster.LineTo(q.sx[3], q.sy[3])
		raster.ClosePath()
		raster.Draw(img, img.Bounds(), image.NewUniform(q.col), image.Point{})
	}

	return img, nil
}

// RenderStrip renders a sampled strip with its own coordinate grids.
func RenderStrip(strip *surface.Strip, opts ...Option) (*image.RGBA, error) {
	return Render(strip.X(), strip.Y(), strip.Z(), opts...)
}

// fitView computes the uniform orthographic scale and offsets that center the
// projected bounding box inside the image with the configured margin.
func fitView(cfg config, minX, maxX, minY, maxY float64) (scale, offX, offY float64) {
	spanX := maxX - minX
	spanY := maxY - minY

	availX := float64(cfg.width) * (1 - 2*cfg.margin)
	availY := float64(cfg.height) * (1 - 2*cfg.margin)

	scale = math.Inf(1)
	if spanX > 0 {
		scale = availX / spanX
	}
	if spanY > 0 {
		scale = math.Min(scale, availY/spanY)
	}
	if math.IsInf(scale, 1) {
		// Degenerate point cloud; any finite scale renders the same pixel.
		scale = 1
	}

	offX = float64(cfg.width)/2 - scale*(minX+maxX)/2
	offY = float64(cfg.height)/2 + scale*(minY+maxY)/2

	return scale, offX, offY
}

// buildQuads projects each grid cell to screen space and shades it by the
// angle between its normal and the light.
func buildQuads(pts []numeric.Vec3, n int, cfg config, scale, offX, offY float64) []quad {
	quads := make([]quad, 0, (n-1)*(n-1))

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			p0 := pts[i*n+j]
			p1 := pts[i*n+j+1]
			p2 := pts[(i+1)*n+j+1]
			p3 := pts[(i+1)*n+j]

			// Normal from the quad diagonals; one-sided surface, so the
			// shading uses the absolute product and never flips to black.
			normal := p2.Sub(p0).Cross(p3.Sub(p1)).Unit()
			intensity := 0.3 + 0.7*math.Abs(normal.Dot(lightDir))

			q := quad{
				depth: (p0.Z + p1.Z + p2.Z + p3.Z) / 4,
				col:   shade(cfg.surface, intensity),
			}
			for k, p := range [...]numeric.Vec3{p0, p1, p2, p3} {
				q.sx[k] = float32(offX + scale*p.X)
				q.sy[k] = float32(offY - scale*p.Y)
			}
			quads = append(quads, q)
		}
	}

	return quads
}

// shade scales the RGB channels of col by intensity, leaving alpha untouched.
func shade(col color.RGBA, intensity float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Min(255, float64(col.R)*intensity)),
		G: uint8(math.Min(255, float64(col.G)*intensity)),
		B: uint8(math.Min(255, float64(col.B)*intensity)),
		A: col.A,
	}
}
