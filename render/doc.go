// Package render is the visualization collaborator for sampled surfaces: it
// consumes the three coordinate grids (x, y, z) and produces a shaded
// software rendering as an image.
//
// The renderer is deliberately decoupled from the geometry: it depends only
// on the grid data shape, never on how the grids were computed, so a strip
// restored from a mesh snapshot renders exactly like a freshly sampled one.
//
// Rendering is a painter's-algorithm pass over the grid quads: points are
// rotated into the view orientation, orthographically projected and fitted to
// the image, then the quads are depth-sorted and rasterized back to front
// with Lambert shading. Since a Möbius strip is one-sided, shading uses the
// absolute normal-light product so the half-twist seam does not flip to
// black.
package render
