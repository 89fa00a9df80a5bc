// Package render paints shapes onto a raster surface.
package render

import (
	"fmt"
	"image"
	"image/color"

	"shapeview/internal/geom"
)

// Surface is a resizable raster target. Both backends fill with the non-zero
// winding rule.
type Surface interface {
	Resize(w, h int) error
	Clear()
	FillRect(x, y, w, h int, c color.Color) error
	// FillPolygon fills the closed path through pts, which are absolute
	// surface coordinates.
	FillPolygon(pts []geom.Point, c color.Color) error
	Image() image.Image
	Bounds() image.Rectangle
}

const (
	BackendGG      = "gg"
	BackendRasterx = "rasterx"
)

// NewSurface returns a w x h surface for the named backend. An empty name
// selects gg.
func NewSurface(backend string, w, h int) (Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid surface size %dx%d", w, h)
	}
	switch backend {
	case "", BackendGG:
		return NewGGSurface(w, h), nil
	case BackendRasterx:
		return NewRasterSurface(w, h), nil
	default:
		return nil, fmt.Errorf("render: unknown backend %q", backend)
	}
}
