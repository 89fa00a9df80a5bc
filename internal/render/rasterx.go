package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"shapeview/internal/geom"
)

// RasterSurface paints with a rasterx filler into an RGBA image.
type RasterSurface struct {
	img    *image.RGBA
	filler *rasterx.Filler
}

func NewRasterSurface(w, h int) *RasterSurface {
	s := &RasterSurface{}
	s.reset(w, h)
	return s
}

func (s *RasterSurface) reset(w, h int) {
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, s.img, s.img.Bounds())
	s.filler = rasterx.NewFiller(w, h, scanner)
	s.filler.SetWinding(true)
}

func (s *RasterSurface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid dimensions: width=%d, height=%d (both must be > 0)", w, h)
	}
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return nil
	}
	s.reset(w, h)
	return nil
}

func (s *RasterSurface) Clear() {
	xdraw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
}

func (s *RasterSurface) FillRect(x, y, w, h int, c color.Color) error {
	return s.FillPolygon([]geom.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}, c)
}

func (s *RasterSurface) FillPolygon(pts []geom.Point, c color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	s.filler.Clear()
	s.filler.SetColor(c)
	s.filler.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		s.filler.Line(toFixed(p))
	}
	s.filler.Stop(true)
	s.filler.Draw()
	return nil
}

func (s *RasterSurface) Image() image.Image { return s.img }

func (s *RasterSurface) Bounds() image.Rectangle { return s.img.Bounds() }

func toFixed(p geom.Point) fixed.Point26_6 {
	return fixed.P(p.X, p.Y)
}
