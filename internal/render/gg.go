package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"shapeview/internal/geom"
)

// GGSurface paints through a gogpu/gg software context.
type GGSurface struct {
	dc *gg.Context
}

func NewGGSurface(w, h int) *GGSurface {
	dc := gg.NewContext(w, h)
	dc.SetFillRule(gg.FillRuleNonZero)
	return &GGSurface{dc: dc}
}

func (s *GGSurface) Resize(w, h int) error { return s.dc.Resize(w, h) }

func (s *GGSurface) Clear() { s.dc.Clear() }

func (s *GGSurface) FillRect(x, y, w, h int, c color.Color) error {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	return s.dc.Fill()
}

func (s *GGSurface) FillPolygon(pts []geom.Point, c color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	s.dc.SetColor(c)
	s.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		s.dc.LineTo(float64(p.X), float64(p.Y))
	}
	s.dc.ClosePath()
	return s.dc.Fill()
}

func (s *GGSurface) Image() image.Image { return s.dc.Image() }

func (s *GGSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dc.Width(), s.dc.Height())
}

func (s *GGSurface) Close() error { return s.dc.Close() }
