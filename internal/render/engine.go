package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"

	xdraw "golang.org/x/image/draw"

	"shapeview/internal/geom"
	"shapeview/internal/shape"
)

// Render clears s and paints shapes in list order, so later entries cover
// earlier ones. shapes is expected to be z-sorted already.
func Render(s Surface, shapes []shape.Shape) error {
	s.Clear()
	for i, sh := range shapes {
		c, err := geom.ParseColor(sh.Common().Color)
		if err != nil {
			return fmt.Errorf("render shape %d: %w", i, err)
		}
		switch v := sh.(type) {
		case *shape.Rectangle:
			err = s.FillRect(v.X, v.Y, v.Width, v.Height, c)
		case *shape.Triangle, *shape.Polygon:
			err = s.FillPolygon(shape.Absolute(v), c)
		default:
			err = fmt.Errorf("unsupported shape %T", sh)
		}
		if err != nil {
			return fmt.Errorf("render shape %d: %w", i, err)
		}
	}
	return nil
}

// Engine owns one surface and keeps it the size of the host viewport.
type Engine struct {
	Surface Surface
	Log     *slog.Logger
}

func NewEngine(backend string, w, h int, log *slog.Logger) (*Engine, error) {
	s, err := NewSurface(backend, w, h)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{Surface: s, Log: log}, nil
}

// Paint resizes the surface to w x h and renders shapes onto it.
func (e *Engine) Paint(w, h int, shapes []shape.Shape) error {
	if err := e.Surface.Resize(w, h); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}
	if err := Render(e.Surface, shapes); err != nil {
		return err
	}
	e.Log.Debug("painted", "width", w, "height", h, "shapes", len(shapes))
	return nil
}

func (e *Engine) Close() error {
	if c, ok := e.Surface.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Downsample scales src to w x h over a solid bg, for display on devices with
// fewer pixels than the surface.
func Downsample(src image.Image, w, h int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

func EncodePNG(w io.Writer, s Surface) error {
	if err := png.Encode(w, s.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
