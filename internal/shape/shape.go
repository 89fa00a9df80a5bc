// Package shape holds the shape model together with the .shapefile parser and
// serializer.
package shape

import "shapeview/internal/geom"

type Kind int

const (
	KindRectangle Kind = iota
	KindTriangle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "Rectangle"
	case KindTriangle:
		return "Triangle"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Base carries the fields every shape has.
type Base struct {
	X     int
	Y     int
	Z     int
	Color string
}

// Shape is implemented only by *Rectangle, *Triangle and *Polygon.
type Shape interface {
	Kind() Kind
	Common() *Base
	// Translate moves the shape origin, and its hitbox if it has one, by
	// the same delta.
	Translate(dx, dy int)
	// HitRegion is the box used for pointer hit-testing, in absolute
	// coordinates. It is not normalized.
	HitRegion() geom.Box

	isShape()
}

type Rectangle struct {
	Base
	Width  int
	Height int
}

func (r *Rectangle) Kind() Kind    { return KindRectangle }
func (r *Rectangle) Common() *Base { return &r.Base }
func (r *Rectangle) isShape()      {}

func (r *Rectangle) Translate(dx, dy int) {
	r.X += dx
	r.Y += dy
}

func (r *Rectangle) HitRegion() geom.Box {
	return geom.Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Triangle has exactly three distinct vertices.
type Triangle struct {
	Base
	Vertices [3]geom.Point
	Hitbox   geom.Box
}

func (t *Triangle) Kind() Kind    { return KindTriangle }
func (t *Triangle) Common() *Base { return &t.Base }
func (t *Triangle) isShape()      {}

func (t *Triangle) Translate(dx, dy int) {
	t.X += dx
	t.Y += dy
	t.Hitbox = t.Hitbox.Translate(dx, dy)
}

func (t *Triangle) HitRegion() geom.Box { return t.Hitbox }

type Polygon struct {
	Base
	Vertices []geom.Point
	Hitbox   geom.Box
}

func (p *Polygon) Kind() Kind    { return KindPolygon }
func (p *Polygon) Common() *Base { return &p.Base }
func (p *Polygon) isShape()      {}

func (p *Polygon) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
	p.Hitbox = p.Hitbox.Translate(dx, dy)
}

func (p *Polygon) HitRegion() geom.Box { return p.Hitbox }

// Vertices returns the vertex offsets of a triangle or polygon, nil for a
// rectangle.
func Vertices(s Shape) []geom.Point {
	switch v := s.(type) {
	case *Triangle:
		return v.Vertices[:]
	case *Polygon:
		return v.Vertices
	default:
		return nil
	}
}

// Absolute returns the vertices of s shifted by its origin.
func Absolute(s Shape) []geom.Point {
	verts := Vertices(s)
	b := s.Common()
	out := make([]geom.Point, len(verts))
	for i, v := range verts {
		out[i] = geom.Point{X: b.X + v.X, Y: b.Y + v.Y}
	}
	return out
}

// HitboxInSync reports whether a triangle or polygon hitbox still matches
// the box derived from its vertices and current origin. Rectangles always
// report true.
func HitboxInSync(s Shape) bool {
	verts := Vertices(s)
	if verts == nil {
		return true
	}
	want := boundsOf(verts, geom.Point{X: s.Common().X, Y: s.Common().Y})
	return s.HitRegion() == want
}

func boundsOf(verts []geom.Point, origin geom.Point) geom.Box {
	minX, minY := verts[0].X, verts[0].Y
	maxX, maxY := minX, minY
	for _, v := range verts[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return geom.Box{X: minX + origin.X, Y: minY + origin.Y, Width: maxX - minX, Height: maxY - minY}
}
