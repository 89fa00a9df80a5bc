package geom

// Point is an integer coordinate pair. Shape vertices store offsets
// relative to the owning shape's origin.
type Point struct {
	X int
	Y int
}

// Box is an axis-aligned rectangle. Width and Height may be negative, in which
// case the box extends left/up from (X, Y).
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Normalize returns the same covered area with non-negative extent.
func (b Box) Normalize() Box {
	if b.Width < 0 {
		b.X += b.Width
		b.Width = -b.Width
	}
	if b.Height < 0 {
		b.Y += b.Height
		b.Height = -b.Height
	}
	return b
}

// Contains reports whether p lies strictly inside the box. Points on any of
// the four edges are outside.
func (b Box) Contains(p Point) bool {
	n := b.Normalize()
	return p.X > n.X && p.X < n.X+n.Width && p.Y > n.Y && p.Y < n.Y+n.Height
}

func (b Box) Translate(dx, dy int) Box {
	b.X += dx
	b.Y += dy
	return b
}

// VertexSet is the result of BuildVertexSet: vertices in input order and their
// bounding box in absolute coordinates.
type VertexSet struct {
	Vertices []Point
	Bounds   Box
}
