package geom

import "errors"

var (
	ErrNoVertices         = errors.New("geom: no vertices")
	ErrDanglingCoordinate = errors.New("geom: coordinate without a pair")
	ErrInvalidCoordinate  = errors.New("geom: coordinate is not an integer")
	ErrDuplicateVertex    = errors.New("geom: duplicate vertex")
)

// BuildVertexSet reads x/y pairs from tokens[offset:len(tokens)-1]; the last
// token is the color and is not read here. The bounding box corner is the
// vertex minimum shifted by origin, its extent is max-min.
//
// Any failure returns the zero VertexSet.
func BuildVertexSet(tokens []string, offset int, origin Point) (VertexSet, error) {
	end := len(tokens) - 1
	if offset < 0 || offset >= end {
		return VertexSet{}, ErrNoVertices
	}
	if (end-offset)%2 != 0 {
		return VertexSet{}, ErrDanglingCoordinate
	}

	var (
		verts []Point
		minX  int
		minY  int
		maxX  int
		maxY  int
	)
	seen := make(map[Point]struct{}, (end-offset)/2)
	for i := offset; i+1 < end; i += 2 {
		x, err1 := ParseInteger(tokens[i])
		y, err2 := ParseInteger(tokens[i+1])
		if err1 != nil || err2 != nil {
			return VertexSet{}, ErrInvalidCoordinate
		}
		pt := Point{X: x, Y: y}
		if _, dup := seen[pt]; dup {
			return VertexSet{}, ErrDuplicateVertex
		}
		seen[pt] = struct{}{}
		verts = append(verts, pt)
		if len(verts) == 1 {
			minX, minY, maxX, maxY = x, y, x, y
			continue
		}
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	return VertexSet{
		Vertices: verts,
		Bounds: Box{
			X:      minX + origin.X,
			Y:      minY + origin.Y,
			Width:  maxX - minX,
			Height: maxY - minY,
		},
	}, nil
}
