package shape

import (
	"sort"
	"strings"

	"shapeview/internal/geom"
)

const (
	rectangleFields = 7
	triangleFields  = 11
	// tag, x, y, z precede the vertex pairs
	vertexOffset = 4
)

// Result is the outcome of one parse pass. Shapes is sorted ascending by Z,
// equal Z keeping file order.
type Result struct {
	Shapes []Shape
	Errors []ParseError
}

type parser struct {
	res    Result
	nextID int
}

// Parse turns shapefile text into shapes. Malformed lines never abort the
// pass: each one becomes a ParseError and parsing continues with the next
// line. Parse does not report empty input; see Load.
func Parse(raw string) Result {
	p := &parser{}
	for _, line := range strings.Split(raw, "\n") {
		p.parseLine(strings.TrimSuffix(line, "\r"))
	}
	sort.SliceStable(p.res.Shapes, func(i, j int) bool {
		return p.res.Shapes[i].Common().Z < p.res.Shapes[j].Common().Z
	})
	return p.res
}

func (p *parser) fail(line, msg string, kind ErrorKind) {
	p.res.Errors = append(p.res.Errors, ParseError{ID: p.nextID, Line: line, Message: msg, Kind: kind})
	p.nextID++
}

func (p *parser) parseLine(line string) {
	defer func() {
		if r := recover(); r != nil {
			p.fail(line, msgUnsupported, InvalidFieldValue)
		}
	}()

	tokens := strings.Split(line, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	switch strings.ToLower(tokens[0]) {
	case "rectangle":
		p.parseRectangle(line, tokens)
	case "triangle":
		p.parseTriangle(line, tokens)
	case "polygon":
		p.parsePolygon(line, tokens)
	default:
		if strings.TrimSpace(line) != "" {
			p.fail(line, msgUnsupported, UnrecognizedShapeKind)
		}
	}
}

// parseBase reads x, y, z and the trailing color.
func parseBase(tokens []string) (Base, bool) {
	x, err1 := geom.ParseInteger(tokens[1])
	y, err2 := geom.ParseInteger(tokens[2])
	z, err3 := geom.ParseInteger(tokens[3])
	color := tokens[len(tokens)-1]
	if err1 != nil || err2 != nil || err3 != nil || !geom.IsValidColor(color) {
		return Base{}, false
	}
	return Base{X: x, Y: y, Z: z, Color: color}, true
}

func (p *parser) parseRectangle(line string, tokens []string) {
	if len(tokens) != rectangleFields {
		p.fail(line, fieldCountMessage(KindRectangle), FieldCountMismatch)
		return
	}
	base, ok := parseBase(tokens)
	w, err1 := geom.ParseInteger(tokens[4])
	h, err2 := geom.ParseInteger(tokens[5])
	if !ok || err1 != nil || err2 != nil {
		p.fail(line, invalidFieldMessage(KindRectangle), InvalidFieldValue)
		return
	}
	p.res.Shapes = append(p.res.Shapes, &Rectangle{Base: base, Width: w, Height: h})
}

func (p *parser) parseTriangle(line string, tokens []string) {
	if len(tokens) != triangleFields {
		p.fail(line, fieldCountMessage(KindTriangle), FieldCountMismatch)
		return
	}
	base, vs, ok := parseVertexShape(tokens)
	if !ok || len(vs.Vertices) != 3 {
		p.fail(line, invalidFieldMessage(KindTriangle), InvalidFieldValue)
		return
	}
	t := &Triangle{Base: base, Hitbox: vs.Bounds}
	copy(t.Vertices[:], vs.Vertices)
	p.res.Shapes = append(p.res.Shapes, t)
}

func (p *parser) parsePolygon(line string, tokens []string) {
	if len(tokens)%2 != 1 {
		p.fail(line, fieldCountMessage(KindPolygon), FieldCountMismatch)
		return
	}
	base, vs, ok := parseVertexShape(tokens)
	if !ok {
		p.fail(line, invalidFieldMessage(KindPolygon), InvalidFieldValue)
		return
	}
	p.res.Shapes = append(p.res.Shapes, &Polygon{Base: base, Vertices: vs.Vertices, Hitbox: vs.Bounds})
}

func parseVertexShape(tokens []string) (Base, geom.VertexSet, bool) {
	if len(tokens) <= vertexOffset {
		return Base{}, geom.VertexSet{}, false
	}
	base, ok := parseBase(tokens)
	if !ok {
		return Base{}, geom.VertexSet{}, false
	}
	vs, err := geom.BuildVertexSet(tokens, vertexOffset, geom.Point{X: base.X, Y: base.Y})
	if err != nil {
		return Base{}, geom.VertexSet{}, false
	}
	return base, vs, true
}
