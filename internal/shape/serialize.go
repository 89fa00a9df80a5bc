package shape

import (
	"strconv"
	"strings"
)

const lineEnding = "\r\n"

// Serialize writes one line per shape: kind, x, y, z, kind specific fields,
// color. Vertex offsets are written, not the absolute hitbox.
func Serialize(shapes []Shape) string {
	var sb strings.Builder
	for _, s := range shapes {
		b := s.Common()
		fields := []string{s.Kind().String(), strconv.Itoa(b.X), strconv.Itoa(b.Y), strconv.Itoa(b.Z)}
		switch v := s.(type) {
		case *Rectangle:
			fields = append(fields, strconv.Itoa(v.Width), strconv.Itoa(v.Height))
		case *Triangle, *Polygon:
			for _, pt := range Vertices(v) {
				fields = append(fields, strconv.Itoa(pt.X), strconv.Itoa(pt.Y))
			}
		}
		fields = append(fields, b.Color)
		sb.WriteString(strings.Join(fields, ", "))
		sb.WriteString(lineEnding)
	}
	return sb.String()
}
