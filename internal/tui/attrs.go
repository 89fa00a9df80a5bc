package tui

import (
	"fmt"
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"shapeview/internal/shape"
)

var tableColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "kind", Width: 10},
	{Title: "x", Width: 6},
	{Title: "y", Width: 6},
	{Title: "z", Width: 4},
	{Title: "color", Width: 8},
	{Title: "size", Width: 10},
	{Title: "vertices", Width: 28},
}

// refreshTable rebuilds the shape table rows from the live shape list.
func (m *Model) refreshTable() {
	rows := shapeRows(m.shapes)
	// clear rows first so the old rows never meet the new columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tableColumns)
	m.tbl.SetRows(rows)
}

func shapeRows(shapes []shape.Shape) []table.Row {
	rows := make([]table.Row, 0, len(shapes))
	for i, s := range shapes {
		b := s.Common()
		hb := s.HitRegion()
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			s.Kind().String(),
			strconv.Itoa(b.X),
			strconv.Itoa(b.Y),
			strconv.Itoa(b.Z),
			b.Color,
			fmt.Sprintf("%dx%d", hb.Width, hb.Height),
			vertexList(s),
		})
	}
	return rows
}

func vertexList(s shape.Shape) string {
	verts := shape.Vertices(s)
	if len(verts) == 0 {
		return "-"
	}
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = fmt.Sprintf("(%d,%d)", v.X, v.Y)
	}
	return strings.Join(parts, " ")
}
