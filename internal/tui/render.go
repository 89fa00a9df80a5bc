package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"shapeview/internal/render"
)

// upper half block: foreground paints the top half of the cell
const halfBlock = "▀"

// repaint resizes the surface to the viewport, paints the shapes and rebuilds
// the cached canvas rows.
func (m *Model) repaint() {
	if m.width == 0 || m.height == 0 {
		return
	}
	w, h := m.surfaceSize()
	if err := m.engine.Paint(w, h, m.shapes); err != nil {
		m.log.Error("paint failed", "err", err)
		m.status = "render error: " + err.Error()
		return
	}
	lay := m.layout()
	m.canvas = canvasRows(m.engine.Surface.Image(), lay.w, lay.h)
}

// canvasRows scales img to w x 2h pixels and packs two vertical pixels into
// each cell. Runs of cells with the same colors share one style.
func canvasRows(img image.Image, w, h int) []string {
	small := render.Downsample(img, w, h*2, canvasBg)
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		run := 0
		var runFg, runBg string
		flush := func() {
			if run == 0 {
				return
			}
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(runFg)).Background(lipgloss.Color(runBg))
			b.WriteString(st.Render(strings.Repeat(halfBlock, run)))
			run = 0
		}
		for x := 0; x < w; x++ {
			fg := hexAt(small, x, 2*y)
			bg := hexAt(small, x, 2*y+1)
			if run > 0 && (fg != runFg || bg != runBg) {
				flush()
			}
			runFg, runBg = fg, bg
			run++
		}
		flush()
		rows[y] = b.String()
	}
	return rows
}

func hexAt(img *image.RGBA, x, y int) string {
	c, ok := colorful.MakeColor(img.RGBAAt(x, y))
	if !ok {
		return canvasBgHex
	}
	return c.Hex()
}
