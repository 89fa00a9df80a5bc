package tui

import "shapeview/internal/interact"

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the cell geometry of one frame. View and the mouse handler must
// agree on it.
type layout struct {
	originX, originY int // viewport top-left, in cells
	w, h             int // viewport size, in cells
}

func (m Model) layout() layout {
	lay := layout{originY: headerHeight}
	if m.showSidebar {
		lay.originX = sidebarWidth + 1
	}
	lay.w = max(1, m.width-lay.originX)
	lay.h = max(1, m.height-headerHeight-footerHeight)
	return lay
}

func (l layout) contains(cx, cy int) bool {
	return cx >= l.originX && cx < l.originX+l.w && cy >= l.originY && cy < l.originY+l.h
}

// surfaceSize is the viewport in surface pixels.
func (m Model) surfaceSize() (int, int) {
	lay := m.layout()
	return lay.w * m.cellW, lay.h * m.cellH
}

// SurfaceOffset reports the viewport origin in surface pixels, which is how
// far the side panel and header push the surface into the terminal.
func (m Model) SurfaceOffset() (int, int) {
	lay := m.layout()
	return lay.originX * m.cellW, lay.originY * m.cellH
}

// pointerEvent converts a cell position to device pixels at the cell center.
func (m Model) pointerEvent(t interact.EventType, cx, cy int) interact.Event {
	return interact.Event{Type: t, X: cx*m.cellW + m.cellW/2, Y: cy*m.cellH + m.cellH/2}
}
