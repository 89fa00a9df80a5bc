// Package interact implements the pointer drag state machine. It knows
// nothing about the terminal: hosts translate their mouse events into Event
// values and hand in a Layout that reports where the surface sits.
package interact

import (
	"shapeview/internal/geom"
	"shapeview/internal/shape"
)

type EventType int

const (
	Down EventType = iota
	Move
	Up
	Leave
)

type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Mods is a bitmask of modifier keys held during an event.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
)

// Event is one pointer event in device coordinates.
type Event struct {
	Type   EventType
	X, Y   int
	Button Button
	Mods   Mods
}

// Layout reports the surface position inside the device: the width of the
// side panel to its left and the height of whatever sits above it.
type Layout interface {
	SurfaceOffset() (left, top int)
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func() (left, top int)

func (f LayoutFunc) SurfaceOffset() (int, int) { return f() }

// DragState is owned by the caller and threaded through Step. The zero value
// is idle.
type DragState struct {
	Active bool
	// Index of the dragged shape in the list passed to Step.
	Index int
	// Last pointer position, surface-local.
	LastX, LastY int
	// Offsets read from Layout when the drag started.
	OffsetX, OffsetY int
}

// HitTest reports whether p, in surface coordinates, lies strictly inside the
// hit region of s.
func HitTest(s shape.Shape, p geom.Point) bool {
	switch v := s.(type) {
	case *shape.Rectangle:
		return v.HitRegion().Contains(p)
	case *shape.Triangle:
		return v.Hitbox.Contains(p)
	case *shape.Polygon:
		return v.Hitbox.Contains(p)
	default:
		return false
	}
}

// Pick returns the index of the first shape in list order whose hit region
// contains p, or -1. With a z-sorted list this is the lowest z match, which
// can differ from the shape painted on top where shapes overlap.
func Pick(shapes []shape.Shape, p geom.Point) int {
	for i, s := range shapes {
		if HitTest(s, p) {
			return i
		}
	}
	return -1
}

// Step advances the drag state machine by one event. It returns the next
// state and whether the surface must be repainted. Only the shape referenced
// by the drag state is ever mutated.
func Step(st DragState, shapes []shape.Shape, ev Event, lay Layout) (DragState, bool) {
	switch ev.Type {
	case Down:
		if st.Active || ev.Button != ButtonPrimary || ev.Mods != 0 {
			return st, false
		}
		left, top := lay.SurfaceOffset()
		p := geom.Point{X: ev.X - left, Y: ev.Y - top}
		idx := Pick(shapes, p)
		if idx < 0 {
			return DragState{}, false
		}
		return DragState{Active: true, Index: idx, LastX: p.X, LastY: p.Y, OffsetX: left, OffsetY: top}, false

	case Move:
		if !st.Active || st.Index < 0 || st.Index >= len(shapes) {
			return st, false
		}
		x, y := ev.X-st.OffsetX, ev.Y-st.OffsetY
		dx, dy := x-st.LastX, y-st.LastY
		st.LastX, st.LastY = x, y
		s := shapes[st.Index]
		s.Translate(dx, dy)
		if !shape.HitboxInSync(s) {
			Logger().Error("hitbox diverged from shape", "index", st.Index, "kind", s.Kind(),
				"hitbox", s.HitRegion(), "x", s.Common().X, "y", s.Common().Y)
		}
		return st, true

	case Up, Leave:
		return DragState{}, false
	}
	return st, false
}
