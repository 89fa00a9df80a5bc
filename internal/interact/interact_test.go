package interact

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"shapeview/internal/geom"
	"shapeview/internal/shape"
)

func fixed(left, top int) Layout {
	return LayoutFunc(func() (int, int) { return left, top })
}

func parse(t *testing.T, raw string) []shape.Shape {
	t.Helper()
	res := shape.Parse(raw)
	if len(res.Errors) != 0 {
		t.Fatalf("parse errors: %v", res.Errors)
	}
	return res.Shapes
}

func TestHitTest(t *testing.T) {
	shapes := parse(t, "rectangle, 100, 0, 0, -50, 20, FF0000\ntriangle, 10, 10, 1, 0, 0, 10, 0, 5, 10, 00FF00")
	rect, tri := shapes[0], shapes[1]

	tests := []struct {
		name string
		s    shape.Shape
		p    geom.Point
		want bool
	}{
		{"negative rect inside", rect, geom.Point{X: 75, Y: 10}, true},
		{"negative rect left edge", rect, geom.Point{X: 50, Y: 10}, false},
		{"negative rect right edge", rect, geom.Point{X: 100, Y: 10}, false},
		{"negative rect outside", rect, geom.Point{X: 110, Y: 10}, false},
		{"triangle hitbox inside", tri, geom.Point{X: 11, Y: 19}, true},
		{"triangle hitbox corner", tri, geom.Point{X: 10, Y: 10}, false},
		{"triangle hitbox bottom edge", tri, geom.Point{X: 15, Y: 20}, false},
	}
	for _, tt := range tests {
		if got := HitTest(tt.s, tt.p); got != tt.want {
			t.Errorf("%s: HitTest(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestPickFirstMatch(t *testing.T) {
	// both cover (15,15); the lower z one comes first after sorting
	shapes := parse(t, "rectangle, 0, 0, 5, 30, 30, 0000FF\nrectangle, 10, 10, 1, 30, 30, FF0000")
	if got := Pick(shapes, geom.Point{X: 15, Y: 15}); got != 0 {
		t.Errorf("Pick = %d, want 0", got)
	}
	if shapes[0].Common().Z != 1 {
		t.Fatalf("expected z-sorted list")
	}
	if got := Pick(shapes, geom.Point{X: 200, Y: 200}); got != -1 {
		t.Errorf("Pick miss = %d, want -1", got)
	}
}

func TestStepDrag(t *testing.T) {
	shapes := parse(t, "triangle, 10, 10, 0, 0, 0, 10, 0, 5, 10, 00FF00")
	lay := fixed(28, 16)
	var st DragState

	st, redraw := Step(st, shapes, Event{Type: Down, X: 28 + 15, Y: 16 + 15, Button: ButtonPrimary}, lay)
	if !st.Active || st.Index != 0 || redraw {
		t.Fatalf("after down: %+v redraw=%v", st, redraw)
	}

	st, redraw = Step(st, shapes, Event{Type: Move, X: 28 + 20, Y: 16 + 12}, lay)
	if !redraw {
		t.Error("move while dragging should redraw")
	}
	tri := shapes[0].(*shape.Triangle)
	if tri.X != 15 || tri.Y != 7 {
		t.Errorf("origin = (%d,%d), want (15,7)", tri.X, tri.Y)
	}
	if want := (geom.Box{X: 15, Y: 7, Width: 10, Height: 10}); tri.Hitbox != want {
		t.Errorf("hitbox = %+v, want %+v", tri.Hitbox, want)
	}
	if !shape.HitboxInSync(tri) {
		t.Error("hitbox diverged from shape")
	}

	st, _ = Step(st, shapes, Event{Type: Move, X: 28 + 21, Y: 16 + 14}, lay)
	if tri.X != 16 || tri.Y != 9 || tri.Hitbox.X != 16 || tri.Hitbox.Y != 9 {
		t.Errorf("second move: origin (%d,%d) hitbox %+v", tri.X, tri.Y, tri.Hitbox)
	}

	st, redraw = Step(st, shapes, Event{Type: Up}, lay)
	if st.Active || redraw {
		t.Errorf("after up: %+v redraw=%v", st, redraw)
	}

	_, redraw = Step(st, shapes, Event{Type: Move, X: 500, Y: 500}, lay)
	if redraw || tri.X != 16 {
		t.Error("move while idle must be a no-op")
	}
}

func TestStepRectangleHasNoHitbox(t *testing.T) {
	shapes := parse(t, "rectangle, 0, 0, 0, 20, 20, FF0000")
	st, _ := Step(DragState{}, shapes, Event{Type: Down, X: 5, Y: 5, Button: ButtonPrimary}, fixed(0, 0))
	st, _ = Step(st, shapes, Event{Type: Move, X: 8, Y: 1}, fixed(0, 0))
	r := shapes[0].(*shape.Rectangle)
	if r.X != 3 || r.Y != -4 {
		t.Errorf("origin = (%d,%d), want (3,-4)", r.X, r.Y)
	}
	if r.HitRegion() != (geom.Box{X: 3, Y: -4, Width: 20, Height: 20}) {
		t.Errorf("hit region = %+v", r.HitRegion())
	}
	if !st.Active {
		t.Error("still dragging expected")
	}
}

func TestStepIgnoresModifiedAndSecondaryPresses(t *testing.T) {
	shapes := parse(t, "rectangle, 0, 0, 0, 20, 20, FF0000")
	lay := fixed(0, 0)
	tests := []Event{
		{Type: Down, X: 5, Y: 5, Button: ButtonPrimary, Mods: ModShift},
		{Type: Down, X: 5, Y: 5, Button: ButtonPrimary, Mods: ModCtrl | ModAlt},
		{Type: Down, X: 5, Y: 5, Button: ButtonSecondary},
		{Type: Down, X: 5, Y: 5, Button: ButtonNone},
	}
	for _, ev := range tests {
		st, _ := Step(DragState{}, shapes, ev, lay)
		if st.Active {
			t.Errorf("event %+v started a drag", ev)
		}
	}
}

func TestStepLeaveEndsDrag(t *testing.T) {
	shapes := parse(t, "rectangle, 0, 0, 0, 20, 20, FF0000")
	st, _ := Step(DragState{}, shapes, Event{Type: Down, X: 5, Y: 5, Button: ButtonPrimary}, fixed(0, 0))
	st, _ = Step(st, shapes, Event{Type: Leave}, fixed(0, 0))
	if st.Active {
		t.Error("leave should end the drag")
	}
}

func TestStepReadsLayoutPerDrag(t *testing.T) {
	shapes := parse(t, "rectangle, 0, 0, 0, 20, 20, FF0000")
	left := 0
	calls := 0
	lay := LayoutFunc(func() (int, int) {
		calls++
		return left, 0
	})

	st, _ := Step(DragState{}, shapes, Event{Type: Down, X: 5, Y: 5, Button: ButtonPrimary}, lay)
	st, _ = Step(st, shapes, Event{Type: Move, X: 6, Y: 5}, lay)
	st, _ = Step(st, shapes, Event{Type: Up}, lay)
	if calls != 1 {
		t.Errorf("layout read %d times during one drag, want 1", calls)
	}

	// side panel opened between drags: device x shifts by 28
	left = 28
	st, _ = Step(st, shapes, Event{Type: Down, X: 28 + 5, Y: 5, Button: ButtonPrimary}, lay)
	if !st.Active || st.OffsetX != 28 {
		t.Fatalf("second drag: %+v", st)
	}
	if calls != 2 {
		t.Errorf("layout calls = %d, want 2", calls)
	}
	Step(st, shapes, Event{Type: Move, X: 28 + 10, Y: 5}, lay)
	if x := shapes[0].Common().X; x != 6 {
		t.Errorf("x = %d, want 6", x)
	}
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestStepReportsDivergedHitbox(t *testing.T) {
	buf := captureLog(t)
	shapes := parse(t, "triangle, 10, 10, 0, 0, 0, 10, 0, 5, 10, 00FF00")
	tri := shapes[0].(*shape.Triangle)

	st, _ := Step(DragState{}, shapes, Event{Type: Down, X: 15, Y: 15, Button: ButtonPrimary}, fixed(0, 0))
	Step(st, shapes, Event{Type: Move, X: 17, Y: 15}, fixed(0, 0))
	if buf.Len() != 0 {
		t.Fatalf("in-sync drag logged: %s", buf.String())
	}

	// hitbox written on its own, outside Translate
	tri.Hitbox.X += 3
	st, _ = Step(DragState{}, shapes, Event{Type: Down, X: 20, Y: 15, Button: ButtonPrimary}, fixed(0, 0))
	if !st.Active {
		t.Fatal("press inside the hitbox should start a drag")
	}
	_, redraw := Step(st, shapes, Event{Type: Move, X: 21, Y: 15}, fixed(0, 0))
	if !redraw {
		t.Error("move should still redraw")
	}
	if !strings.Contains(buf.String(), "hitbox diverged") {
		t.Errorf("expected a divergence report, log = %q", buf.String())
	}
}
