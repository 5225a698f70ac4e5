package ggterm

import "testing"

var testSizing = SizingInfo{
	CellWidth:  8,
	CellHeight: 16,
	PaddingX:   2,
	PaddingY:   4,
	Width:      800,
	Height:     600,
}

func TestDrawListOrder(t *testing.T) {
	var list DrawList
	red := RGB{R: 255}
	green := RGB{G: 255}

	list.AddRect(0, 0, 10, 10, red, 1)
	list.Add(RectQuad(5, 5, 10, 10, green, 0.5))

	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}
	quads := list.Quads()
	if quads[0].Color != red || quads[1].Color != green {
		t.Errorf("quads out of order: %v", quads)
	}
	if quads[1].Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5", quads[1].Alpha)
	}
}

func TestDrawListReset(t *testing.T) {
	var list DrawList
	for i := range 10 {
		list.AddRect(float32(i), 0, 1, 1, RGB{}, 1)
	}
	capBefore := cap(list.Quads())

	list.Reset()
	if list.Len() != 0 {
		t.Errorf("Len() after Reset = %d", list.Len())
	}
	if cap(list.Quads()) != capBefore {
		t.Error("Reset dropped the backing storage")
	}
}

func TestDrawListAddCursor(t *testing.T) {
	var list DrawList
	var state AnimatorState
	cursor := CursorDescriptor{Shape: CursorBeam, Column: 3, Row: 2, Color: MustHex("#c5c8c6")}
	target := CursorTarget(testSizing, cursor, 0.15)

	// Start on target so the first frame draws the exact cursor.
	state.Positions = target

	q := list.AddCursor(&state, testSizing, cursor, 0.15)
	if list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", list.Len())
	}
	if q.Points != target {
		t.Errorf("cursor quad = %v, want %v", q.Points, target)
	}
	if q.Alpha != 1 || q.Color != cursor.Color {
		t.Errorf("cursor quad color = %v alpha %v", q.Color, q.Alpha)
	}
	if list.Quads()[0] != q {
		t.Error("returned quad differs from the appended one")
	}
}

func TestAnimateCursorMovesTowardTarget(t *testing.T) {
	var state AnimatorState
	cursor := CursorDescriptor{Shape: CursorBlock, Column: 10, Row: 5}
	target := CursorTarget(testSizing, cursor, 0.15)

	first := AnimateCursor(&state, testSizing, cursor, 0.15)
	second := AnimateCursor(&state, testSizing, cursor, 0.15)

	for i := range target {
		d1 := first.Points[i].Distance(target[i])
		d2 := second.Points[i].Distance(target[i])
		if d2 >= d1 {
			t.Errorf("corner %d: distance %v did not shrink from %v", i, d2, d1)
		}
	}
}

func TestAddVisualBell(t *testing.T) {
	tests := []struct {
		name      string
		intensity float32
		wantLen   int
		wantAlpha float32
	}{
		{"off", 0, 0, 0},
		{"negative", -1, 0, 0},
		{"half", 0.5, 1, 0.5},
		{"clamped", 3, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list DrawList
			list.AddVisualBell(testSizing, RGB{R: 255, G: 255, B: 255}, tt.intensity)
			if list.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", list.Len(), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			q := list.Quads()[0]
			if q.Alpha != tt.wantAlpha {
				t.Errorf("alpha = %v, want %v", q.Alpha, tt.wantAlpha)
			}
			lo, hi := q.Bounds()
			if lo != (Point{}) || hi != (Point{X: 800, Y: 600}) {
				t.Errorf("bell bounds = %v..%v, want full viewport", lo, hi)
			}
		})
	}
}

func TestAddUnderline(t *testing.T) {
	metrics := FontMetrics{Ascent: 12, Descent: -4, UnderlinePosition: -2, UnderlineThickness: 2}

	var list DrawList
	list.AddUnderline(testSizing, metrics, 1, 0, 3, RGB{B: 255})
	if list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", list.Len())
	}

	// Cell (1, 0) starts at (10, 4); the baseline is 4 above the cell
	// bottom at y=16, the bar is centered 2 below it.
	lo, hi := list.Quads()[0].Bounds()
	if lo != (Point{X: 10, Y: 17}) || hi != (Point{X: 34, Y: 19}) {
		t.Errorf("underline bounds = %v..%v, want (10,17)..(34,19)", lo, hi)
	}

	list.AddUnderline(testSizing, metrics, 0, 0, 0, RGB{})
	if list.Len() != 1 {
		t.Error("zero-width underline was added")
	}
}

func TestAddUnderlineMinThickness(t *testing.T) {
	var list DrawList
	list.AddUnderline(testSizing, FontMetrics{Descent: -4}, 0, 0, 1, RGB{})
	lo, hi := list.Quads()[0].Bounds()
	if h := hi.Y - lo.Y; h != 1 {
		t.Errorf("underline height = %v, want 1", h)
	}
}
