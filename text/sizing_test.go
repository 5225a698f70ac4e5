package text

import (
	"testing"

	"github.com/gogpu/ggterm"
)

func TestSizing(t *testing.T) {
	face, err := LoadGoMono(14)
	if err != nil {
		t.Fatalf("LoadGoMono: %v", err)
	}
	cw, ch := face.CellSize()

	s := Sizing(face, 80, 24, 3, 5)
	if s.CellWidth != cw || s.CellHeight != ch {
		t.Errorf("cell = %vx%v, want %vx%v", s.CellWidth, s.CellHeight, cw, ch)
	}
	if s.Width != 80*cw+6 || s.Height != 24*ch+10 {
		t.Errorf("viewport = %vx%v", s.Width, s.Height)
	}
	if s.Columns() != 80 || s.Rows() != 24 {
		t.Errorf("grid = %dx%d, want 80x24", s.Columns(), s.Rows())
	}
	if s.BottomPadding() != 5 {
		t.Errorf("BottomPadding() = %v, want 5", s.BottomPadding())
	}
}

func TestCursor(t *testing.T) {
	color := ggterm.RGB{R: 1, G: 2, B: 3}

	c := Cursor(ggterm.CursorBlock, "ab漢", 2, 7, color)
	if !c.Wide || c.Column != 2 || c.Row != 7 || c.Color != color || c.Shape != ggterm.CursorBlock {
		t.Errorf("Cursor on wide cell = %+v", c)
	}

	// The right half of a wide cluster snaps to its left column.
	c = Cursor(ggterm.CursorBlock, "ab漢", 3, 7, color)
	if !c.Wide || c.Column != 2 {
		t.Errorf("Cursor on right half = column %d wide %v, want column 2 wide true", c.Column, c.Wide)
	}

	c = Cursor(ggterm.CursorBeam, "ab漢", 1, 0, color)
	if c.Wide {
		t.Error("narrow cell reported wide")
	}

	// Past the end of the line the cursor is narrow.
	c = Cursor(ggterm.CursorBeam, "ab", 10, 0, color)
	if c.Wide {
		t.Error("empty cell reported wide")
	}
}
