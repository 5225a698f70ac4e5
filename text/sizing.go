package text

import "github.com/gogpu/ggterm"

// Sizing builds the grid geometry for a cols x rows terminal drawn with
// face, with padX and padY pixels of padding on each side.
func Sizing(face *Face, cols, rows int, padX, padY float32) ggterm.SizingInfo {
	cw, ch := face.CellSize()
	return ggterm.SizingInfo{
		CellWidth:  cw,
		CellHeight: ch,
		PaddingX:   padX,
		PaddingY:   padY,
		Width:      float32(cols)*cw + 2*padX,
		Height:     float32(rows)*ch + 2*padY,
	}
}

// Cursor describes the cursor at (column, row) of a grid whose row text is
// line, marking it wide when it sits on a double-width cluster. A column in
// the right half of a wide cluster moves to the cluster's left column.
func Cursor(shape ggterm.CursorShape, line string, column, row int, color ggterm.RGB) ggterm.CursorDescriptor {
	c := ggterm.CursorDescriptor{Shape: shape, Column: column, Row: row, Color: color}
	if _, start, wide, ok := CellAt(line, column); ok && wide {
		c.Column = start
		c.Wide = true
	}
	return c
}
