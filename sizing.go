package ggterm

import "math"

// SizingInfo describes the terminal grid geometry for one frame, in pixels.
// Width and Height cover the whole viewport including padding.
type SizingInfo struct {
	CellWidth  float32
	CellHeight float32
	PaddingX   float32
	PaddingY   float32
	Width      float32
	Height     float32
}

// CellOrigin returns the pixel position of the top-left corner of the cell
// at (column, row).
func (s SizingInfo) CellOrigin(column, row int) Point {
	return Point{
		X: float32(column)*s.CellWidth + s.PaddingX,
		Y: float32(row)*s.CellHeight + s.PaddingY,
	}
}

// BottomPadding returns the space left below the last full text row:
// the viewport height without the top padding, minus the rows that fit in it.
// Returns 0 for a zero cell height.
func (s SizingInfo) BottomPadding() float32 {
	if s.CellHeight <= 0 {
		return 0
	}
	vh := s.Height - s.PaddingY
	rows := float32(math.Floor(float64(vh / s.CellHeight)))
	return vh - rows*s.CellHeight
}

// Columns returns the number of full cells that fit horizontally.
func (s SizingInfo) Columns() int {
	if s.CellWidth <= 0 {
		return 0
	}
	return int((s.Width - 2*s.PaddingX) / s.CellWidth)
}

// Rows returns the number of full cells that fit vertically.
func (s SizingInfo) Rows() int {
	if s.CellHeight <= 0 {
		return 0
	}
	return int((s.Height - 2*s.PaddingY) / s.CellHeight)
}

// FontMetrics holds the font measurements the decoration shader needs,
// in pixels. Descent and UnderlinePosition follow the font convention of
// being negative below the baseline; consumers take absolute values.
type FontMetrics struct {
	Ascent             float32
	Descent            float32
	UnderlinePosition  float32
	UnderlineThickness float32
}
