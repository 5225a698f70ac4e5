package ggterm

import (
	"fmt"
	"math"
	"strings"
)

// CursorShape selects the geometry TargetQuad produces.
type CursorShape uint8

const (
	// CursorBlock fills the cell. It is drawn through the fallback branch.
	CursorBlock CursorShape = iota

	// CursorUnderline is a horizontal bar along the bottom of the cell.
	CursorUnderline

	// CursorBeam is a vertical bar at the left edge of the cell.
	CursorBeam

	// CursorHollowBlock is an outlined block. Outline rendering is disabled;
	// it is drawn through the fallback branch like CursorBlock.
	CursorHollowBlock

	// CursorHidden is reported by the terminal when the cursor is invisible.
	// Callers normally skip it; TargetQuad treats it as the fallback.
	CursorHidden
)

var cursorShapeNames = [...]string{
	CursorBlock:       "block",
	CursorUnderline:   "underline",
	CursorBeam:        "beam",
	CursorHollowBlock: "hollow_block",
	CursorHidden:      "hidden",
}

// String returns the lower-case shape name.
func (s CursorShape) String() string {
	if int(s) < len(cursorShapeNames) {
		return cursorShapeNames[s]
	}
	return fmt.Sprintf("CursorShape(%d)", uint8(s))
}

// ParseCursorShape parses a shape name as produced by String.
// Matching is case-insensitive.
func ParseCursorShape(name string) (CursorShape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range cursorShapeNames {
		if n == name {
			return CursorShape(i), nil //nolint:gosec // index of a short array
		}
	}
	return 0, fmt.Errorf("ggterm: unknown cursor shape %q", name)
}

// CursorDescriptor is the terminal's view of the cursor for one frame.
// The same descriptor identity across frames addresses the same
// AnimatorState.
type CursorDescriptor struct {
	Shape  CursorShape
	Column int
	Row    int
	Wide   bool
	Color  RGB
}

// CursorThickness returns the bar thickness in pixels for a thickness ratio
// relative to the cell width, never thinner than one pixel.
func CursorThickness(ratio, cellWidth float32) float32 {
	return max(1, float32(math.Round(float64(ratio*cellWidth))))
}

// TargetQuad computes the corners the cursor should settle on.
//
// originX/originY is the top-left corner of the cursor cell. The thickness
// is derived from the single-cell width; wide cursors double only the
// effective width.
func TargetQuad(shape CursorShape, originX, originY, cellWidth, cellHeight, thicknessRatio float32, wide bool) [4]Point {
	thickness := CursorThickness(thicknessRatio, cellWidth)

	width := cellWidth
	if wide {
		width *= 2
	}

	switch shape {
	case CursorBeam:
		return beam(originX, originY, cellHeight, thickness)
	case CursorUnderline:
		return underline(originX, originY, width, cellHeight, thickness)
	default:
		// Block shapes reuse the beam formula with the effective width in the
		// thickness slot.
		return beam(originX, originY, cellHeight, width)
	}
}

// CursorTarget resolves a descriptor against the grid sizing and returns the
// target corners.
func CursorTarget(sizing SizingInfo, cursor CursorDescriptor, thicknessRatio float32) [4]Point {
	origin := sizing.CellOrigin(cursor.Column, cursor.Row)
	return TargetQuad(cursor.Shape, origin.X, origin.Y, sizing.CellWidth, sizing.CellHeight, thicknessRatio, cursor.Wide)
}

// beam is a vertical bar of the given thickness spanning height.
func beam(x, y, height, thickness float32) [4]Point {
	return rectPoints(x, y, thickness, height)
}

// underline is a horizontal bar of the given thickness resting on the
// bottom edge of the cell.
func underline(x, y, width, height, thickness float32) [4]Point {
	return rectPoints(x, y+height-thickness, width, thickness)
}
