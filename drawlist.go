package ggterm

// DrawList accumulates the quads of one frame in draw order. Later quads
// are drawn over earlier ones.
//
// A DrawList is reused across frames: call Reset at the start of a frame to
// keep the backing storage.
type DrawList struct {
	quads []Quad
}

// Reset empties the list, keeping its capacity.
func (d *DrawList) Reset() {
	d.quads = d.quads[:0]
}

// Len returns the number of queued quads.
func (d *DrawList) Len() int {
	return len(d.quads)
}

// Quads returns the queued quads. The slice is valid until the next Reset.
func (d *DrawList) Quads() []Quad {
	return d.quads
}

// Add appends a quad.
func (d *DrawList) Add(q Quad) {
	d.quads = append(d.quads, q)
}

// AddRect appends an axis-aligned rectangle.
func (d *DrawList) AddRect(x, y, width, height float32, color RGB, alpha float32) {
	d.Add(RectQuad(x, y, width, height, color, alpha))
}

// AddCursor advances state one frame toward the cursor's target geometry
// and appends the resulting quad, fully opaque. It returns the appended quad.
func (d *DrawList) AddCursor(state *AnimatorState, sizing SizingInfo, cursor CursorDescriptor, thicknessRatio float32) Quad {
	q := AnimateCursor(state, sizing, cursor, thicknessRatio)
	d.Add(q)
	return q
}

// AnimateCursor advances state one frame toward the cursor's target geometry
// and returns the quad to draw.
func AnimateCursor(state *AnimatorState, sizing SizingInfo, cursor CursorDescriptor, thicknessRatio float32) Quad {
	target := CursorTarget(sizing, cursor, thicknessRatio)
	state.Advance(target, sizing.Width, sizing.Height)
	return NewQuad(state.Positions, cursor.Color, 1)
}

// AddVisualBell appends a flash covering the whole viewport. intensity is
// the bell's current strength in [0, 1] and becomes the quad's alpha;
// a non-positive intensity adds nothing.
func (d *DrawList) AddVisualBell(sizing SizingInfo, color RGB, intensity float32) {
	if intensity <= 0 {
		return
	}
	d.AddRect(0, 0, sizing.Width, sizing.Height, color, min(intensity, 1))
}

// AddUnderline appends an underline decoration below the text of cols cells
// starting at (column, row). The bar sits UnderlinePosition below the
// baseline and is UnderlineThickness tall, never thinner than one pixel.
func (d *DrawList) AddUnderline(sizing SizingInfo, metrics FontMetrics, column, row, cols int, color RGB) {
	if cols <= 0 {
		return
	}
	origin := sizing.CellOrigin(column, row)
	thickness := max(metrics.UnderlineThickness, 1)

	// The baseline sits |descent| above the cell bottom.
	baseline := origin.Y + sizing.CellHeight - abs32(metrics.Descent)
	y := baseline + abs32(metrics.UnderlinePosition) - thickness/2

	d.AddRect(origin.X, y, float32(cols)*sizing.CellWidth, thickness, color, 1)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
