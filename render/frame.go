// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/ggterm"

// Frame is the per-frame input of RenderFrame. The host builds it from
// immutable snapshots of its grid, font and cursor state.
type Frame struct {
	Sizing  ggterm.SizingInfo
	Metrics ggterm.FontMetrics

	// Cursor is the cursor to animate, or nil when there is none.
	Cursor *ggterm.CursorDescriptor

	// Decorations are drawn after the cursor, in order.
	Decorations []ggterm.Quad
}

// Empty reports whether the frame has nothing to draw.
func (f Frame) Empty() bool {
	return len(f.Decorations) == 0 && (f.Cursor == nil || f.Cursor.Shape == ggterm.CursorHidden)
}
