// Package ggterm turns a terminal cursor into animated screen-space
// geometry and batches it with other decoration rectangles for a single GPU
// draw call per frame.
//
// # Overview
//
// The root package is pure and GPU-free:
//   - TargetQuad computes the corners a cursor should occupy for its shape
//     and cell.
//   - AnimatorState follows that target with a per-corner damped
//     interpolation, so the cursor glides between cells and snaps on large
//     jumps.
//   - DrawList collects the cursor quad and other decorations (visual bell,
//     underlines) in draw order.
//
// The GPU side lives in the render package, which owns the animator state,
// triangulates the draw list, uploads it and issues the draw.
//
// # Quick Start
//
//	var state ggterm.AnimatorState
//	var list ggterm.DrawList
//
//	// Once per frame:
//	list.Reset()
//	list.AddCursor(&state, sizing, cursor, 0.15)
//	list.AddVisualBell(sizing, ggterm.RGB{R: 255, G: 255, B: 255}, bell)
//	quads := list.Quads()
//
// Most hosts let render.Renderer keep the animator state instead:
//
//	err := r.RenderFrame(view, render.Frame{
//	    Sizing:      sizing,
//	    Metrics:     metrics,
//	    Cursor:      &cursor,
//	    Decorations: bells.Quads(),
//	})
//
// # Coordinate System
//
// Geometry is in pixels:
//   - Origin (0,0) at the top-left corner of the viewport
//   - X increases right
//   - Y increases down
//
// Conversion to normalized device coordinates happens only when vertices
// are built for the GPU.
package ggterm
