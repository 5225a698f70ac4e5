// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws the animated terminal cursor and decoration quads on
// a GPU device owned by the host application.
//
// # Key Principle
//
// The renderer RECEIVES a GPU device from the host, it does NOT create one.
// Hosts pass a hal.Device and hal.Queue to New, or a DeviceHandle exposing
// them to NewFromProvider.
//
// # Frame Flow
//
// Each RenderFrame call:
//
//  1. computes the cursor's target quad from its shape, cell and sizing
//  2. advances the cursor animation one step toward it
//  3. appends the decoration quads after the cursor
//  4. triangulates the batch, uploads it, binds the grid uniforms and
//     records a single draw call that blends over the target
//
// A frame with no cursor and no decorations does no GPU work.
//
// # Usage
//
//	r, err := render.NewFromProvider(provider, render.DefaultShader())
//	if err != nil {
//	    return err
//	}
//	defer r.Release()
//
//	// Per frame, after text has been drawn into view:
//	err = r.RenderFrame(view, render.Frame{
//	    Sizing:  sizing,
//	    Metrics: face.Metrics(),
//	    Cursor:  &ggterm.CursorDescriptor{Shape: ggterm.CursorBeam, Column: col, Row: row, Color: fg},
//	})
//
// # Architecture
//
//	             Host application
//	                    │
//	         DeviceHandle / hal.Device
//	                    │
//	                    ▼
//	            render.Renderer ─── ggterm.AnimatorState
//	                    │           ggterm.DrawList
//	                    ▼
//	          internal/gpu.QuadRenderer
//	                    │
//	                    ▼
//	                wgpu/hal
package render
