// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/ggterm"
	"github.com/gogpu/ggterm/internal/gpu"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by the renderer. ErrShaderCompile, ErrNilDevice and
// ErrReleased are shared with the GPU layer, so errors.Is matches either.
var (
	ErrShaderCompile = gpu.ErrShaderCompile
	ErrNilDevice     = gpu.ErrNilDevice
	ErrReleased      = gpu.ErrReleased

	// ErrProviderNotHAL is returned by NewFromProvider when the provider
	// does not expose hal.Device and hal.Queue.
	ErrProviderNotHAL = errors.New("render: device provider does not expose HAL objects")
)

// Stats counts the work done by a Renderer.
type Stats = gpu.Stats

// OffscreenTarget is a texture that can be rendered to and read back.
type OffscreenTarget = gpu.OffscreenTarget

// Renderer draws the animated terminal cursor and other decoration quads.
//
// It owns the smoothing state of the one on-screen cursor, a reusable draw
// list and the GPU quad renderer. Every RenderFrame advances the cursor one
// step toward its target and issues at most one draw call.
//
// A Renderer is not safe for concurrent use; it belongs to the render
// goroutine. Call Release when done.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	quads  *gpu.QuadRenderer
	cursor ggterm.AnimatorState
	list   ggterm.DrawList

	thickness float32
	format    gputypes.TextureFormat
	label     string
	released  bool
}

// New creates a renderer on a HAL device and queue. shaderSource is the WGSL
// program for decoration quads; pass DefaultShader() unless the host ships
// its own.
//
// Construction fails with ErrShaderCompile when the program does not
// compile. No other error is returned later for the same shader.
func New(device hal.Device, queue hal.Queue, shaderSource string, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	quads, err := gpu.NewQuadRenderer(device, queue, shaderSource, gpu.Config{
		Format: o.format,
		Label:  o.label,
	})
	if err != nil {
		return nil, err
	}

	ggterm.Logger().Info("cursor renderer ready", "label", o.label, "thickness", o.thickness)
	return &Renderer{
		device:    device,
		queue:     queue,
		quads:     quads,
		thickness: o.thickness,
		format:    o.format,
		label:     o.label,
	}, nil
}

// NewFromProvider creates a renderer on the device shared by a host
// application. The provider's SurfaceFormat becomes the target format unless
// WithTargetFormat overrides it.
func NewFromProvider(provider DeviceHandle, shaderSource string, opts ...Option) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNilDevice
	}
	device, queue, err := halObjects(provider)
	if err != nil {
		return nil, err
	}
	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		opts = append([]Option{WithTargetFormat(f)}, opts...)
	}
	return New(device, queue, shaderSource, opts...)
}

// CursorQuad advances the cursor animation one frame toward the geometry of
// cursor and returns the quad to draw.
func (r *Renderer) CursorQuad(sizing ggterm.SizingInfo, cursor ggterm.CursorDescriptor) ggterm.Quad {
	return ggterm.AnimateCursor(&r.cursor, sizing, cursor, r.thickness)
}

// RenderFrame draws one frame of decorations into target, preserving its
// existing contents. The cursor, when present and not hidden, is animated
// and drawn first; frame.Decorations follow in order, so later quads cover
// earlier ones.
//
// A frame with nothing to draw issues no GPU work.
func (r *Renderer) RenderFrame(target hal.TextureView, frame Frame) error {
	if r.released {
		return ErrReleased
	}

	r.list.Reset()
	if c := frame.Cursor; c != nil && c.Shape != ggterm.CursorHidden {
		r.list.AddCursor(&r.cursor, frame.Sizing, *c, r.thickness)
	}
	for _, q := range frame.Decorations {
		r.list.Add(q)
	}

	return r.quads.Draw(target, frame.Sizing, frame.Metrics, r.list.Quads())
}

// CursorState returns the current animation state of the cursor.
func (r *Renderer) CursorState() ggterm.AnimatorState {
	return r.cursor
}

// ResetCursor drops the animation state so the next frame starts from the
// zero state. Hosts call it when the grid is rebuilt.
func (r *Renderer) ResetCursor() {
	r.cursor.Reset()
}

// SetCursorState replaces the animation state, for example to place the
// cursor on its target without gliding in from the origin.
func (r *Renderer) SetCursorState(s ggterm.AnimatorState) {
	r.cursor = s
}

// Thickness returns the cursor thickness ratio in use.
func (r *Renderer) Thickness() float32 {
	return r.thickness
}

// Format returns the color format expected of RenderFrame targets.
func (r *Renderer) Format() gputypes.TextureFormat {
	return r.format
}

// Stats returns the GPU work counters.
func (r *Renderer) Stats() Stats {
	return r.quads.Stats()
}

// NewOffscreenTarget creates a width x height texture in the renderer's
// target format on the renderer's device.
func (r *Renderer) NewOffscreenTarget(width, height uint32) (*OffscreenTarget, error) {
	if r.released {
		return nil, ErrReleased
	}
	return gpu.NewOffscreenTarget(r.device, r.queue, width, height, r.format)
}

// Release destroys the shader, pipeline and buffers. The renderer cannot be
// used afterwards. Safe to call multiple times.
func (r *Renderer) Release() {
	if r.released {
		return
	}
	r.quads.Destroy()
	r.released = true
}
