// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// DefaultThickness is the default cursor bar thickness relative to the
// cell width.
const DefaultThickness = 0.15

// rendererOptions holds optional configuration for a Renderer.
type rendererOptions struct {
	thickness float32
	format    gputypes.TextureFormat
	label     string
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		thickness: DefaultThickness,
		format:    gputypes.TextureFormatBGRA8Unorm,
		label:     "ggterm_cursor",
	}
}

// Option configures a Renderer.
type Option func(*rendererOptions)

// WithThickness sets the beam and underline thickness as a fraction of the
// cell width. Non-positive values are ignored.
func WithThickness(ratio float32) Option {
	return func(o *rendererOptions) {
		if ratio > 0 {
			o.thickness = ratio
		}
	}
}

// WithTargetFormat sets the color format of the views passed to
// RenderFrame. Overrides the provider's surface format.
func WithTargetFormat(format gputypes.TextureFormat) Option {
	return func(o *rendererOptions) {
		o.format = format
	}
}

// WithLabel sets the prefix of the GPU debug labels.
func WithLabel(label string) Option {
	return func(o *rendererOptions) {
		o.label = label
	}
}
