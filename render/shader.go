// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/ggterm/internal/gpu"

// DefaultShader returns the built-in WGSL program for decoration quads.
// It declares every uniform the renderer binds.
func DefaultShader() string {
	return gpu.DefaultShaderSource()
}

// ValidateShader reports whether a WGSL program compiles. The error wraps
// ErrShaderCompile.
func ValidateShader(source string) error {
	return gpu.ValidateShader(source)
}
