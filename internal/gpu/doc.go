// Package gpu draws batches of flat-colored quads with gogpu/wgpu HAL.
//
// This is an internal package used by ggterm/render. A QuadRenderer owns one
// render pipeline, a growable vertex buffer and an optional uniform buffer
// whose layout is reflected from the WGSL source:
//
//	[]ggterm.Quad -> BuildVertices -> EncodeVertices -> vertex buffer -> Draw
//
// Shaders are validated with naga before any GPU object is created.
// OffscreenTarget provides a readable color texture for headless rendering.
package gpu
