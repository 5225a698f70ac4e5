package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/ggterm"
)

// VertexStride is the byte stride per vertex in the quad render pipeline.
// Layout per vertex:
//
//	position (vec2<f32>)  = 8 bytes (location 0)
//	color    (unorm8x4)   = 4 bytes (location 1)
//
// Total = 12 bytes per vertex.
const VertexStride = 12

// VerticesPerQuad is the number of vertices emitted for every quad: two
// triangles sharing the top-left/bottom-right diagonal.
const VerticesPerQuad = 6

// quadCorners is the corner index pattern for the two triangles of a quad.
// It depends on the fixed [TL, TR, BR, BL] winding of ggterm.Quad.
var quadCorners = [VerticesPerQuad]int{
	ggterm.TopLeft, ggterm.TopRight, ggterm.BottomRight,
	ggterm.TopLeft, ggterm.BottomLeft, ggterm.BottomRight,
}

// Vertex is one GPU vertex: a position in normalized device coordinates and
// an 8-bit RGBA color.
type Vertex struct {
	X, Y       float32
	R, G, B, A uint8
}

// ToNDC converts a pixel-space point (origin top-left, Y down) to normalized
// device coordinates (origin center, Y up) for a viewport of the given size.
func ToNDC(p ggterm.Point, width, height float32) (x, y float32) {
	halfWidth := width / 2
	halfHeight := height / 2
	return p.X/halfWidth - 1, -p.Y/halfHeight + 1
}

// PackAlpha converts an alpha in [0, 1] to 8 bits with rounding.
// Out-of-range values are clamped.
func PackAlpha(alpha float32) uint8 {
	a := min(max(alpha, 0), 1)
	return uint8(math.Round(float64(a) * 255)) //nolint:gosec // clamped to [0, 255]
}

// BuildVertices appends the triangulated vertices of quads to dst and returns
// the extended slice. Each quad contributes VerticesPerQuad vertices in list
// order, so later quads draw over earlier ones.
func BuildVertices(dst []Vertex, quads []ggterm.Quad, width, height float32) []Vertex {
	for i := range quads {
		q := &quads[i]
		a := PackAlpha(q.Alpha)
		for _, corner := range quadCorners {
			x, y := ToNDC(q.Points[corner], width, height)
			dst = append(dst, Vertex{
				X: x, Y: y,
				R: q.Color.R, G: q.Color.G, B: q.Color.B, A: a,
			})
		}
	}
	return dst
}

// EncodeVertices appends the little-endian byte representation of vertices
// to dst and returns the extended slice.
func EncodeVertices(dst []byte, vertices []Vertex) []byte {
	needed := len(dst) + len(vertices)*VertexStride
	if cap(dst) < needed {
		grown := make([]byte, len(dst), needed)
		copy(grown, dst)
		dst = grown
	}
	offset := len(dst)
	dst = dst[:needed]
	for i := range vertices {
		writeVertex(dst[offset:], &vertices[i])
		offset += VertexStride
	}
	return dst
}

// writeVertex writes a single vertex into buf.
// Layout: position (vec2<f32>) + color (4 x u8) = 12 bytes.
func writeVertex(buf []byte, v *Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	buf[8] = v.R
	buf[9] = v.G
	buf[10] = v.B
	buf[11] = v.A
}
