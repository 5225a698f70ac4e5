package ggterm

// Corner indices of a Quad. The order is fixed; the GPU triangulation relies
// on it.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Quad is the unit of drawable geometry: four corners in the winding order
// [top-left, top-right, bottom-right, bottom-left], a color and an alpha
// in [0, 1].
type Quad struct {
	Points [4]Point
	Color  RGB
	Alpha  float32
}

// NewQuad creates a quad from corners that already follow the fixed winding
// order.
func NewQuad(points [4]Point, color RGB, alpha float32) Quad {
	return Quad{Points: points, Color: color, Alpha: alpha}
}

// RectQuad creates an axis-aligned quad with its top-left corner at (x, y).
func RectQuad(x, y, width, height float32, color RGB, alpha float32) Quad {
	return Quad{
		Points: rectPoints(x, y, width, height),
		Color:  color,
		Alpha:  alpha,
	}
}

// Bounds returns the axis-aligned bounding box of the quad as its min and
// max corners.
func (q Quad) Bounds() (lo, hi Point) {
	lo, hi = q.Points[0], q.Points[0]
	for _, p := range q.Points[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}

func rectPoints(x, y, width, height float32) [4]Point {
	return [4]Point{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
}
