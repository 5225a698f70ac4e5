package text

import "github.com/gogpu/ggterm"

// Metrics holds font metrics at a specific size, in pixels.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	// Note: Unlike ggterm.FontMetrics.Descent, this is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64

	// UnderlinePosition is the offset of the underline's center from the
	// baseline. Negative values are below the baseline.
	UnderlinePosition float64

	// UnderlineThickness is the recommended underline stroke width.
	UnderlineThickness float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Decoration converts m to the measurements the decoration renderer
// consumes, with the descent negated to follow the font convention.
func (m Metrics) Decoration() ggterm.FontMetrics {
	return ggterm.FontMetrics{
		Ascent:             float32(m.Ascent),
		Descent:            -float32(m.Descent),
		UnderlinePosition:  float32(m.UnderlinePosition),
		UnderlineThickness: float32(m.UnderlineThickness),
	}
}
