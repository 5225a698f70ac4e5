package text

import (
	"bytes"
	"fmt"
	"math"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggterm"
)

// Face is a monospace font at a fixed pixel size, measured for a terminal
// grid.
//
// A Face is immutable after LoadFace and safe for concurrent use.
type Face struct {
	font   *opentype.Font
	shaped *gotext.Font
	size   float64

	metrics    Metrics
	cellWidth  float32
	cellHeight float32
}

// LoadFace parses TrueType or OpenType data and measures it at size pixels
// per em.
func LoadFace(data []byte, size float64) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	// go-text keeps its own parsed tables for shaping.
	gf, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	face := &Face{font: f, shaped: gf.Font, size: size}
	if err := face.measure(); err != nil {
		return nil, err
	}
	return face, nil
}

// LoadGoMono loads the Go Mono font bundled with golang.org/x/image.
func LoadGoMono(size float64) (*Face, error) {
	return LoadFace(gomono.TTF, size)
}

// Size returns the font size in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// Name returns the font family name, or "" if the font has none.
func (f *Face) Name() string {
	name, err := f.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics returns the measurements the decoration renderer consumes.
func (f *Face) Metrics() ggterm.FontMetrics {
	return f.metrics.Decoration()
}

// LineMetrics returns the full scaled font metrics.
func (f *Face) LineMetrics() Metrics {
	return f.metrics
}

// CellSize returns the terminal cell size in whole pixels: the shaped
// advance of "M" and the line height.
func (f *Face) CellSize() (width, height float32) {
	return f.cellWidth, f.cellHeight
}

// measure fills metrics and the cell size.
func (f *Face) measure() error {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(f.size * 64)

	m, err := f.font.Metrics(&buf, ppem, font.HintingFull)
	if err != nil {
		return fmt.Errorf("text: font metrics: %w", err)
	}
	f.metrics = Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		LineGap:   fixedToFloat64(m.Height) - fixedToFloat64(m.Ascent) - fixedToFloat64(m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
	if f.metrics.LineGap < 0 {
		f.metrics.LineGap = 0
	}
	f.metrics.UnderlinePosition, f.metrics.UnderlineThickness = f.underline()

	advance := f.Advance("M")
	if advance <= 0 {
		// Fonts without shaping tables still carry hmtx advances.
		idx, err := f.font.GlyphIndex(&buf, 'M')
		if err == nil {
			adv, err := f.font.GlyphAdvance(&buf, idx, ppem, font.HintingFull)
			if err == nil {
				advance = fixedToFloat64(adv)
			}
		}
	}
	if advance <= 0 {
		return fmt.Errorf("text: font has no advance for 'M'")
	}

	f.cellWidth = float32(math.Round(advance))
	f.cellHeight = float32(math.Ceil(f.metrics.LineHeight()))
	return nil
}

// underline returns the underline position and thickness in pixels from
// the post table. Fonts that leave the thickness unset get a stroke of
// size/14 centered half the descent below the baseline.
func (f *Face) underline() (position, thickness float64) {
	scale := f.size / float64(f.font.UnitsPerEm())
	if post := f.font.PostTable(); post != nil && post.UnderlineThickness > 0 {
		return float64(post.UnderlinePosition) * scale, float64(post.UnderlineThickness) * scale
	}
	return -f.metrics.Descent / 2, math.Max(1, f.size/14)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
