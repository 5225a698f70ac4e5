// Package text measures monospace fonts for the terminal grid.
//
// It turns a font file into the inputs the cursor and decoration renderer
// needs: cell size, ascent and descent, and underline placement, plus
// grapheme-aware cell widths for wide characters.
//
// Parsing and metrics use golang.org/x/image/font/opentype. The cell width
// is the HarfBuzz-shaped advance of "M" from github.com/go-text/typesetting.
// Cell widths of text come from github.com/mattn/go-runewidth over grapheme
// clusters segmented by github.com/rivo/uniseg.
//
// Example:
//
//	face, err := text.LoadGoMono(14)
//	if err != nil {
//	    return err
//	}
//	sizing := text.Sizing(face, 80, 24, 2, 2)
//	metrics := face.Metrics()
package text
