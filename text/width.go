package text

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// IsWide reports whether r occupies two terminal cells (East Asian Wide,
// Fullwidth and most emoji).
func IsWide(r rune) bool {
	return runewidth.RuneWidth(r) == 2
}

// GraphemeWidth returns the number of cells a single grapheme cluster
// occupies: 0, 1 or 2. The width is that of the first rune, so combining
// marks and emoji modifiers add nothing.
func GraphemeWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Columns returns the display width of s in cells, segmenting it into
// grapheme clusters. s is NFC-normalized first so decomposed accents
// measure like their precomposed forms.
func Columns(s string) int {
	s = norm.NFC.String(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += GraphemeWidth(cluster)
	}
	return w
}

// CellAt returns the grapheme cluster that covers column of line, the
// column where that cluster starts and whether it is wide. A column inside
// the right half of a wide cluster reports that cluster and its left
// column. ok is false past the end of the line.
func CellAt(line string, column int) (cluster string, start int, wide, ok bool) {
	if column < 0 {
		return "", 0, false, false
	}
	s := norm.NFC.String(line)
	col := 0
	state := -1
	for len(s) > 0 {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := GraphemeWidth(c)
		if w == 0 {
			continue
		}
		if column < col+w {
			return c, col, w == 2, true
		}
		col += w
	}
	return "", 0, false, false
}
