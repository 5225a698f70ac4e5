package text

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFaceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size float64
		want error
	}{
		{"empty data", nil, 14, ErrEmptyFontData},
		{"zero size", goregular.TTF, 0, ErrInvalidSize},
		{"negative size", goregular.TTF, -3, ErrInvalidSize},
		{"NaN size", goregular.TTF, math.NaN(), ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFace(tt.data, tt.size)
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadFace() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadFace([]byte("not a font"), 14); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestGoMonoMetrics(t *testing.T) {
	face, err := LoadGoMono(16)
	if err != nil {
		t.Fatalf("LoadGoMono: %v", err)
	}
	if face.Size() != 16 {
		t.Errorf("Size() = %v, want 16", face.Size())
	}
	if face.Name() == "" {
		t.Error("Name() is empty")
	}

	m := face.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent >= 0 {
		t.Errorf("Descent = %v, want < 0", m.Descent)
	}
	if m.UnderlineThickness <= 0 {
		t.Errorf("UnderlineThickness = %v, want > 0", m.UnderlineThickness)
	}
	if m.UnderlinePosition >= 0 || m.UnderlinePosition < m.Descent {
		t.Errorf("UnderlinePosition = %v, want between descent %v and baseline", m.UnderlinePosition, m.Descent)
	}

	lm := face.LineMetrics()
	if lm.LineHeight() < lm.Ascent+lm.Descent {
		t.Errorf("LineHeight() = %v, below ascent+descent", lm.LineHeight())
	}
}

func TestGoMonoCellSize(t *testing.T) {
	face, err := LoadGoMono(14)
	if err != nil {
		t.Fatalf("LoadGoMono: %v", err)
	}
	w, h := face.CellSize()
	if w <= 0 || h <= 0 {
		t.Fatalf("CellSize() = (%v, %v)", w, h)
	}
	if w != float32(math.Round(float64(w))) || h != float32(math.Ceil(float64(h))) {
		t.Errorf("CellSize() = (%v, %v), want whole pixels", w, h)
	}
	if h <= w {
		t.Errorf("cell %vx%v is not taller than wide", w, h)
	}

	// Every ASCII glyph of a monospace font has the same advance.
	m := face.Advance("M")
	for _, s := range []string{"i", "W", "0", "."} {
		if a := face.Advance(s); math.Abs(a-m) > 1e-6 {
			t.Errorf("Advance(%q) = %v, want %v", s, a, m)
		}
	}
	if a := face.Advance("MMMM"); math.Abs(a-4*m) > 1e-6 {
		t.Errorf("Advance(MMMM) = %v, want %v", a, 4*m)
	}
	if face.Advance("") != 0 {
		t.Error("Advance(\"\") != 0")
	}
}

func TestMetricsScaleWithSize(t *testing.T) {
	small, err := LoadGoMono(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := LoadGoMono(20)
	if err != nil {
		t.Fatal(err)
	}
	ratio := large.LineMetrics().Ascent / small.LineMetrics().Ascent
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("ascent ratio = %v, want ~2", ratio)
	}
	if large.Advance("M") <= small.Advance("M") {
		t.Error("advance did not grow with size")
	}
}

func TestMetricsDecoration(t *testing.T) {
	m := Metrics{Ascent: 12, Descent: 4, UnderlinePosition: -1.5, UnderlineThickness: 1}
	d := m.Decoration()
	if d.Ascent != 12 || d.Descent != -4 || d.UnderlinePosition != -1.5 || d.UnderlineThickness != 1 {
		t.Errorf("Decoration() = %+v", d)
	}
}
