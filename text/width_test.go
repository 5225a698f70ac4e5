package text

import "testing"

func TestIsWide(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{'─', false},
		{'漢', true},
		{'ｗ', true}, // fullwidth latin
		{'한', true},
	}
	for _, tt := range tests {
		if got := IsWide(tt.r); got != tt.want {
			t.Errorf("IsWide(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"a漢b", 4},
		{"e\u0301", 1}, // decomposed é
		{"日本語", 6},
	}
	for _, tt := range tests {
		if got := Columns(tt.s); got != tt.want {
			t.Errorf("Columns(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestCellAt(t *testing.T) {
	line := "a漢b"
	tests := []struct {
		column   int
		cluster  string
		start    int
		wide, ok bool
	}{
		{0, "a", 0, false, true},
		{1, "漢", 1, true, true},
		{2, "漢", 1, true, true},
		{3, "b", 3, false, true},
		{4, "", 0, false, false},
		{-1, "", 0, false, false},
	}
	for _, tt := range tests {
		cluster, start, wide, ok := CellAt(line, tt.column)
		if cluster != tt.cluster || start != tt.start || wide != tt.wide || ok != tt.ok {
			t.Errorf("CellAt(%q, %d) = (%q, %d, %v, %v), want (%q, %d, %v, %v)",
				line, tt.column, cluster, start, wide, ok, tt.cluster, tt.start, tt.wide, tt.ok)
		}
	}
}
