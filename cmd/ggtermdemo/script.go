package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggterm"
)

//go:embed default.yaml
var defaultScript []byte

// Script describes a scripted cursor session.
type Script struct {
	Columns     int     `yaml:"columns"`
	Rows        int     `yaml:"rows"`
	FontSize    float64 `yaml:"font_size"`
	Padding     Padding `yaml:"padding"`
	Background  string  `yaml:"background"`
	CursorColor string  `yaml:"cursor_color"`
	Thickness   float32 `yaml:"thickness"`

	// Lines is the grid text, used to detect wide cursor cells.
	Lines []string `yaml:"lines"`

	Moves      []Move      `yaml:"moves"`
	Underlines []Underline `yaml:"underlines"`
	Bell       *Bell       `yaml:"bell"`
}

// Padding is the grid padding in pixels.
type Padding struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Move places the cursor at a cell for a number of frames.
type Move struct {
	Column int    `yaml:"column"`
	Row    int    `yaml:"row"`
	Shape  string `yaml:"shape"`
	Frames int    `yaml:"frames"`
}

// Underline is a static underline decoration.
type Underline struct {
	Column int    `yaml:"column"`
	Row    int    `yaml:"row"`
	Length int    `yaml:"length"`
	Color  string `yaml:"color"`
}

// Bell is a visual bell that fades out over Duration frames.
type Bell struct {
	Frame    int    `yaml:"frame"`
	Duration int    `yaml:"duration"`
	Color    string `yaml:"color"`
}

// step is one resolved frame of the script.
type step struct {
	cursor    ggterm.CursorDescriptor
	bell      float32
	bellColor ggterm.RGB
}

var errEmptyScript = errors.New("script has no moves")

// loadScript reads a script file, or the built-in script for path "".
func loadScript(path string) (*Script, error) {
	data := defaultScript
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
	}
	return parseScript(data)
}

// parseScript decodes and validates a YAML script, filling defaults.
func parseScript(data []byte) (*Script, error) {
	s := &Script{
		Columns:     80,
		Rows:        24,
		FontSize:    14,
		Padding:     Padding{X: 2, Y: 2},
		Background:  "#000000",
		CursorColor: "#ffffff",
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) validate() error {
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("invalid grid %dx%d", s.Columns, s.Rows)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("invalid font_size %v", s.FontSize)
	}
	if len(s.Moves) == 0 {
		return errEmptyScript
	}
	if _, err := ggterm.Hex(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := ggterm.Hex(s.CursorColor); err != nil {
		return fmt.Errorf("cursor_color: %w", err)
	}
	for i, m := range s.Moves {
		if m.Column < 0 || m.Column >= s.Columns || m.Row < 0 || m.Row >= s.Rows {
			return fmt.Errorf("move %d: cell (%d, %d) outside the grid", i, m.Column, m.Row)
		}
		if m.Frames <= 0 {
			return fmt.Errorf("move %d: frames must be positive", i)
		}
		if _, err := ggterm.ParseCursorShape(m.Shape); err != nil {
			return fmt.Errorf("move %d: %w", i, err)
		}
	}
	for i, u := range s.Underlines {
		if _, err := ggterm.Hex(u.Color); err != nil {
			return fmt.Errorf("underline %d: %w", i, err)
		}
	}
	if s.Bell != nil {
		if s.Bell.Duration <= 0 {
			return errors.New("bell: duration must be positive")
		}
		if _, err := ggterm.Hex(s.Bell.Color); err != nil {
			return fmt.Errorf("bell: %w", err)
		}
	}
	return nil
}

// TotalFrames returns the number of frames the moves span.
func (s *Script) TotalFrames() int {
	n := 0
	for _, m := range s.Moves {
		n += m.Frames
	}
	return n
}

// cursorFunc builds the cursor for a cell given the row's text.
type cursorFunc func(shape ggterm.CursorShape, line string, column, row int, color ggterm.RGB) ggterm.CursorDescriptor

// steps resolves frames frames of the script. The last move holds once the
// moves are exhausted. Colors and shapes were checked by validate.
func (s *Script) steps(frames int, cursorAt cursorFunc) []step {
	cursorColor := ggterm.MustHex(s.CursorColor)
	var bellColor ggterm.RGB
	if s.Bell != nil {
		bellColor = ggterm.MustHex(s.Bell.Color)
	}

	out := make([]step, 0, frames)
	move, left := 0, s.Moves[0].Frames
	for f := 0; f < frames; f++ {
		if left == 0 && move < len(s.Moves)-1 {
			move++
			left = s.Moves[move].Frames
		}
		if left > 0 {
			left--
		}

		m := s.Moves[move]
		shape, _ := ggterm.ParseCursorShape(m.Shape)
		var line string
		if m.Row < len(s.Lines) {
			line = s.Lines[m.Row]
		}

		st := step{
			cursor:    cursorAt(shape, line, m.Column, m.Row, cursorColor),
			bellColor: bellColor,
		}
		if b := s.Bell; b != nil && f >= b.Frame && f < b.Frame+b.Duration {
			st.bell = 1 - float32(f-b.Frame)/float32(b.Duration)
		}
		out = append(out, st)
	}
	return out
}
