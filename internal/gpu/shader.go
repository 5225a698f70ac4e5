package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/quad.wgsl
var quadShaderSource string

// DefaultShaderSource returns the embedded WGSL program for decoration quads.
// It declares every uniform slot.
func DefaultShaderSource() string {
	return quadShaderSource
}

// ErrShaderCompile is returned when the quad shader fails validation.
var ErrShaderCompile = errors.New("gpu: quad shader compilation failed")

// ValidateShader compiles WGSL source with naga to catch syntax and type
// errors before any GPU object is created. The compiled SPIR-V is discarded.
func ValidateShader(source string) error {
	if source == "" {
		return fmt.Errorf("%w: empty source", ErrShaderCompile)
	}
	if _, err := naga.Compile(source); err != nil {
		return fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	return nil
}
