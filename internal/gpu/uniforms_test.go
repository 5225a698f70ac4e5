package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/ggterm"
)

func TestReflectUniformsDefaultShader(t *testing.T) {
	layout, err := ReflectUniforms(DefaultShaderSource())
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if missing := layout.Missing(); len(missing) != 0 {
		t.Errorf("default shader misses slots %v", missing)
	}
	// 8 f32 members, one of them reserved.
	if layout.Size() != 32 {
		t.Errorf("Size() = %d, want 32", layout.Size())
	}
	for s := UniformSlot(0); s < numUniformSlots; s++ {
		off, ok := layout.Offset(s)
		if !ok {
			t.Fatalf("slot %v not found", s)
		}
		if want := uint32(s) * 4; off != want {
			t.Errorf("slot %v offset = %d, want %d", s, off, want)
		}
	}
}

func TestReflectUniformsPartial(t *testing.T) {
	src := `
struct Params {
    // Only the grid is needed here.
    cellHeight: f32,
    tint: vec4<f32>,
    @align(16) paddingY: f32,
}
@group(0) @binding(0) var<uniform> params: Params;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}

	if off, ok := layout.Offset(SlotCellHeight); !ok || off != 0 {
		t.Errorf("cellHeight = (%d, %v), want (0, true)", off, ok)
	}
	if off, ok := layout.Offset(SlotPaddingY); !ok || off != 32 {
		t.Errorf("paddingY = (%d, %v), want (32, true)", off, ok)
	}
	if layout.Has(SlotCellWidth) || layout.Has(SlotUnderlinePosition) {
		t.Error("undeclared slots reported as present")
	}
	if got := len(layout.Missing()); got != int(numUniformSlots)-2 {
		t.Errorf("Missing() has %d slots, want %d", got, int(numUniformSlots)-2)
	}
	if layout.Size() != 48 {
		t.Errorf("Size() = %d, want 48", layout.Size())
	}
}

func TestReflectUniformsNoBlock(t *testing.T) {
	src := `
@vertex
fn vs_main(@location(0) p: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(p, 0.0, 1.0);
}
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if layout.Size() != 0 {
		t.Errorf("Size() = %d, want 0", layout.Size())
	}
	if len(layout.Missing()) != int(numUniformSlots) {
		t.Error("expected every slot to be missing")
	}
}

func TestReflectUniformsCommentedBinding(t *testing.T) {
	src := `
struct U { cellWidth: f32, }
// @group(0) @binding(0) var<uniform> u: U;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if layout.Size() != 0 {
		t.Errorf("commented-out binding was reflected: size %d", layout.Size())
	}
}

func TestReflectUniformsAttributeOrder(t *testing.T) {
	src := `
struct U {
    cellWidth: f32,
    cellHeight: f32,
}
@binding(0) @group(0) var<uniform> u: U;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if off, ok := layout.Offset(SlotCellHeight); !ok || off != 4 {
		t.Errorf("cellHeight = (%d, %v), want (4, true)", off, ok)
	}
	if layout.Size() != 16 {
		t.Errorf("Size() = %d, want 16", layout.Size())
	}
}

func TestReflectUniformsMatrixMember(t *testing.T) {
	src := `
struct U {
    transform: mat4x4<f32>,
    cellWidth: f32,
}
@group(0) @binding(0) var<uniform> u: U;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if off, ok := layout.Offset(SlotCellWidth); !ok || off != 64 {
		t.Errorf("cellWidth = (%d, %v), want (64, true)", off, ok)
	}
	if layout.Size() != 80 {
		t.Errorf("Size() = %d, want 80", layout.Size())
	}
}

func TestReflectUniformsBlockComment(t *testing.T) {
	src := `
struct Old { cellHeight: f32, }
struct U {
    cellWidth: f32,
    cellHeight: f32,
}
/* @group(0) @binding(0) var<uniform> old: Old; */
@group(0) @binding(0) var<uniform> u: U;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if off, ok := layout.Offset(SlotCellWidth); !ok || off != 0 {
		t.Errorf("cellWidth = (%d, %v), want (0, true)", off, ok)
	}
	if off, ok := layout.Offset(SlotCellHeight); !ok || off != 4 {
		t.Errorf("cellHeight = (%d, %v), want (4, true)", off, ok)
	}
}

func TestReflectUniformsIgnoresOtherBindings(t *testing.T) {
	src := `
struct U { cellWidth: f32, }
@group(1) @binding(0) var<uniform> a: U;
@group(0) @binding(1) var<uniform> b: U;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if layout.Size() != 0 {
		t.Errorf("Size() = %d, want 0", layout.Size())
	}
}

func TestReflectUniformsNonFloatMember(t *testing.T) {
	src := `
struct U {
    cellWidth: u32,
    cellHeight: f32,
}
@group(0) @binding(0) var<uniform> u: U;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}
	if layout.Has(SlotCellWidth) {
		t.Error("u32 member bound as a float slot")
	}
	if !layout.Has(SlotCellHeight) {
		t.Error("cellHeight not bound")
	}
}

func TestReflectUniformsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "missing struct",
			src:  `@group(0) @binding(0) var<uniform> u: Nowhere;`,
		},
		{
			name: "syntax",
			src:  `struct U { cellWidth f32 }`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReflectUniforms(tt.src); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestUniformLayoutEncode(t *testing.T) {
	src := `
struct U {
    paddingX: f32,
    other: f32,
    underlineThickness: f32,
}
@group(0) @binding(0) var<uniform> u: U;
`
	layout, err := ReflectUniforms(src)
	if err != nil {
		t.Fatalf("ReflectUniforms: %v", err)
	}

	var values UniformValues
	values[SlotPaddingX] = 4
	values[SlotUnderlineThickness] = 1.5
	values[SlotCellWidth] = 99

	data := layout.Encode(nil, values)
	if len(data) != 16 {
		t.Fatalf("encoded %d bytes, want 16", len(data))
	}
	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	if read(0) != 4 {
		t.Errorf("paddingX = %v, want 4", read(0))
	}
	if read(4) != 0 {
		t.Errorf("unknown member = %v, want 0", read(4))
	}
	if read(8) != 1.5 {
		t.Errorf("underlineThickness = %v, want 1.5", read(8))
	}
	if read(12) != 0 {
		t.Errorf("tail padding = %v, want 0", read(12))
	}
}

func TestComputeUniforms(t *testing.T) {
	sizing := ggterm.SizingInfo{
		CellWidth:  10,
		CellHeight: 20,
		PaddingX:   5,
		PaddingY:   3,
		Width:      800,
		Height:     613,
	}
	metrics := ggterm.FontMetrics{
		Ascent:             15,
		Descent:            -4,
		UnderlinePosition:  -1.5,
		UnderlineThickness: 1,
	}

	v := ComputeUniforms(sizing, metrics)

	tests := []struct {
		slot UniformSlot
		want float32
	}{
		{SlotCellWidth, 10},
		{SlotCellHeight, 20},
		{SlotPaddingX, 5},
		// (613-3) - floor(610/20)*20 = 10
		{SlotPaddingY, 10},
		{SlotUnderlinePosition, 2.5},
		{SlotUnderlineThickness, 1},
		{SlotUndercurlPosition, 2},
	}
	for _, tt := range tests {
		if v[tt.slot] != tt.want {
			t.Errorf("%v = %v, want %v", tt.slot, v[tt.slot], tt.want)
		}
	}
}

func TestUniformSlotString(t *testing.T) {
	if got := SlotUndercurlPosition.String(); got != "undercurlPosition" {
		t.Errorf("String() = %q", got)
	}
	if got := UniformSlot(42).String(); got != "UniformSlot(42)" {
		t.Errorf("String() = %q", got)
	}
}
