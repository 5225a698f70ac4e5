package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/ggterm"
)

// UniformSlot identifies one value the quad shader may consume.
type UniformSlot int

const (
	SlotCellWidth UniformSlot = iota
	SlotCellHeight
	SlotPaddingX
	SlotPaddingY
	SlotUnderlinePosition
	SlotUnderlineThickness
	SlotUndercurlPosition

	numUniformSlots
)

// uniformSlotNames are the WGSL member names looked up in the shader's
// uniform struct.
var uniformSlotNames = [numUniformSlots]string{
	SlotCellWidth:          "cellWidth",
	SlotCellHeight:         "cellHeight",
	SlotPaddingX:           "paddingX",
	SlotPaddingY:           "paddingY",
	SlotUnderlinePosition:  "underlinePosition",
	SlotUnderlineThickness: "underlineThickness",
	SlotUndercurlPosition:  "undercurlPosition",
}

// String returns the WGSL member name of the slot.
func (s UniformSlot) String() string {
	if s >= 0 && s < numUniformSlots {
		return uniformSlotNames[s]
	}
	return fmt.Sprintf("UniformSlot(%d)", int(s))
}

// UniformValues holds one value per UniformSlot.
type UniformValues [numUniformSlots]float32

// ComputeUniforms derives the shader uniform values for a frame.
func ComputeUniforms(sizing ggterm.SizingInfo, metrics ggterm.FontMetrics) UniformValues {
	descent := abs32(metrics.Descent)

	var v UniformValues
	v[SlotCellWidth] = sizing.CellWidth
	v[SlotCellHeight] = sizing.CellHeight
	v[SlotPaddingX] = sizing.PaddingX
	v[SlotPaddingY] = sizing.BottomPadding()
	v[SlotUnderlinePosition] = descent - abs32(metrics.UnderlinePosition)
	v[SlotUnderlineThickness] = metrics.UnderlineThickness
	v[SlotUndercurlPosition] = abs32(0.5 * metrics.Descent)
	return v
}

// UniformLayout maps uniform slots to byte offsets inside the shader's
// uniform buffer. The zero value describes a shader without a uniform block.
type UniformLayout struct {
	// offsets holds offset+1 for each slot; 0 means the shader does not
	// declare the slot.
	offsets [numUniformSlots]uint32

	// size is the uniform buffer size in bytes, rounded up to 16.
	size uint64
}

// Has reports whether the shader declares slot.
func (l UniformLayout) Has(slot UniformSlot) bool {
	return l.offsets[slot] != 0
}

// Offset returns the byte offset of slot and whether the shader declares it.
func (l UniformLayout) Offset(slot UniformSlot) (uint32, bool) {
	o := l.offsets[slot]
	if o == 0 {
		return 0, false
	}
	return o - 1, true
}

// Size returns the uniform buffer size in bytes. Zero means the shader has
// no uniform block.
func (l UniformLayout) Size() uint64 {
	return l.size
}

// Missing returns the slots the shader does not declare.
func (l UniformLayout) Missing() []UniformSlot {
	var missing []UniformSlot
	for s := UniformSlot(0); s < numUniformSlots; s++ {
		if !l.Has(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// Encode writes values into dst for every declared slot and returns dst
// resized to Size. Bytes of undeclared struct members are zero.
func (l UniformLayout) Encode(dst []byte, values UniformValues) []byte {
	n := int(l.size) //nolint:gosec // uniform blocks are tiny
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	clear(dst)
	for s := UniformSlot(0); s < numUniformSlots; s++ {
		off, ok := l.Offset(s)
		if !ok {
			continue
		}
		binary.LittleEndian.PutUint32(dst[off:off+4], math.Float32bits(values[s]))
	}
	return dst
}

// uniformBufferAlign is the granularity uniform buffers are sized in.
const uniformBufferAlign = 16

// ReflectUniforms finds the struct bound as var<uniform> at group 0,
// binding 0 of a WGSL module and reads its layout from the naga IR. Only f32
// members whose names match a UniformSlot become slots; everything else
// keeps its space in the buffer and stays zero.
//
// A module without such a binding yields the zero UniformLayout.
func ReflectUniforms(wgsl string) (UniformLayout, error) {
	ast, err := naga.Parse(wgsl)
	if err != nil {
		return UniformLayout{}, fmt.Errorf("parse uniforms: %w", err)
	}
	module, err := naga.LowerWithSource(ast, wgsl)
	if err != nil {
		return UniformLayout{}, fmt.Errorf("lower uniforms: %w", err)
	}

	for _, gv := range module.GlobalVariables {
		if gv.Space != ir.SpaceUniform || gv.Binding == nil {
			continue
		}
		if gv.Binding.Group != 0 || gv.Binding.Binding != 0 {
			continue
		}
		st, ok := module.Types[gv.Type].Inner.(ir.StructType)
		if !ok {
			return UniformLayout{}, fmt.Errorf("uniform %q is not a struct", gv.Name)
		}
		return structLayout(module, st), nil
	}
	return UniformLayout{}, nil
}

// structLayout maps the f32 members of st to uniform slots.
func structLayout(module *ir.Module, st ir.StructType) UniformLayout {
	var layout UniformLayout
	for _, m := range st.Members {
		scalar, ok := module.Types[m.Type].Inner.(ir.ScalarType)
		if !ok || scalar.Kind != ir.ScalarFloat || scalar.Width != 4 {
			continue
		}
		for s, name := range uniformSlotNames {
			if name == m.Name {
				layout.offsets[s] = m.Offset + 1
			}
		}
	}
	layout.size = uint64(alignUp(st.Span, uniformBufferAlign))
	return layout
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
