package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggterm"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Errors returned by QuadRenderer.
var (
	// ErrNilDevice is returned when a renderer is constructed without a
	// device or queue.
	ErrNilDevice = errors.New("gpu: nil device or queue")

	// ErrReleased is returned when drawing with a released renderer.
	ErrReleased = errors.New("gpu: quad renderer released")
)

// minVertexBufferSize is the initial vertex buffer capacity in bytes:
// room for 64 quads.
const minVertexBufferSize = 64 * VerticesPerQuad * VertexStride

// Config configures a QuadRenderer.
type Config struct {
	// Format is the color format of the render targets passed to Draw.
	// Defaults to BGRA8Unorm.
	Format gputypes.TextureFormat

	// Label prefixes the debug labels of all GPU objects.
	// Defaults to "quad".
	Label string
}

// Stats counts the work a QuadRenderer has done.
type Stats struct {
	// Frames is the number of Draw calls that reached the GPU.
	Frames uint64

	// DrawCalls is the number of draw commands recorded.
	DrawCalls uint64

	// LastVertexCount is the vertex count uploaded by the last non-empty Draw.
	LastVertexCount uint32

	// BufferReallocations counts vertex buffer (re)creations.
	BufferReallocations uint64
}

// QuadRenderer draws an ordered batch of ggterm.Quad values with one
// triangle-list draw call. It owns a compiled shader, a render pipeline,
// a uniform buffer and a growable vertex buffer.
//
// A QuadRenderer is not safe for concurrent use; it belongs to the render
// goroutine.
type QuadRenderer struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
	label  string

	// GPU objects for the render pipeline.
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline

	uniforms   UniformLayout
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup

	vertBuf     hal.Buffer
	vertBufSize uint64

	// Per-frame scratch, reused across frames.
	vertices    []Vertex
	staging     []byte
	uniformData []byte

	stats    Stats
	released bool
}

// NewQuadRenderer validates and compiles shaderSource and creates every GPU
// object the renderer needs. Uniform slots the shader does not declare are
// skipped at draw time.
//
// On error all partially created objects are released.
func NewQuadRenderer(device hal.Device, queue hal.Queue, shaderSource string, cfg Config) (*QuadRenderer, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if err := ValidateShader(shaderSource); err != nil {
		return nil, err
	}
	uniforms, err := ReflectUniforms(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}

	if cfg.Format == gputypes.TextureFormatUndefined {
		cfg.Format = gputypes.TextureFormatBGRA8Unorm
	}
	if cfg.Label == "" {
		cfg.Label = "quad"
	}

	r := &QuadRenderer{
		device:   device,
		queue:    queue,
		format:   cfg.Format,
		label:    cfg.Label,
		uniforms: uniforms,
	}
	if err := r.createPipeline(shaderSource); err != nil {
		r.Destroy()
		return nil, err
	}
	if err := r.createUniforms(); err != nil {
		r.Destroy()
		return nil, err
	}

	if missing := uniforms.Missing(); len(missing) > 0 {
		slogger().Debug("quad shader omits uniform slots", "label", r.label, "missing", missing)
	}
	slogger().Info("quad renderer created", "label", r.label, "format", r.format, "uniform_bytes", uniforms.Size())
	return r, nil
}

// Uniforms returns the reflected uniform layout of the shader.
func (r *QuadRenderer) Uniforms() UniformLayout {
	return r.uniforms
}

// Stats returns the renderer's counters.
func (r *QuadRenderer) Stats() Stats {
	return r.stats
}

// Draw triangulates quads in list order, uploads them into the vertex
// buffer (replacing its contents), binds the uniforms for sizing and
// metrics, and records one triangle-list draw into a render pass that
// preserves the existing contents of target.
//
// An empty quads slice is a no-op: nothing is uploaded and no draw call is
// issued.
func (r *QuadRenderer) Draw(target hal.TextureView, sizing ggterm.SizingInfo, metrics ggterm.FontMetrics, quads []ggterm.Quad) error {
	if len(quads) == 0 {
		return nil
	}
	if r.released {
		return ErrReleased
	}

	r.vertices = BuildVertices(r.vertices[:0], quads, sizing.Width, sizing.Height)
	r.staging = EncodeVertices(r.staging[:0], r.vertices)

	if err := r.ensureVertexBuffer(uint64(len(r.staging))); err != nil {
		return err
	}
	if err := r.queue.WriteBuffer(r.vertBuf, 0, r.staging); err != nil {
		return fmt.Errorf("upload vertices: %w", err)
	}
	if err := r.bindUniforms(sizing, metrics); err != nil {
		return err
	}

	vertexCount := uint32(len(r.vertices)) //nolint:gosec // decoration batches are small
	if err := r.encodeAndSubmit(target, vertexCount); err != nil {
		slogger().Warn("quad draw failed", "label", r.label, "vertices", vertexCount, "err", err)
		return err
	}

	r.stats.Frames++
	r.stats.DrawCalls++
	r.stats.LastVertexCount = vertexCount
	slogger().Debug("quad frame drawn", "label", r.label, "quads", len(quads), "vertices", vertexCount)
	return nil
}

// Destroy releases all GPU resources held by the renderer. Safe to call
// multiple times.
func (r *QuadRenderer) Destroy() {
	if r.device == nil {
		return
	}
	if r.vertBuf != nil {
		r.device.DestroyBuffer(r.vertBuf)
		r.vertBuf = nil
		r.vertBufSize = 0
	}
	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	r.destroyPipeline()
	if !r.released {
		slogger().Info("quad renderer released", "label", r.label)
	}
	r.released = true
}

// bindUniforms writes the frame's uniform values into the uniform buffer.
func (r *QuadRenderer) bindUniforms(sizing ggterm.SizingInfo, metrics ggterm.FontMetrics) error {
	if r.uniformBuf == nil {
		return nil
	}
	r.uniformData = r.uniforms.Encode(r.uniformData, ComputeUniforms(sizing, metrics))
	if err := r.queue.WriteBuffer(r.uniformBuf, 0, r.uniformData); err != nil {
		return fmt.Errorf("upload uniforms: %w", err)
	}
	return nil
}

// ensureVertexBuffer makes sure the vertex buffer holds at least size bytes,
// recreating it at the next power of two when it is too small.
func (r *QuadRenderer) ensureVertexBuffer(size uint64) error {
	if r.vertBuf != nil && r.vertBufSize >= size {
		return nil
	}
	capacity := uint64(minVertexBufferSize)
	for capacity < size {
		capacity *= 2
	}

	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: r.label + "_verts",
		Size:  capacity,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create vertex buffer: %w", err)
	}
	if r.vertBuf != nil {
		r.device.DestroyBuffer(r.vertBuf)
	}
	r.vertBuf = buf
	r.vertBufSize = capacity
	r.stats.BufferReallocations++
	slogger().Debug("quad vertex buffer allocated", "label", r.label, "bytes", capacity)
	return nil
}

// encodeAndSubmit records the render pass for vertexCount vertices, submits
// it and waits for the GPU.
func (r *QuadRenderer) encodeAndSubmit(target hal.TextureView, vertexCount uint32) error {
	encoder, err := beginEncoding(r.device, r.label+"_encoder")
	if err != nil {
		return err
	}
	defer encoder.Destroy()

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: r.label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:    target,
				LoadOp:  gputypes.LoadOpLoad,
				StoreOp: gputypes.StoreOpStore,
			},
		},
	})
	r.RecordDraw(rp, vertexCount)
	rp.End()

	return submitAndWait(r.device, r.queue, encoder)
}

// RecordDraw records the batch draw into an existing render pass, for hosts
// that own the pass. The vertex buffer must already hold vertexCount
// vertices from a previous upload.
func (r *QuadRenderer) RecordDraw(rp hal.RenderPassEncoder, vertexCount uint32) {
	if vertexCount == 0 || r.vertBuf == nil {
		return
	}
	rp.SetPipeline(r.pipeline)
	if r.bindGroup != nil {
		rp.SetBindGroup(0, r.bindGroup, nil)
	}
	rp.SetVertexBuffer(0, r.vertBuf, 0)
	rp.Draw(vertexCount, 1, 0, 0)
}

// createPipeline compiles the shader module and creates the render pipeline
// with premultiplied alpha blending and no multisampling.
func (r *QuadRenderer) createPipeline(source string) error {
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  r.label + "_shader",
		Source: hal.ShaderSource{WGSL: source},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	r.shader = shader

	var groups []hal.BindGroupLayout
	if r.uniforms.Size() > 0 {
		uniformLayout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label: r.label + "_uniform_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
					Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
				},
			},
		})
		if err != nil {
			return fmt.Errorf("create quad uniform layout: %w", err)
		}
		r.uniformLayout = uniformLayout
		groups = append(groups, uniformLayout)
	}

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            r.label + "_pipe_layout",
		BindGroupLayouts: groups,
	})
	if err != nil {
		return fmt.Errorf("create quad pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  r.label + "_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    quadVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create quad pipeline: %w", err)
	}
	r.pipeline = pipeline
	return nil
}

// createUniforms allocates the uniform buffer and its bind group when the
// shader declares a uniform block.
func (r *QuadRenderer) createUniforms() error {
	size := r.uniforms.Size()
	if size == 0 {
		return nil
	}
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: r.label + "_uniform",
		Size:  size,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	r.uniformBuf = buf

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  r.label + "_bind",
		Layout: r.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: buf.NativeHandle(), Offset: 0, Size: size,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	r.bindGroup = bindGroup
	return nil
}

// destroyPipeline releases all pipeline resources in reverse creation order.
func (r *QuadRenderer) destroyPipeline() {
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.uniformLayout != nil {
		r.device.DestroyBindGroupLayout(r.uniformLayout)
		r.uniformLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

// quadVertexLayout returns the vertex buffer layout for the quad pipeline.
func quadVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 8, ShaderLocation: 1},  // color
			},
		},
	}
}
