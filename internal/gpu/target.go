package gpu

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/gogpu/ggterm"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// copyRowAlignment is the required BytesPerRow alignment for
// texture-to-buffer copies.
const copyRowAlignment = 256

// OffscreenTarget is a single-sample color texture usable as a Draw target
// and readable back into an *image.RGBA. It serves headless rendering and
// tests; windowed hosts pass their surface view to Draw instead.
type OffscreenTarget struct {
	device hal.Device
	queue  hal.Queue

	tex  hal.Texture
	view hal.TextureView

	width, height uint32
	format        gputypes.TextureFormat
}

// NewOffscreenTarget creates a width x height target. format must be
// RGBA8Unorm or BGRA8Unorm; the zero value selects RGBA8Unorm.
func NewOffscreenTarget(device hal.Device, queue hal.Queue, width, height uint32, format gputypes.TextureFormat) (*OffscreenTarget, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("gpu: invalid target size %dx%d", width, height)
	}
	switch format {
	case gputypes.TextureFormatUndefined:
		format = gputypes.TextureFormatRGBA8Unorm
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
	default:
		return nil, fmt.Errorf("gpu: unsupported target format %v", format)
	}

	t := &OffscreenTarget{device: device, queue: queue, width: width, height: height, format: format}

	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "offscreen_target",
		Size:          hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create target texture: %w", err)
	}
	t.tex = tex

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "offscreen_target_view",
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.Destroy()
		return nil, fmt.Errorf("create target view: %w", err)
	}
	t.view = view
	return t, nil
}

// View returns the texture view to pass to Draw.
func (t *OffscreenTarget) View() hal.TextureView { return t.view }

// Size returns the target dimensions in pixels.
func (t *OffscreenTarget) Size() (width, height uint32) { return t.width, t.height }

// Format returns the texture format.
func (t *OffscreenTarget) Format() gputypes.TextureFormat { return t.format }

// Clear fills the target with an opaque color.
func (t *OffscreenTarget) Clear(c ggterm.RGB) error {
	encoder, err := beginEncoding(t.device, "offscreen_clear")
	if err != nil {
		return err
	}
	defer encoder.Destroy()

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "offscreen_clear_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:    t.view,
				LoadOp:  gputypes.LoadOpClear,
				StoreOp: gputypes.StoreOpStore,
				ClearValue: gputypes.Color{
					R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: 1,
				},
			},
		},
	})
	rp.End()
	return submitAndWait(t.device, t.queue, encoder)
}

// Readback copies the target into a new *image.RGBA.
func (t *OffscreenTarget) Readback() (*image.RGBA, error) {
	encoder, err := beginEncoding(t.device, "offscreen_readback")
	if err != nil {
		return nil, err
	}
	defer encoder.Destroy()

	// The texture was last written as a render attachment; copies need
	// it as a transfer source. No-op on backends without layouts.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	rowBytes := t.width * 4
	paddedRow := alignUp(rowBytes, copyRowAlignment)
	bufSize := uint64(paddedRow) * uint64(t.height)

	staging, err := t.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "offscreen_staging",
		Size:  bufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer t.device.DestroyBuffer(staging)

	encoder.CopyTextureToBuffer(t.tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: paddedRow, RowsPerImage: t.height},
		TextureBase:  hal.ImageCopyTexture{Texture: t.tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: t.width, Height: t.height, DepthOrArrayLayers: 1},
	}})

	if err := submitAndWait(t.device, t.queue, encoder); err != nil {
		return nil, err
	}

	mapping, err := t.device.MapBuffer(staging, 0, bufSize)
	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}
	raw := unsafe.Slice((*byte)(mapping.Ptr), bufSize)

	img := image.NewRGBA(image.Rect(0, 0, int(t.width), int(t.height)))
	for y := 0; y < int(t.height); y++ {
		src := raw[y*int(paddedRow) : y*int(paddedRow)+int(rowBytes)]
		dst := img.Pix[y*img.Stride : y*img.Stride+int(rowBytes)]
		copy(dst, src)
		if t.format == gputypes.TextureFormatBGRA8Unorm {
			for i := 0; i < len(dst); i += 4 {
				dst[i], dst[i+2] = dst[i+2], dst[i]
			}
		}
	}
	if err := t.device.UnmapBuffer(staging); err != nil {
		return nil, fmt.Errorf("unmap staging buffer: %w", err)
	}
	return img, nil
}

// Destroy releases the texture and view. Safe to call multiple times.
func (t *OffscreenTarget) Destroy() {
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

func alignUp(v, align uint32) uint32 {
	return (v + align - 1) / align * align
}
