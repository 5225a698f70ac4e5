// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (a terminal window, an app framework) owns the device and hands
// it to the cursor renderer; the renderer never creates one. Beyond the
// gpucontext.DeviceProvider methods, the handle must expose the HAL objects
// through HalDevice() any and HalQueue() any, returning hal.Device and
// hal.Queue. SurfaceFormat selects the pipeline's color target format.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// ggterm-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// halProvider is implemented by hosts that expose their HAL objects.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// halObjects extracts the HAL device and queue from a provider.
func halObjects(provider DeviceHandle) (hal.Device, hal.Queue, error) {
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %T has no HalDevice/HalQueue", ErrProviderNotHAL, provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrProviderNotHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrProviderNotHAL)
	}
	return device, queue, nil
}

// HALDevice is a DeviceHandle over a bare HAL device and queue, for hosts
// and tools that open the device themselves.
type HALDevice struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat
}

// NewHALDevice wraps device and queue. format is reported as the surface
// format; TextureFormatUndefined lets the renderer pick its default.
func NewHALDevice(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) *HALDevice {
	return &HALDevice{device: device, queue: queue, format: format}
}

// HalDevice returns the wrapped hal.Device.
func (d *HALDevice) HalDevice() any { return d.device }

// HalQueue returns the wrapped hal.Queue.
func (d *HALDevice) HalQueue() any { return d.queue }

// Device returns nil; the HAL objects are reached through HalDevice.
func (d *HALDevice) Device() gpucontext.Device { return nil }

// Queue returns nil; the HAL objects are reached through HalQueue.
func (d *HALDevice) Queue() gpucontext.Queue { return nil }

// Adapter returns nil.
func (d *HALDevice) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the format given to NewHALDevice.
func (d *HALDevice) SurfaceFormat() gputypes.TextureFormat { return d.format }

// NullDeviceHandle is a DeviceHandle without a device. NewFromProvider
// rejects it with ErrProviderNotHAL.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure the handles implement DeviceHandle.
var (
	_ DeviceHandle = NullDeviceHandle{}
	_ DeviceHandle = (*HALDevice)(nil)
	_ halProvider  = (*HALDevice)(nil)
)
