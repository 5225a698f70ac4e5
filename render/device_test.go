// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
}

// wrongHALProvider exposes HAL accessors returning the wrong types.
type wrongHALProvider struct {
	NullDeviceHandle
}

func (wrongHALProvider) HalDevice() any { return "not a device" }
func (wrongHALProvider) HalQueue() any  { return nil }

func TestHalObjectsRejectsProviders(t *testing.T) {
	tests := []struct {
		name     string
		provider DeviceHandle
	}{
		{"no HAL accessors", NullDeviceHandle{}},
		{"wrong HAL types", wrongHALProvider{}},
		{"nil HAL objects", NewHALDevice(nil, nil, gputypes.TextureFormatUndefined)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := halObjects(tt.provider)
			if !errors.Is(err, ErrProviderNotHAL) {
				t.Errorf("halObjects() = %v, want ErrProviderNotHAL", err)
			}
		})
	}
}

func TestHALDevice(t *testing.T) {
	d := NewHALDevice(nil, nil, gputypes.TextureFormatRGBA8Unorm)
	if d.SurfaceFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("SurfaceFormat() = %v", d.SurfaceFormat())
	}
	var dev gpucontext.Device = d.Device()
	if dev != nil {
		t.Error("Device() should return nil")
	}
}
