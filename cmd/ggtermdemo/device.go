package main

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// gpuDevice is an opened HAL device with the instance that owns it.
type gpuDevice struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	name     string

	// headless is true on the noop backend, which records commands without
	// producing pixels.
	headless bool
}

// openDevice opens a device on the requested backend: "vulkan", "noop", or
// "auto" for Vulkan with a noop fallback.
func openDevice(backendName string) (*gpuDevice, error) {
	switch backendName {
	case "vulkan":
		return openVulkan()
	case "noop":
		return openNoop()
	case "auto":
		d, err := openVulkan()
		if err == nil {
			return d, nil
		}
		logger.Warn("vulkan unavailable, using noop backend", "err", err)
		return openNoop()
	default:
		return nil, fmt.Errorf("unknown backend %q", backendName)
	}
}

func openVulkan() (*gpuDevice, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, errors.New("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	d, err := openAdapter(instance)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	return d, nil
}

func openNoop() (*gpuDevice, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("create noop instance: %w", err)
	}
	d, err := openAdapter(instance)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	d.headless = true
	return d, nil
}

// openAdapter opens the first discrete or integrated GPU, or the first
// adapter when there is none.
func openAdapter(instance hal.Instance) (*gpuDevice, error) {
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return nil, errors.New("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	return &gpuDevice{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		name:     selected.Info.Name,
	}, nil
}

// Close destroys the device and its instance.
func (d *gpuDevice) Close() {
	d.device.Destroy()
	d.instance.Destroy()
}
