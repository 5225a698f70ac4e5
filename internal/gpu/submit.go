package gpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/wgpu/hal"
)

// submitTimeout bounds the wait for a frame's command buffer.
const submitTimeout = 5 * time.Second

// submitPollInterval is the sleep between completion polls.
const submitPollInterval = 100 * time.Microsecond

// ErrSubmitTimeout is returned when the GPU does not complete a submission
// within the wait timeout.
var ErrSubmitTimeout = errors.New("gpu: timed out waiting for submission")

// beginEncoding creates a command encoder and starts recording. The encoder
// is discarded when recording cannot start.
func beginEncoding(device hal.Device, label string) (hal.CommandEncoder, error) {
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	return encoder, nil
}

// submitAndWait ends encoding, submits the command buffer and blocks until
// the queue reports it complete.
func submitAndWait(device hal.Device, queue hal.Queue, encoder hal.CommandEncoder) error {
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	index, err := queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return waitSubmission(queue, index, submitTimeout)
}

// waitSubmission polls queue until submission index has completed or
// timeout elapses.
func waitSubmission(queue hal.Queue, index uint64, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for queue.PollCompleted() < index {
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: submission %d after %v", ErrSubmitTimeout, index, timeout)
		}
		time.Sleep(submitPollInterval)
	}
	return nil
}
