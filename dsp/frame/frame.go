package frame

import (
	"errors"
	"fmt"
)

// Errors returned by sliding-window operations.
var (
	ErrInvalidSize     = errors.New("frame: window size must be positive")
	ErrInvalidChannels = errors.New("frame: channel count must be positive")
	ErrInvalidAdvance  = errors.New("frame: advance count out of range")
)

// Sliding is a fixed-size window of interleaved multi-channel samples
// that slides over a stream in whole-frame steps.
//
// The window holds size frames of channels samples each, interleaved
// channel-major (frame 0 channel 0, frame 0 channel 1, ...). It starts
// zero-filled. Advance shifts the window towards older data and zero-fills
// the vacated tail, so accumulation into retained frames survives a shift.
type Sliding struct {
	size     int
	channels int
	samples  []float64
}

// NewSliding returns a zero-filled sliding window of size frames with
// channels interleaved samples per frame.
func NewSliding(size, channels int) (*Sliding, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	return &Sliding{
		size:     size,
		channels: channels,
		samples:  make([]float64, size*channels),
	}, nil
}

// Size returns the window length in frames.
func (s *Sliding) Size() int { return s.size }

// Channels returns the number of interleaved channels.
func (s *Sliding) Channels() int { return s.channels }

// Data returns the full interleaved window.
// The slice aliases internal state; mutations are visible to the window.
func (s *Sliding) Data() []float64 {
	return s.samples
}

// Head returns the oldest n frames of the window.
func (s *Sliding) Head(n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > s.size {
		n = s.size
	}
	return s.samples[:n*s.channels]
}

// Tail returns the newest n frames of the window.
func (s *Sliding) Tail(n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > s.size {
		n = s.size
	}
	return s.samples[(s.size-n)*s.channels:]
}

// Advance shifts the window left by n frames and zero-fills the vacated
// newest n frames. Samples already accumulated in the retained region are
// preserved.
func (s *Sliding) Advance(n int) error {
	if n < 0 || n > s.size {
		return fmt.Errorf("%w: %d of %d", ErrInvalidAdvance, n, s.size)
	}
	if n == 0 {
		return nil
	}
	shift := n * s.channels
	copy(s.samples, s.samples[shift:])
	tail := s.samples[len(s.samples)-shift:]
	for i := range tail {
		tail[i] = 0
	}
	return nil
}

// Zero resets every sample in the window to 0.
func (s *Sliding) Zero() {
	for i := range s.samples {
		s.samples[i] = 0
	}
}
