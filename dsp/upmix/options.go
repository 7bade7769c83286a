package upmix

import (
	"errors"
	"fmt"
)

const (
	defaultWindowSize = 4096
	defaultOverlap    = 128
)

// Errors returned by configuration validation.
var (
	ErrInvalidWindowSize = errors.New("upmix: window size must be positive")
	ErrInvalidOverlap    = errors.New("upmix: overlap must be positive")
	ErrIndivisibleWindow = errors.New("upmix: window size must be divisible by overlap")
)

type config struct {
	windowSize int
	overlap    int
	onStart    func()
	onProgress func(int64)
}

func defaultConfig() config {
	return config{
		windowSize: defaultWindowSize,
		overlap:    defaultOverlap,
	}
}

// Option configures an [Extractor].
type Option func(*config) error

// WithWindowSize sets the analysis window length in samples (default 4096).
// Sizes with efficient factorizations (powers of two) transform fastest.
func WithWindowSize(size int) Option {
	return func(cfg *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidWindowSize, size)
		}

		cfg.windowSize = size

		return nil
	}
}

// WithOverlap sets the number of overlapping frames per window (default 128).
// The overlap must evenly divide the window size; the hop between frames is
// windowSize/overlap.
func WithOverlap(overlap int) Option {
	return func(cfg *config) error {
		if overlap <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidOverlap, overlap)
		}

		cfg.overlap = overlap

		return nil
	}
}

// WithStartFunc registers a hook invoked once when a run enters streaming.
// The hook is a side-effect-only observer.
func WithStartFunc(fn func()) Option {
	return func(cfg *config) error {
		cfg.onStart = fn
		return nil
	}
}

// WithProgressFunc registers a hook receiving the cumulative number of
// frames written after each emitted chunk. The hook is a side-effect-only
// observer.
func WithProgressFunc(fn func(written int64)) Option {
	return func(cfg *config) error {
		cfg.onProgress = fn
		return nil
	}
}
