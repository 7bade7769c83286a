// Package wavio provides WAV file collaborators for stream processing:
// a Reader exposing interleaved float64 frames and a Writer encoding them
// to uncompressed PCM. Sample values are normalized to [-1, 1].
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Errors returned when opening or creating files.
var (
	ErrInvalidFile         = errors.New("wavio: not a valid wav file")
	ErrUnsupportedBitDepth = errors.New("wavio: bit depth must be 16, 24, or 32")
	ErrInvalidSampleRate   = errors.New("wavio: sample rate must be positive")
	ErrInvalidChannels     = errors.New("wavio: channel count must be positive")
)

// Reader decodes a WAV file into interleaved float64 frames.
// It cannot be reused across runs; open a new Reader per file.
type Reader struct {
	file  *os.File
	dec   *wav.Decoder
	buf   *audio.IntBuffer
	scale float64
}

// OpenReader opens path and validates it as a WAV file.
func OpenReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: open failed: %w", err)
	}

	dec := wav.NewDecoder(file)
	if !dec.IsValidFile() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	return &Reader{
		file:  file,
		dec:   dec,
		scale: 1 / float64(int64(1)<<(dec.BitDepth-1)),
	}, nil
}

// Channels returns the number of interleaved channels.
func (r *Reader) Channels() int { return r.dec.Format().NumChannels }

// SampleRate returns the sample rate in Hz.
func (r *Reader) SampleRate() int { return int(r.dec.SampleRate) }

// BitDepth returns the source PCM bit depth.
func (r *Reader) BitDepth() int { return int(r.dec.BitDepth) }

// ReadFrames fills dst with up to frames interleaved frames and returns
// the number of frames actually read. At end of stream it returns 0 and a
// nil error.
func (r *Reader) ReadFrames(dst []float64, frames int) (int, error) {
	channels := r.Channels()
	need := frames * channels

	if r.buf == nil || cap(r.buf.Data) < need {
		r.buf = &audio.IntBuffer{
			Format:         r.dec.Format(),
			Data:           make([]int, need),
			SourceBitDepth: int(r.dec.BitDepth),
		}
	}
	r.buf.Data = r.buf.Data[:need]

	n, err := r.dec.PCMBuffer(r.buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("wavio: decode failed: %w", err)
	}

	for i := range n {
		dst[i] = float64(r.buf.Data[i]) * r.scale
	}

	return n / channels, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Writer encodes interleaved float64 frames to an uncompressed PCM WAV
// file. Samples are clamped to [-1, 1] before quantization.
type Writer struct {
	file     *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	channels int
	scale    float64
}

// CreateWriter creates path as a PCM WAV file with the given sample rate,
// channel count, and bit depth (16, 24, or 32).
func CreateWriter(path string, sampleRate, channels, bitDepth int) (*Writer, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: create failed: %w", err)
	}

	const pcmFormat = 1

	return &Writer{
		file:     file,
		enc:      wav.NewEncoder(file, sampleRate, bitDepth, channels, pcmFormat),
		channels: channels,
		scale:    float64(int64(1)<<(bitDepth-1) - 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// WriteFrames encodes frames interleaved frames from src.
func (w *Writer) WriteFrames(src []float64, frames int) (int, error) {
	need := frames * w.channels

	if cap(w.buf.Data) < need {
		w.buf.Data = make([]int, need)
	}
	w.buf.Data = w.buf.Data[:need]

	for i := range need {
		v := src[i]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		w.buf.Data[i] = int(math.Round(v * w.scale))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return 0, fmt.Errorf("wavio: encode failed: %w", err)
	}

	return frames, nil
}

// Close finalizes the encoder headers and closes the file.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("wavio: finalize failed: %w", err)
	}
	return w.file.Close()
}
