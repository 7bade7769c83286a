package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string, sampleRate, channels, bitDepth int, frames []float64) {
	t.Helper()

	w, err := CreateWriter(path, sampleRate, channels, bitDepth)
	require.NoError(t, err)

	n, err := w.WriteFrames(frames, len(frames)/channels)
	require.NoError(t, err)
	require.Equal(t, len(frames)/channels, n)
	require.NoError(t, w.Close())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate int
		channels   int
		bitDepth   int
		tolerance  float64
	}{
		{"stereo 16-bit", 44100, 2, 16, 1e-4},
		{"three-channel 24-bit", 48000, 3, 24, 1e-6},
		{"mono 32-bit", 8000, 1, 32, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const frameCount = 64
			frames := make([]float64, frameCount*tt.channels)
			for i := range frames {
				frames[i] = 0.9 * math.Sin(0.1*float64(i))
			}

			path := filepath.Join(t.TempDir(), "test.wav")
			writeTestFile(t, path, tt.sampleRate, tt.channels, tt.bitDepth, frames)

			r, err := OpenReader(path)
			require.NoError(t, err)
			defer r.Close()

			assert.Equal(t, tt.channels, r.Channels())
			assert.Equal(t, tt.sampleRate, r.SampleRate())
			assert.Equal(t, tt.bitDepth, r.BitDepth())

			got := make([]float64, frameCount*tt.channels)
			n, err := r.ReadFrames(got, frameCount)
			require.NoError(t, err)
			require.Equal(t, frameCount, n)

			for i := range frames {
				assert.InDelta(t, frames[i], got[i], tt.tolerance, "sample %d", i)
			}

			// The stream is exhausted; further reads report zero frames.
			n, err = r.ReadFrames(got, frameCount)
			require.NoError(t, err)
			assert.Equal(t, 0, n)
		})
	}
}

func TestReadFramesShortRead(t *testing.T) {
	const frameCount = 10
	frames := make([]float64, frameCount*2)
	for i := range frames {
		frames[i] = float64(i) / float64(len(frames))
	}

	path := filepath.Join(t.TempDir(), "short.wav")
	writeTestFile(t, path, 8000, 2, 16, frames)

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	// Ask for more frames than the file holds.
	got := make([]float64, 32*2)
	n, err := r.ReadFrames(got, 32)
	require.NoError(t, err)
	assert.Equal(t, frameCount, n)
}

func TestClampOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clamp.wav")
	writeTestFile(t, path, 8000, 1, 16, []float64{2.5, -3.0, 0.5})

	r, err := OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	got := make([]float64, 3)
	n, err := r.ReadFrames(got, 3)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	assert.InDelta(t, 1.0, got[0], 1e-4)
	assert.InDelta(t, -1.0, got[1], 1e-4)
	assert.InDelta(t, 0.5, got[2], 1e-4)
}

func TestOpenReaderErrors(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)

	notWav := filepath.Join(t.TempDir(), "not.wav")
	require.NoError(t, os.WriteFile(notWav, []byte("definitely not audio"), 0o644))

	_, err = OpenReader(notWav)
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestCreateWriterValidation(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateWriter(filepath.Join(dir, "a.wav"), 44100, 2, 8)
	assert.ErrorIs(t, err, ErrUnsupportedBitDepth)

	_, err = CreateWriter(filepath.Join(dir, "b.wav"), 0, 2, 16)
	assert.ErrorIs(t, err, ErrInvalidSampleRate)

	_, err = CreateWriter(filepath.Join(dir, "c.wav"), 44100, 0, 16)
	assert.ErrorIs(t, err, ErrInvalidChannels)
}
