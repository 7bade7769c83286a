package upmix

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/szabadka/tabuli/dsp/frame"
)

// Reader is the input collaborator: a readable source of interleaved
// stereo float64 frames. ReadFrames fills dst with up to frames frames
// (2*frames samples) and reports how many frames it actually read. At end
// of stream it returns 0 and a nil error; any error is fatal to the run.
type Reader interface {
	ReadFrames(dst []float64, frames int) (int, error)
}

// Writer is the output collaborator: a writable sink of interleaved
// three-channel float64 frames (left minus center, right minus center,
// center).
type Writer interface {
	WriteFrames(src []float64, frames int) (int, error)
}

// Extractor is the processing context for one center-extraction run: the
// configuration, the FFT plan, and every scratch buffer, allocated once
// and reused for each analysis frame. It is exclusively owned by a single
// goroutine and not safe for concurrent use.
type Extractor struct {
	windowSize int
	overlap    int
	skip       int // hop between analysis frames
	bins       int // windowSize/2 + 1
	scale      float64

	onStart    func()
	onProgress func(int64)

	plan *algofft.Plan[complex128]

	input  *frame.Sliding // stereo samples, newest skip frames are the read target
	output *frame.Sliding // L', R', C accumulation

	packed    []complex128 // packed forward input, reused as full inverse spectrum
	spectrum  []complex128 // forward transform result
	timeFrame []complex128 // inverse transform result

	left, right, center []complex128

	reL, imL, reR, imR []float64
	powL, powR         []float64
}

// New creates an Extractor, validating the configuration and building the
// FFT plan. Plan construction is the expensive step; the plan is reused
// for every frame of the run.
func New(opts ...Option) (*Extractor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.windowSize%cfg.overlap != 0 {
		return nil, fmt.Errorf("%w: %d %% %d != 0", ErrIndivisibleWindow, cfg.windowSize, cfg.overlap)
	}

	plan, err := algofft.NewPlan64(cfg.windowSize)
	if err != nil {
		return nil, fmt.Errorf("upmix: failed to create FFT plan: %w", err)
	}

	input, err := frame.NewSliding(cfg.windowSize, 2)
	if err != nil {
		return nil, err
	}
	output, err := frame.NewSliding(cfg.windowSize, 3)
	if err != nil {
		return nil, err
	}

	bins := cfg.windowSize/2 + 1

	return &Extractor{
		windowSize: cfg.windowSize,
		overlap:    cfg.overlap,
		skip:       cfg.windowSize / cfg.overlap,
		bins:       bins,
		// The inverse transform already carries the 1/N factor, so only
		// the overlap average remains of the 1/(N*overlap) scale.
		scale:      1 / float64(cfg.overlap),
		onStart:    cfg.onStart,
		onProgress: cfg.onProgress,
		plan:       plan,
		input:      input,
		output:     output,
		packed:     make([]complex128, cfg.windowSize),
		spectrum:   make([]complex128, cfg.windowSize),
		timeFrame:  make([]complex128, cfg.windowSize),
		left:       make([]complex128, bins),
		right:      make([]complex128, bins),
		center:     make([]complex128, bins),
		reL:        make([]float64, bins),
		imL:        make([]float64, bins),
		reR:        make([]float64, bins),
		imR:        make([]float64, bins),
		powL:       make([]float64, bins),
		powR:       make([]float64, bins),
	}, nil
}

// WindowSize returns the analysis window length in samples.
func (e *Extractor) WindowSize() int { return e.windowSize }

// Overlap returns the number of overlapping frames per window.
func (e *Extractor) Overlap() int { return e.overlap }

// SkipSize returns the hop between successive analysis frames.
func (e *Extractor) SkipSize() int { return e.skip }

// Process pulls stereo frames from r until the stream is exhausted,
// writing one three-channel frame to w for every input frame read.
//
// Frames are processed strictly in order: read, forward transform, bin
// selection, inverse transform, overlap-add, emit. Output lags input by
// windowSize-skip frames while the overlap history fills; the final
// emission is clamped so the output never exceeds the frames actually
// read. Any read or write failure aborts the run.
func (e *Extractor) Process(r Reader, w Writer) error {
	e.input.Zero()
	e.output.Zero()

	if e.onStart != nil {
		e.onStart()
	}

	var read, written, index int64
	for {
		n, err := r.ReadFrames(e.input.Tail(e.skip), e.skip)
		if err != nil {
			return fmt.Errorf("upmix: read failed: %w", err)
		}
		read += int64(n)

		e.mirrorInput()

		if err := e.analyze(); err != nil {
			return err
		}
		e.selectCenter()
		if err := e.synthesize(); err != nil {
			return err
		}

		if index >= int64(e.windowSize-e.skip) {
			toWrite := int64(e.skip)
			if rem := read - written; rem < toWrite {
				toWrite = rem
			}

			e.finalize(int(toWrite))

			if toWrite > 0 {
				wrote, err := w.WriteFrames(e.output.Head(int(toWrite)), int(toWrite))
				if err != nil {
					return fmt.Errorf("upmix: write failed: %w", err)
				}
				if int64(wrote) != toWrite {
					return fmt.Errorf("upmix: short write: %d of %d frames", wrote, toWrite)
				}
			}

			written += toWrite
			if e.onProgress != nil {
				e.onProgress(written)
			}
			if written == read {
				return nil
			}
		}

		if err := e.input.Advance(e.skip); err != nil {
			return err
		}
		if err := e.output.Advance(e.skip); err != nil {
			return err
		}
		index += int64(e.skip)
	}
}

// mirrorInput copies the newest raw stereo frames verbatim into the output
// window's L/R slots, so finalization subtracts from the true input rather
// than a transformed reconstruction. The matching center slots start at
// zero for this region.
func (e *Extractor) mirrorInput() {
	in := e.input.Tail(e.skip)
	out := e.output.Tail(e.skip)
	for i := range e.skip {
		out[3*i] = in[2*i]
		out[3*i+1] = in[2*i+1]
		out[3*i+2] = 0
	}
}

// finalize completes the oldest frames of the output window: every frame
// there has received all overlap contributions, so the accumulated center
// is scaled down to the overlap average and subtracted from the raw
// left/right samples.
func (e *Extractor) finalize(frames int) {
	out := e.output.Head(frames)
	for i := range frames {
		c := out[3*i+2] * e.scale
		out[3*i+2] = c
		out[3*i] -= c
		out[3*i+1] -= c
	}
}
