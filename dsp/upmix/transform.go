package upmix

import (
	"fmt"
	"math/cmplx"
)

// analyze transforms the current input window into per-channel spectra.
//
// Both real channels ride a single complex transform: the left channel is
// packed into the real parts and the right channel into the imaginary
// parts, then the two spectra are separated through Hermitian symmetry.
// The input window is only read, never written.
func (e *Extractor) analyze() error {
	in := e.input.Data()
	for i := range e.windowSize {
		e.packed[i] = complex(in[2*i], in[2*i+1])
	}

	err := e.plan.Forward(e.spectrum, e.packed)
	if err != nil {
		return fmt.Errorf("upmix: forward FFT failed: %w", err)
	}

	n := e.windowSize
	for k := range e.bins {
		zk := e.spectrum[k]
		zm := cmplx.Conj(e.spectrum[(n-k)%n])
		sum := zk + zm
		diff := zk - zm

		e.left[k] = complex(real(sum)/2, imag(sum)/2)
		// diff/(2i): real and imaginary parts swap with a sign flip.
		e.right[k] = complex(imag(diff)/2, -real(diff)/2)
	}

	return nil
}

// synthesize inverse-transforms the center spectrum and overlap-adds the
// result into the output window's center slots. The center spectrum is
// rebuilt every frame, so the full-spectrum scratch may clobber it.
func (e *Extractor) synthesize() error {
	n := e.windowSize

	e.packed[0] = complex(real(e.center[0]), 0)
	for k := 1; k < e.bins; k++ {
		v := e.center[k]
		e.packed[k] = v
		e.packed[n-k] = cmplx.Conj(v)
	}
	if n%2 == 0 {
		// Nyquist bin must be real for a real time-domain result.
		e.packed[n/2] = complex(real(e.center[n/2]), 0)
	}

	err := e.plan.Inverse(e.timeFrame, e.packed)
	if err != nil {
		return fmt.Errorf("upmix: inverse FFT failed: %w", err)
	}

	out := e.output.Data()
	for i := range n {
		out[3*i+2] += real(e.timeFrame[i])
	}

	return nil
}
