package upmix

import (
	"github.com/cwbudde/algo-vecmath"
)

// selectCenter fills the center spectrum by copying, for every bin, the
// channel whose squared magnitude is smaller. Ties copy the right channel;
// the asymmetry is inherited behavior and deliberately kept.
func (e *Extractor) selectCenter() {
	for k := range e.bins {
		e.reL[k], e.imL[k] = real(e.left[k]), imag(e.left[k])
		e.reR[k], e.imR[k] = real(e.right[k]), imag(e.right[k])
	}

	vecmath.Power(e.powL, e.reL, e.imL)
	vecmath.Power(e.powR, e.reR, e.imR)

	for k := range e.bins {
		if e.powL[k] < e.powR[k] {
			e.center[k] = e.left[k]
		} else {
			e.center[k] = e.right[k]
		}
	}
}
