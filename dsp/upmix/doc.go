// Package upmix extracts a heuristic center channel from a stereo stream,
// producing a three-channel stream (left minus center, right minus center,
// center).
//
// The extraction runs a rectangular-framed STFT over the input: each
// analysis frame is transformed, the per-bin candidate with the smaller
// squared magnitude is copied into a center spectrum, and the inverse
// transform is overlap-added into the output. Content panned hard to one
// side has near-zero energy in the opposite channel at that frequency, so
// the minimum-magnitude bin approximates the shared component. This is a
// lossy heuristic, not a separation guarantee.
//
// Processing is offline, single-threaded, and single-pass: an [Extractor]
// owns all buffers and the FFT plan for one run and pulls from a [Reader]
// until it is exhausted.
package upmix
