// Package frame provides fixed-size sliding windows over interleaved
// multi-channel sample streams. A window advances in whole-frame steps,
// preserving retained samples and zero-filling the vacated region, which
// is the access pattern overlap-add STFT processing needs.
package frame
