// Package simdkernel holds the hardware-vectorized butterfly stage used
// when the Go toolchain is built with GOEXPERIMENT=simd. It is kept
// internal because it is an implementation detail of the butterfly
// kernel, not part of the public contract: callers never see a lane
// width, they only see FFTSplit/FFTInterleaved/RealFFTSplit behave the
// same regardless of which path executed.
//
// Without that experiment enabled, this file's zero values stand:
// Available is false and Stage is nil, so splitfft falls back to its
// portable width-unrolled Go implementation.
package simdkernel

// Available reports whether this build was compiled with simd
// intrinsics (GOEXPERIMENT=simd) and the running CPU supports the
// accelerated path. It stays false, and Stage stays nil, whenever
// kernel_simd.go's build tag is not active.
var Available bool

// Stage is set to a non-nil hardware-vectorized butterfly implementation
// only in the goexperiment.simd build; it is left nil otherwise so that
// callers can treat an unset Stage the same as "fall back to scalar".
var Stage func(r, im, cos, sin []float64, s, n int) bool
