package splitfft

import (
	"math"
	"math/bits"
)

// IsPow2 returns true if n is a perfect power of 2 (1, 2, 4, 8, ...) and
// false otherwise.
// Algorithm from: https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
func IsPow2(n int) bool {
	if n <= 0 {
		return false
	}
	return (uint64(n) & uint64(n-1)) == 0
}

// NextPow2 returns the smallest power of 2 >= n.
func NextPow2(n int) int {
	if n <= 0 {
		return 1
	}
	return 1 << uint64(bits.Len64(uint64(n-1)))
}

// ZeroPad pads x with 0s at the end into a new array of length n. This
// does not alter x, and allocates a new array; callers on a hot path
// should zero-pad once up front rather than on every call.
func ZeroPad(x []complex128, n int) []complex128 {
	y := make([]complex128, n)
	copy(y, x)
	return y
}

// ZeroPadToNextPow2 pads x with 0s at the end into a new array of
// length NextPow2(len(x)). This does not alter x.
func ZeroPadToNextPow2(x []complex128) []complex128 {
	n := NextPow2(len(x))
	y := make([]complex128, n)
	copy(y, x)
	return y
}

// Float64ToComplex128Array converts a float64 array to the equivalent
// complex128 array using an imaginary part of 0.
func Float64ToComplex128Array(x []float64) []complex128 {
	y := make([]complex128, len(x))
	for i, v := range x {
		y[i] = complex(v, 0)
	}
	return y
}

// Complex128ToFloat64Array converts a complex128 array to the
// equivalent float64 array, taking only the real part.
func Complex128ToFloat64Array(x []complex128) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = real(v)
	}
	return y
}

// RoundFloat64Array calls math.Round on each entry of x, in place.
func RoundFloat64Array(x []float64) {
	for i, v := range x {
		x[i] = math.Round(v)
	}
}

// PowerSpectrum computes |X[k]|^2 for k = 0..n/2 from a packed
// half-spectrum in split re/im halves, as produced by a forward
// RealFFTSplit (or a forward RealFFTInterleaved with DoNotRezip),
// unpacking the DC/Nyquist pair out of slot 0. The returned slice has
// length n/2+1, where n is the effective real transform length
// (n = 2*len(reHalf)).
func PowerSpectrum(reHalf, imHalf []float64) []float64 {
	half := len(reHalf)
	out := make([]float64, half+1)
	dc := reHalf[0]
	nyquist := imHalf[0]
	out[0] = dc * dc
	out[half] = nyquist * nyquist
	for k := 1; k < half; k++ {
		out[k] = reHalf[k]*reHalf[k] + imHalf[k]*imHalf[k]
	}
	return out
}
