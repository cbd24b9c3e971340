package splitfft

import "unsafe"

// Flags is a bitfield accepted by the interleaved entry points.
type Flags uint8

const (
	// None requests the default behavior.
	None Flags = 0
	// DoNotRezip leaves the output in split (unzipped) layout after an
	// interleaved-entry call, instead of re-interleaving it.
	DoNotRezip Flags = 1 << 0
	// DoNotNormalize applies to the inverse real FFT and sets the
	// internal normalize factor to N instead of 1.
	DoNotNormalize Flags = 1 << 1
)

func (f Flags) has(bit Flags) bool {
	return f&bit != 0
}

// complexSplit reinterprets a []complex128 as a []float64 of twice the
// length, alternating real and imaginary parts -- the same backing
// memory, viewed as 2n doubles rather than n complex values.
func complexSplit(b []complex128) []float64 {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), 2*len(b))
}

// FFTInterleaved performs an in-place DFT (or inverse DFT) on b, a
// buffer of interleaved complex128 values whose length n must be a
// power of two.
//
// It unzips b's backing doubles into split real/imaginary halves,
// invokes FFTSplit, and, unless flags has DoNotRezip set, re-zips the
// result back into interleaved layout.
func FFTInterleaved(b []complex128, forward bool, flags Flags) error {
	const context = "FFTInterleaved"
	if err := checkInitialized(context); err != nil {
		return err
	}
	n := len(b)
	if n == 0 {
		return nil
	}
	if !IsPow2(n) {
		return &SizeError{Context: context, Length: n}
	}
	complexDepth := ilog2Pow2(n)
	if complexDepth+1 >= MaxTableDepth {
		return &DepthExceededError{Context: context, NeededDepth: complexDepth + 1, MaxDepth: MaxTableDepth}
	}
	doubled := complexSplit(b)
	depth := complexDepth + 1
	unzip(doubled, depth)

	re := doubled[:n]
	im := doubled[n:]
	fftSplit(re, im, complexDepth, forward, 1.0)

	if !flags.has(DoNotRezip) {
		zip(doubled, depth)
	}
	return nil
}

// RealFFTInterleaved performs an in-place real FFT (or its inverse) on
// b, an array of 2^L doubles.
//
// On a forward call, b holds N real samples and, after the call, holds
// the packed half-spectrum described by RealFFTSplit. Unless flags has
// DoNotRezip set, that spectrum is re-zipped into interleaved layout:
// b[2k] and b[2k+1] hold the real and imaginary parts of slot k (slot 0
// holding DC and Nyquist). With DoNotRezip, b[:N/2] and b[N/2:] hold
// RealFFTSplit's re and im halves instead. On an inverse call, b must
// hold the packed half-spectrum in the interleaved layout, and after the
// call holds the reconstructed real samples (as even/odd halves if
// DoNotRezip is set).
func RealFFTInterleaved(b []float64, forward bool, flags Flags) error {
	const context = "RealFFTInterleaved"
	if err := checkInitialized(context); err != nil {
		return err
	}
	n := len(b)
	if !IsPow2(n) {
		return &SizeError{Context: context, Length: n}
	}
	if n < 2*minRealHalfLength {
		return &MinimumLengthError{Context: context, Length: n, Minimum: 2 * minRealHalfLength}
	}
	depth := ilog2Pow2(n)
	if depth >= MaxTableDepth {
		return &DepthExceededError{Context: context, NeededDepth: depth, MaxDepth: MaxTableDepth}
	}
	unzip(b, depth)

	half := n / 2
	re := b[:half]
	im := b[half:]

	normalize := 1.0
	if flags.has(DoNotNormalize) {
		normalize = float64(2 * half)
	}
	if err := RealFFTSplit(re, im, forward, normalize); err != nil {
		return err
	}

	if !flags.has(DoNotRezip) {
		zip(b, depth)
	}
	return nil
}
