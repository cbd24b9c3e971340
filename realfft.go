package splitfft

// minRealHalfLength is the smallest supported length for Re/Im in
// RealFFTSplit (n/2 in spec terms), giving a minimum real length of 16.
const minRealHalfLength = 8

// RealFFTSplit reduces an N-point real transform to an (N/2)-point
// split complex transform, followed by a spectral split/combine pass.
//
// On a forward call, re holds the even-indexed real samples
// x[0], x[2], ..., x[N-2] and im holds the odd-indexed samples
// x[1], x[3], ..., x[N-1]; the result is the packed half-spectrum
// described in spec.md section 6 ("Packed half-spectrum layout"):
// re/im hold X[0..N/2-1] split into real/imaginary halves, except slot
// 0, whose "real" part holds the DC bin X[0] and whose "imag" part
// holds the Nyquist bin X[N/2].
//
// On an inverse call, re/im must already hold that packed half-spectrum
// layout; the result is the reconstructed real signal, with re holding
// the even samples and im the odd samples.
//
// len(re) must equal len(im), must be a power of two, and must be at
// least minRealHalfLength (an effective real length N of at least 16).
func RealFFTSplit(re, im []float64, forward bool, normalize float64) error {
	const context = "RealFFTSplit"
	if err := checkInitialized(context); err != nil {
		return err
	}
	half := len(re)
	if len(im) != half {
		return &BufferMismatchError{Context: context, LenA: len(re), LenB: len(im), NameA: "re", NameB: "im"}
	}
	if !IsPow2(half) {
		return &SizeError{Context: context, Length: half}
	}
	if half < minRealHalfLength {
		return &MinimumLengthError{Context: context, Length: 2 * half, Minimum: 2 * minRealHalfLength}
	}
	l := ilog2Pow2(half)
	if l+1 >= MaxTableDepth {
		return &DepthExceededError{Context: context, NeededDepth: l + 1, MaxDepth: MaxTableDepth}
	}

	// The combine pass uses the forward twiddle table in both directions:
	// realSplitCombineInverse's pairwise formula is already the exact
	// algebraic inverse of realSplitCombineForward's, so it needs the same
	// sin values, not the conjugate. The sign flip for the inverse belongs
	// only to the inner fftSplit call below, which selects its own table
	// from its forward argument.
	cos := tables.cosTable[l+1]
	sin := tables.sinTable[l+1]

	if forward {
		fftSplit(re, im, l, true, 1.0)
		realSplitCombineForward(re, im, cos, sin, half)
	} else {
		realSplitCombineInverse(re, im, cos, sin, half)
		fftSplit(re, im, l, false, normalize)
	}
	return nil
}

// realSplitCombineForward de-mixes the length-(n/2) complex spectrum
// produced by the inner complex FFT into the first half of the true
// N-point real spectrum, per spec.4.7 step 2-3.
func realSplitCombineForward(re, im, cos, sin []float64, half int) {
	realSplitCombinePairs(re, im, cos, sin, half, true)

	mid := half / 2
	im[mid] = -im[mid]

	r0, i0 := re[0], im[0]
	re[0] = r0 + i0
	im[0] = r0 - i0
}

// realSplitCombineInverse undoes realSplitCombineForward, recovering
// the length-(n/2) complex spectrum that the forward inner complex FFT
// produced, so that the caller can run the inverse complex FFT on it.
func realSplitCombineInverse(re, im, cos, sin []float64, half int) {
	dc, nyquist := re[0], im[0]
	re[0] = 0.5 * (dc + nyquist)
	im[0] = 0.5 * (dc - nyquist)

	mid := half / 2
	im[mid] = -im[mid]

	realSplitCombinePairs(re, im, cos, sin, half, false)
}

// realSplitCombinePairs runs the symmetric k/(half-k) pairwise pass
// shared by the forward and inverse directions. forward selects which
// of the two algebraically-inverse formulas (spec.4.7 step 2, and its
// closed-form inverse) to apply.
func realSplitCombinePairs(re, im, cos, sin []float64, half int, forward bool) {
	mid := half / 2
	for k := 1; k < mid; k++ {
		m := half - k
		c, s := cos[k], sin[k]
		if forward {
			fRe, fIm, mRe, mIm := re[k], im[k], re[m], im[m]
			e := fRe + mRe
			f := fIm - mIm
			a := (fRe - mRe) * s
			b := (fIm + mIm) * c
			c2 := (fRe - mRe) * c
			d := (fIm + mIm) * s
			re[k] = 0.5 * (e + (a + b))
			im[k] = 0.5 * (f + (d - c2))
			re[m] = 0.5 * (e - (a + b))
			im[m] = 0.5 * ((d - c2) - f)
		} else {
			xReK, xImK, xReM, xImM := re[k], im[k], re[m], im[m]
			e := xReK + xReM
			f := xImK - xImM
			ab := xReK - xReM
			dc := xImK + xImM
			p := ab*s - dc*c
			q := ab*c + dc*s
			re[k] = 0.5 * (e + p)
			re[m] = 0.5 * (e - p)
			im[k] = 0.5 * (f + q)
			im[m] = 0.5 * (q - f)
		}
	}
}
