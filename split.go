package splitfft

// FFTSplit performs an in-place radix-2 Cooley-Tukey transform on the
// split real/imaginary arrays r and im, whose length n must be a power
// of two. If forward is true this computes the forward DFT using the
// kernel e^(-2*pi*i*k*n/N); if false it computes the inverse DFT and
// scales the result by normalize/n (normalize defaults to 1.0 for the
// conventional inverse).
//
// r and im must have the same length, and log2(n)+1 must be less than
// MaxTableDepth. Initialize must have been called first.
func FFTSplit(r, im []float64, forward bool, normalize float64) error {
	const context = "FFTSplit"
	if err := checkInitialized(context); err != nil {
		return err
	}
	n := len(r)
	if len(im) != n {
		return &BufferMismatchError{Context: context, LenA: len(r), LenB: len(im), NameA: "r", NameB: "im"}
	}
	if n == 0 {
		return nil
	}
	if !IsPow2(n) {
		return &SizeError{Context: context, Length: n}
	}
	depth := ilog2Pow2(n)
	if depth+1 >= MaxTableDepth {
		return &DepthExceededError{Context: context, NeededDepth: depth + 1, MaxDepth: MaxTableDepth}
	}
	fftSplit(r, im, depth, forward, normalize)
	return nil
}

// fftSplit is the unchecked core of FFTSplit: depth, buffer lengths and
// table availability are all assumed to have been validated already.
func fftSplit(r, im []float64, depth int, forward bool, normalize float64) {
	if depth > 0 {
		sinTbl := tables.sinTable
		if !forward {
			sinTbl = tables.sinInvTable
		}
		bitReverseSplit(r, im, depth)

		n := len(r)
		for s := 1; s <= depth; s++ {
			cos := tables.cosTable[s]
			sin := sinTbl[s]
			butterflyStage(r, im, cos, sin, s, n)
		}
	}

	if !forward {
		scale := normalize / float64(len(r))
		scaleSplit(r, im, scale)
	}
}

// scaleSplit multiplies every element of r and im by scale.
func scaleSplit(r, im []float64, scale float64) {
	for i := range r {
		r[i] *= scale
		im[i] *= scale
	}
}
