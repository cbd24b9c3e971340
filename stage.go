package splitfft

// accelStage, when non-nil, is installed by a build-tag-gated file
// (internal/simdkernel's counterpart wired in through simd_hook.go) to
// provide a hardware-vectorized butterfly stage. It reports whether it
// handled the stage; butterflyStage falls back to the portable,
// width-unrolled implementation below whenever it returns false (no
// accelerator installed, or the stage/size combination isn't one the
// accelerator covers).
var accelStage func(r, im, cos, sin []float64, s, n int) bool

// butterflyStage performs every butterfly of stage s (1-indexed) across
// the whole buffer. Per spec.4.6, stages 1 and 2 share their twiddle
// index ordering only partially within a block and are always scalar;
// from stage 3 the inner j-loop is vectorizable at lane width 2, from
// stage 4 at lane width 4, and from stage 5 at lane width 8.
// Implementations select the widest width for which the block and
// twiddle subarray are aligned and a whole number of vectors fit, which
// holds automatically once (lane width * 2) divides 2^s.
func butterflyStage(r, im, cos, sin []float64, s, n int) {
	if accelStage != nil && accelStage(r, im, cos, sin, s, n) {
		return
	}
	m := 1 << uint(s)
	h := m >> 1
	switch {
	case s >= 5:
		butterflyStageWide(r, im, cos, sin, m, h, n, 8)
	case s == 4:
		butterflyStageWide(r, im, cos, sin, m, h, n, 4)
	case s == 3:
		butterflyStageWide(r, im, cos, sin, m, h, n, 2)
	default:
		butterflyStageScalar(r, im, cos, sin, m, h, n)
	}
}

// butterflyStageScalar is the unconditional correctness path for a
// single stage: it is always correct regardless of width, and is the
// only path used for stage 1 and stage 2.
func butterflyStageScalar(r, im, cos, sin []float64, m, h, n int) {
	for k := 0; k < n; k += m {
		// j == 0: twiddle is (1, 0), so skip the two multiplies.
		e, o := k, k+h
		tr, ti := r[o], im[o]
		re, ie := r[e], im[e]
		r[e], im[e] = re+tr, ie+ti
		r[o], im[o] = re-tr, ie-ti
		for j := 1; j < h; j++ {
			wre, wim := cos[j], sin[j]
			e, o = k+j, k+j+h
			oreal, oimag := r[o], im[o]
			tr = wre*oreal - wim*oimag
			ti = wim*oreal + wre*oimag
			re, ie = r[e], im[e]
			r[e], im[e] = re+tr, ie+ti
			r[o], im[o] = re-tr, ie-ti
		}
	}
}

// butterflyStageWide performs the same butterflies as
// butterflyStageScalar, but with its j-loop unrolled into groups of
// width lanes so that, within each group, loads of r/im/cos/sin are
// contiguous and stores land on contiguous slots -- the shape the
// compiler needs to pack the group into a single vector register.
// width must evenly divide h (guaranteed by the caller's stage
// selection: width*2 always divides 2^s once width in {2,4,8} is chosen
// no earlier than spec.4.6 allows).
func butterflyStageWide(r, im, cos, sin []float64, m, h, n, width int) {
	for k := 0; k < n; k += m {
		j := 0
		for ; j+width <= h; j += width {
			for lane := 0; lane < width; lane++ {
				jj := j + lane
				wre, wim := cos[jj], sin[jj]
				e, o := k+jj, k+jj+h
				oreal, oimag := r[o], im[o]
				tRe := wre*oreal - wim*oimag
				tIm := wim*oreal + wre*oimag
				rE, iE := r[e], im[e]
				r[e], im[e] = rE+tRe, iE+tIm
				r[o], im[o] = rE-tRe, iE-tIm
			}
		}
		for ; j < h; j++ {
			wre, wim := cos[j], sin[j]
			e, o := k+j, k+j+h
			oreal, oimag := r[o], im[o]
			tRe := wre*oreal - wim*oimag
			tIm := wim*oreal + wre*oimag
			rE, iE := r[e], im[e]
			r[e], im[e] = rE+tRe, iE+tIm
			r[o], im[o] = rE-tRe, iE-tIm
		}
	}
}
