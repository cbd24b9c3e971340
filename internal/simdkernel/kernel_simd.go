//go:build goexperiment.simd

package simdkernel

import (
	"simd/archsimd"
	"unsafe"
)

func init() {
	Available = archsimd.X86.AVX2()
	if Available {
		Stage = stage
	}
}

// stage handles the lane-width-2 butterfly stages (spec stage 3 and
// above) using a single Float64x2 vector per lane pair: one load for
// the even half, one for the odd half, one complex multiply against the
// twiddle, and one add/sub to produce both outputs. The j loop runs the
// general twiddle formula over the whole 0..h-1 range (cos[0]=1,
// sin[0]=0 already gives the right answer, so there is no need to
// special-case j=0 the way the scalar path does). Stages 1 and 2 are
// left to the portable width-unrolled Go fallback in the splitfft
// package (stage returns false for them); every stage from 3 upward,
// including those the fallback would unroll at width 4 or 8, runs here
// at width 2.
func stage(r, im, cos, sin []float64, s, n int) bool {
	if s < 3 {
		return false
	}
	m := 1 << uint(s)
	h := m >> 1
	if h%2 != 0 {
		return false
	}
	for k := 0; k < n; k += m {
		for j := 0; j+1 < h; j += 2 {
			e, o := k+j, k+j+h
			wre := archsimd.LoadFloat64x2((*[2]float64)(unsafe.Pointer(&cos[j])))
			wim := archsimd.LoadFloat64x2((*[2]float64)(unsafe.Pointer(&sin[j])))
			oRe := archsimd.LoadFloat64x2((*[2]float64)(unsafe.Pointer(&r[o])))
			oIm := archsimd.LoadFloat64x2((*[2]float64)(unsafe.Pointer(&im[o])))
			eRe := archsimd.LoadFloat64x2((*[2]float64)(unsafe.Pointer(&r[e])))
			eIm := archsimd.LoadFloat64x2((*[2]float64)(unsafe.Pointer(&im[e])))

			tRe := wre.Mul(oRe).Sub(wim.Mul(oIm))
			tIm := wim.Mul(oRe).Add(wre.Mul(oIm))

			eRe.Add(tRe).Store((*[2]float64)(unsafe.Pointer(&r[e])))
			eIm.Add(tIm).Store((*[2]float64)(unsafe.Pointer(&im[e])))
			eRe.Sub(tRe).Store((*[2]float64)(unsafe.Pointer(&r[o])))
			eIm.Sub(tIm).Store((*[2]float64)(unsafe.Pointer(&im[o])))
		}
	}
	return true
}
