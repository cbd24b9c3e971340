package splitfft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// TestScenarioKroneckerDelta is S1: the FFT of a unit impulse is the
// constant sequence of ones.
func TestScenarioKroneckerDelta(t *testing.T) {
	x := []complex128{1, 0, 0, 0}
	if err := FFTInterleaved(x, true, None); err != nil {
		t.Fatal(err)
	}
	for i, got := range x {
		if e := cmplx.Abs(got - 1); e > 1e-12 {
			t.Errorf("bin %d: got=%v want=1", i, got)
		}
	}
}

// TestScenarioConstant is S2: the FFT of a constant sequence has all its
// energy in the DC bin.
func TestScenarioConstant(t *testing.T) {
	x := []complex128{1, 1, 1, 1}
	if err := FFTInterleaved(x, true, None); err != nil {
		t.Fatal(err)
	}
	want := []complex128{4, 0, 0, 0}
	for i := range x {
		if e := cmplx.Abs(x[i] - want[i]); e > 1e-12 {
			t.Errorf("bin %d: got=%v want=%v", i, x[i], want[i])
		}
	}
}

// TestScenarioAlternating is S3: the FFT of [1, 0, -1, 0].
func TestScenarioAlternating(t *testing.T) {
	x := []complex128{1, 0, -1, 0}
	if err := FFTInterleaved(x, true, None); err != nil {
		t.Fatal(err)
	}
	want := []complex128{0, 2, 0, 2}
	for i := range x {
		if e := cmplx.Abs(x[i] - want[i]); e > 1e-12 {
			t.Errorf("bin %d: got=%v want=%v", i, x[i], want[i])
		}
	}
}

// TestScenarioRealCosine is S4: a length-16 real cosine at bin 3 packs
// its entire energy into X_re[3], with DC and Nyquist both zero.
func TestScenarioRealCosine(t *testing.T) {
	const n = 16
	const bin = 3
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Cos(2 * math.Pi * float64(bin) * float64(i) / float64(n))
	}
	if err := RealFFTInterleaved(samples, true, DoNotRezip); err != nil {
		t.Fatal(err)
	}
	half := n / 2
	re, im := samples[:half], samples[half:]

	if e := math.Abs(re[0]); e > 1e-12 {
		t.Errorf("DC bin, got=%v want=0", re[0])
	}
	if e := math.Abs(im[0]); e > 1e-12 {
		t.Errorf("Nyquist bin, got=%v want=0", im[0])
	}
	for k := 1; k < half; k++ {
		wantRe, wantIm := 0.0, 0.0
		if k == bin {
			wantRe = 8.0
		}
		if e := math.Abs(re[k] - wantRe); e > 1e-9 {
			t.Errorf("bin %d real, got=%v want=%v", k, re[k], wantRe)
		}
		if e := math.Abs(im[k] - wantIm); e > 1e-9 {
			t.Errorf("bin %d imag, got=%v want=%v", k, im[k], wantIm)
		}
	}
}

// TestScenarioRandomRoundTrip is S5.
func TestScenarioRandomRoundTrip(t *testing.T) {
	const n = 2048
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(2*rand.Float64()-1, 2*rand.Float64()-1)
	}
	y := copyVector(x)
	if err := FFTInterleaved(y, true, None); err != nil {
		t.Fatal(err)
	}
	if err := FFTInterleaved(y, false, None); err != nil {
		t.Fatal(err)
	}
	for i := range x {
		if e := cmplx.Abs(x[i] - y[i]); e > 1e-10 {
			t.Errorf("bin %d: got=%v want=%v diff=%v", i, y[i], x[i], e)
		}
	}
}

// TestScenarioRealCrossCheck is S6: the packed half-spectrum of a real
// signal, expanded to the full Hermitian-symmetric spectrum, matches the
// complex FFT of the same samples cast to (real, 0).
func TestScenarioRealCrossCheck(t *testing.T) {
	const n = 2048
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 2*rand.Float64() - 1
	}
	original := make([]float64, n)
	copy(original, samples)

	want := Float64ToComplex128Array(original)
	if err := FFTInterleaved(want, true, None); err != nil {
		t.Fatal(err)
	}

	if err := RealFFTInterleaved(samples, true, DoNotRezip); err != nil {
		t.Fatal(err)
	}
	half := n / 2
	re, im := samples[:half], samples[half:]

	if e := math.Abs(re[0] - real(want[0])); e > 1e-8 {
		t.Errorf("DC bin, got=%v want=%v", re[0], real(want[0]))
	}
	if e := math.Abs(im[0] - real(want[half])); e > 1e-8 {
		t.Errorf("Nyquist bin, got=%v want=%v", im[0], real(want[half]))
	}
	for k := 1; k < half; k++ {
		got := complex(re[k], im[k])
		if e := cmplx.Abs(got - want[k]); e > 1e-8 {
			t.Errorf("bin %d: got=%v want=%v diff=%v", k, got, want[k], e)
		}
		mirror := want[n-k]
		if e := cmplx.Abs(cmplx.Conj(got) - mirror); e > 1e-8 {
			t.Errorf("Hermitian mirror at bin %d: conj(got)=%v want=%v diff=%v", k, cmplx.Conj(got), mirror, e)
		}
	}
}

func TestParseval(t *testing.T) {
	for _, n := range []int{16, 64, 256, 1024} {
		x := complexRand(n)
		y := copyVector(x)
		if err := FFTInterleaved(y, true, None); err != nil {
			t.Fatal(err)
		}
		var timeEnergy, freqEnergy float64
		for i := 0; i < n; i++ {
			timeEnergy += real(x[i])*real(x[i]) + imag(x[i])*imag(x[i])
			freqEnergy += real(y[i])*real(y[i]) + imag(y[i])*imag(y[i])
		}
		freqEnergy /= float64(n)
		if e := math.Abs(timeEnergy - freqEnergy); e > 1e-6*timeEnergy {
			t.Errorf("n=%d: Parseval violated: time=%v freq/N=%v diff=%v", n, timeEnergy, freqEnergy, e)
		}
	}
}

func TestTwiddleTableCorrectness(t *testing.T) {
	for d := 0; d < MaxTableDepth; d++ {
		n := 1 << uint(d)
		cos := tables.cosTable[d]
		sin := tables.sinTable[d]
		if cos[0] != 1.0 {
			t.Errorf("depth %d: CosTable[0] = %v, want 1.0", d, cos[0])
		}
		if sin[0] != 0.0 {
			t.Errorf("depth %d: SinTable[0] = %v, want 0.0", d, sin[0])
		}
		for k := 0; k < n; k += max(1, n/32) {
			if e := math.Abs(cos[k]*cos[k]+sin[k]*sin[k] - 1.0); e > 1e-12 {
				t.Errorf("depth %d, k=%d: cos^2+sin^2 = %v, want 1.0", d, k, e+1.0)
			}
		}
	}
}
