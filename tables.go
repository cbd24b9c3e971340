package splitfft

import "math"

// MaxTableDepth bounds the maximum transform size the engine will build
// tables for. A complex FFT of length 2^L needs tables through depth L;
// the real-FFT adapter additionally needs depth L+1. The binding
// constraint, uniformly applied, is L+1 < MaxTableDepth.
const MaxTableDepth = 18

// swapPair is one entry of a bit-reversal swap table: applying
// R[I], I[I] <-> R[J], I[J] for every pair in the table performs the
// complete bit-reversal permutation.
type swapPair struct {
	I, J int
}

// tableSet holds every precomputed table the engine needs. It is built
// once by Initialize and never mutated afterward, so concurrent readers
// need no synchronization.
type tableSet struct {
	cosTable    [][]float64
	sinTable    [][]float64
	sinInvTable [][]float64
	swapPairs   [][]swapPair
	unzipCycles [][][]int
	zipCycles   [][][]int
}

var tables *tableSet

// Initialize builds every table the engine needs, up to MaxTableDepth.
// It is idempotent: calling it more than once is a no-op. Initialize is
// not safe to call concurrently with itself or with a transform; the
// caller must order it before any concurrent transform use.
func Initialize() {
	if tables != nil {
		return
	}
	t := &tableSet{}
	t.buildTwiddleTables()
	t.buildBitReversalTables()
	t.buildZipCycleTables()
	tables = t
}

func checkInitialized(context string) error {
	if tables == nil {
		return &UninitializedError{Context: context}
	}
	return nil
}

// buildTwiddleTables fills CosTable, SinTable and SinInvTable for every
// depth d in [0, MaxTableDepth).
func (t *tableSet) buildTwiddleTables() {
	t.cosTable = make([][]float64, MaxTableDepth)
	t.sinTable = make([][]float64, MaxTableDepth)
	t.sinInvTable = make([][]float64, MaxTableDepth)
	for d := 0; d < MaxTableDepth; d++ {
		n := 1 << uint(d)
		cos := make([]float64, n)
		sin := make([]float64, n)
		sinInv := make([]float64, n)
		for k := 0; k < n; k++ {
			theta := -2.0 * math.Pi * float64(k) / float64(n)
			s, c := math.Sincos(theta)
			cos[k] = c
			sin[k] = s
			sinInv[k] = -s
		}
		t.cosTable[d] = cos
		t.sinTable[d] = sin
		t.sinInvTable[d] = sinInv
	}
}

// buildBitReversalTables produces SwapPairs[0..MaxTableDepth). For each
// depth d, it walks j from 0 to 2^d-1, and for every j whose bit-reversal
// r differs from j and has not yet been touched, records the pair
// (j, r). Fixed points and the mirror of each pair are omitted.
func (t *tableSet) buildBitReversalTables() {
	t.swapPairs = make([][]swapPair, MaxTableDepth)
	for d := 0; d < MaxTableDepth; d++ {
		n := 1 << uint(d)
		touched := make([]bool, n)
		pairs := make([]swapPair, 0, n/2)
		for j := 0; j < n; j++ {
			if touched[j] {
				continue
			}
			r := int(reverseBitsN(uint(j), uint(d)))
			if r == j {
				touched[j] = true
				continue
			}
			pairs = append(pairs, swapPair{I: j, J: r})
			touched[j] = true
			touched[r] = true
		}
		t.swapPairs[d] = pairs
	}
}

// buildZipCycleTables produces UnzipCycles[d] and ZipCycles[d] for every
// depth d in [2, MaxTableDepth]. UnzipCycles[d] decomposes the
// permutation p -> rotate_right(p, d) over 1 <= p <= 2^d-2 into disjoint
// cycles; ZipCycles[d] does the same for rotate_left, its inverse.
func (t *tableSet) buildZipCycleTables() {
	t.unzipCycles = make([][][]int, MaxTableDepth+1)
	t.zipCycles = make([][][]int, MaxTableDepth+1)
	for d := 2; d <= MaxTableDepth; d++ {
		n := 1 << uint(d)
		t.unzipCycles[d] = cyclesOf(n, d, rotateRight)
		t.zipCycles[d] = cyclesOf(n, d, rotateLeft)
	}
}

// cyclesOf decomposes the permutation p -> rotate(p, d) over the
// interior positions 1 <= p <= n-2 into disjoint cycles, in ascending
// order of each cycle's leader.
func cyclesOf(n, d int, rotate func(x, w uint) uint) [][]int {
	touched := make([]bool, n)
	touched[0] = true
	touched[n-1] = true
	var cycles [][]int
	for leader := 1; leader <= n-2; leader++ {
		if touched[leader] {
			continue
		}
		cycle := []int{leader}
		touched[leader] = true
		p := int(rotate(uint(leader), uint(d)))
		for p != leader {
			cycle = append(cycle, p)
			touched[p] = true
			p = int(rotate(uint(p), uint(d)))
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}
