package splitfft

// bitReverseSplit applies the complete bit-reversal permutation over a
// pair of split real/imaginary arrays of length 2^depth, using the
// precomputed swap pairs for that depth. Every productive swap is
// applied exactly once; fixed points are skipped entirely because they
// are never recorded in the table.
func bitReverseSplit(r, im []float64, depth int) {
	for _, p := range tables.swapPairs[depth] {
		r[p.I], r[p.J] = r[p.J], r[p.I]
		im[p.I], im[p.J] = im[p.J], im[p.I]
	}
}

// applyCycles permutes b in place according to a disjoint-cycle
// decomposition, walking each cycle backward from its last entry to its
// leader and writing each visited slot with the value one step behind
// it, with one scalar of scratch per cycle.
func applyCycles(b []float64, cycles [][]int) {
	for _, cycle := range cycles {
		last := len(cycle) - 1
		saved := b[cycle[last]]
		for i := last; i > 0; i-- {
			b[cycle[i]] = b[cycle[i-1]]
		}
		b[cycle[0]] = saved
	}
}

// unzip de-interleaves b (length 2^depth) in place: even-indexed
// elements move to the first half, odd-indexed elements to the second.
func unzip(b []float64, depth int) {
	applyCycles(b, tables.unzipCycles[depth])
}

// zip is the inverse of unzip: it re-interleaves a split buffer back
// into alternating even/odd order.
func zip(b []float64, depth int) {
	applyCycles(b, tables.zipCycles[depth])
}
