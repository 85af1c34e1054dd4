// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

// NaiveMinimize recomputes the minimum of every window from scratch,
// rebuilding each k-mer integer base by base.  It is the reference
// oracle the other algorithms are tested against and is far too slow
// for real use.
//
// The inner loop seeds minPos with the sequence length as a sentinel
// and compares with strict less-than, so the leftmost of tied minima
// wins, including at window position 0.
func NaiveMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	n := args.Seq.Len()
	k := int(args.KMerLength)
	w := int(args.WindowLength)
	m := n - k + 1
	mask := calcMask(args.KMerLength)

	dst := make([]KMer, 0, n)
	for i := w; i <= m; i++ {
		var minHash uint64
		minPos := n
		for j := i - w; j < i; j++ {
			var value uint64
			for t := 0; t < k; t++ {
				value = (value << 2) | args.Seq.Code(j+t)
			}
			h := wangHash(value&mask, mask)
			if minPos == n || h < minHash {
				minHash = h
				minPos = j
			}
		}
		if len(dst) == 0 || dst[len(dst)-1].Position() != uint32(minPos) {
			dst = append(dst, NewKMer(minHash, uint32(minPos), false))
		}
	}
	return dst
}

// naiveOverHashes is the same per-window rescan over a precomputed hash
// array; the dispatch layer uses it to pair the naive sampler with any
// hash family.
func naiveOverHashes(hashes []uint64, w int, dst []KMer) []KMer {
	m := len(hashes)
	for i := w; i <= m; i++ {
		var minHash uint64
		minPos := m
		for j := i - w; j < i; j++ {
			if minPos == m || hashes[j] < minHash {
				minHash = hashes[j]
				minPos = j
			}
		}
		if len(dst) == 0 || dst[len(dst)-1].Position() != uint32(minPos) {
			dst = append(dst, NewKMer(minHash, uint32(minPos), false))
		}
	}
	return dst
}
