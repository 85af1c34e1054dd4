// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

// splitWindowOverHashes implements the sliding-window minimum as a
// queue of two stacks with precomputed minima.  The window is split at
// a roll-over point: lhs holds suffix argmins of the older part, so the
// minimum of what remains of it is a single lookup, and rhs collects
// incoming positions with a running rhsMin.  When lhs runs dry the rhs
// contents are folded into a fresh lhs, right to left.  Each position
// is folded once, so the scan is O(n) without the pointer traffic of a
// deque.
//
// lhs folding uses <= and the cross-stack comparison uses a strict <,
// which together keep the leftmost of tied minima, matching the other
// samplers.
func splitWindowOverHashes(hashes []uint64, w int, dst []KMer) []KMer {
	lhs := make([]int32, w+1)
	rhs := make([]int32, 0, w+1)
	var lhsPos, lhsLen int
	rhsMin := -1

	for p := range hashes {
		rhs = append(rhs, int32(p))
		if rhsMin < 0 || hashes[p] < hashes[rhsMin] {
			rhsMin = p
		}
		if p < w-1 {
			continue
		}
		if lhsPos == lhsLen {
			lhsLen = len(rhs)
			run := rhs[lhsLen-1]
			for q := lhsLen - 1; q >= 0; q-- {
				if hashes[rhs[q]] <= hashes[run] {
					run = rhs[q]
				}
				lhs[q] = run
			}
			lhsPos = 0
			rhs = rhs[:0]
			rhsMin = -1
		}
		min := int(lhs[lhsPos])
		if rhsMin >= 0 && hashes[rhsMin] < hashes[min] {
			min = rhsMin
		}
		if len(dst) == 0 || dst[len(dst)-1].Position() != uint32(min) {
			dst = append(dst, NewKMer(hashes[min], uint32(min), false))
		}
		lhsPos++
	}
	return dst
}

// SplitWindowMinimize runs the two-stack window minimum over the Thomas
// Wang hash array.
func SplitWindowMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	hashes := ThomasWangHashes(args.Seq, args.KMerLength)
	dst := make([]KMer, 0, len(hashes))
	return splitWindowOverHashes(hashes, int(args.WindowLength), dst)
}
