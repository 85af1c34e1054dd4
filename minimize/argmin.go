// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

import (
	"github.com/kshedden/minimizers/nthash"
)

// MaxWindow bounds the window length accepted by the fixed-width
// reducer table.
const MaxWindow = 31

// ReduceFunc returns the index of the smallest value in window.  Among
// tied minima it MUST return the smallest index; every reducer in this
// package honors that, and any vectorized replacement has to as well.
type ReduceFunc func(window []uint64) int

// reduceScalar is the plain linear scan.
func reduceScalar(window []uint64) int {
	min := 0
	for i := 1; i < len(window); i++ {
		if window[i] < window[min] {
			min = i
		}
	}
	return min
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// reducePredicated replaces the branch with arithmetic selection, which
// the compiler lowers to conditional moves on hash-random input.
func reducePredicated(window []uint64) int {
	minIdx := 0
	minVal := window[0]
	for i := 1; i < len(window); i++ {
		c := b2i(window[i] < minVal)
		minIdx = c*i + (1-c)*minIdx
		minVal = uint64(c)*window[i] + uint64(1-c)*minVal
	}
	return minIdx
}

// fixedReducer returns a reducer whose trip count is the constant w, so
// the loop bound is known at the closure's build time and bounds checks
// hoist out of the scan.
func fixedReducer(w int) ReduceFunc {
	return func(window []uint64) int {
		window = window[:w]
		min := 0
		for i := 1; i < w; i++ {
			if window[i] < window[min] {
				min = i
			}
		}
		return min
	}
}

// reducers is the jump table of fixed-width reducers, indexed by window
// length up to MaxWindow.
var reducers = func() (r [MaxWindow + 1]ReduceFunc) {
	for w := 1; w <= MaxWindow; w++ {
		r[w] = fixedReducer(w)
	}
	return r
}()

// argMinOverHashes recomputes the window argmin from scratch at every
// step using the supplied reducer.  O(n*w), but the inner loop is flat
// and branch-predictable.
func argMinOverHashes(hashes []uint64, w int, reduce ReduceFunc, dst []KMer) []KMer {
	for i := w; i <= len(hashes); i++ {
		p := i - w + reduce(hashes[i-w:i])
		if len(dst) == 0 || dst[len(dst)-1].Position() != uint32(p) {
			dst = append(dst, NewKMer(hashes[p], uint32(p), false))
		}
	}
	return dst
}

// argMinRecoveryOverHashes keeps the argmin across steps.  While the
// current minimum stays inside the window only the incoming hash is
// compared, with predicated selection; a full rescan runs only when the
// minimum expires, which happens about once per w steps on random
// hashes.
func argMinRecoveryOverHashes(hashes []uint64, w int, reduce ReduceFunc, dst []KMer) []KMer {
	minPos := reduce(hashes[:w])
	dst = append(dst, NewKMer(hashes[minPos], uint32(minPos), false))
	for i := w + 1; i <= len(hashes); i++ {
		j := i - 1
		if minPos >= i-w {
			c := b2i(hashes[j] < hashes[minPos])
			minPos = c*j + (1-c)*minPos
		} else {
			minPos = i - w + reduce(hashes[i-w:i])
		}
		if dst[len(dst)-1].Position() != uint32(minPos) {
			dst = append(dst, NewKMer(hashes[minPos], uint32(minPos), false))
		}
	}
	return dst
}

// ArgMinMinimize materializes the Thomas Wang hash array and rescans
// every window with the scalar reducer.
func ArgMinMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	hashes := ThomasWangHashes(args.Seq, args.KMerLength)
	dst := make([]KMer, 0, len(hashes))
	return argMinOverHashes(hashes, int(args.WindowLength), reduceScalar, dst)
}

// ArgMinUnrolledMinimize is ArgMinMinimize with the fixed-width reducer
// table; window lengths above MaxWindow fall back to the scalar scan.
func ArgMinUnrolledMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	w := int(args.WindowLength)
	reduce := reduceScalar
	if w <= MaxWindow {
		reduce = reducers[w]
	}
	hashes := ThomasWangHashes(args.Seq, args.KMerLength)
	dst := make([]KMer, 0, len(hashes))
	return argMinOverHashes(hashes, w, reduce, dst)
}

// ArgMinRecoveryMinimize is the incremental argmin over the Thomas Wang
// hash array.
func ArgMinRecoveryMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	hashes := ThomasWangHashes(args.Seq, args.KMerLength)
	dst := make([]KMer, 0, len(hashes))
	return argMinRecoveryOverHashes(hashes, int(args.WindowLength), reduceScalar, dst)
}

// NtHashArgMinMinimize is ArgMinMinimize over the rolling ntHash array.
func NtHashArgMinMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	hashes := nthash.Hashes(args.Seq, int(args.KMerLength))
	dst := make([]KMer, 0, len(hashes))
	return argMinOverHashes(hashes, int(args.WindowLength), reduceScalar, dst)
}

// NtHashArgMinRecoveryMinimize is ArgMinRecoveryMinimize over the
// rolling ntHash array.
func NtHashArgMinRecoveryMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	hashes := nthash.Hashes(args.Seq, int(args.KMerLength))
	dst := make([]KMer, 0, len(hashes))
	return argMinRecoveryOverHashes(hashes, int(args.WindowLength), reduceScalar, dst)
}
