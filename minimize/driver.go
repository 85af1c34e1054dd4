// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

import (
	"github.com/kshedden/minimizers/nthash"
)

// Hasher selects the hash family applied to the k-mer stream.
type Hasher int

const (
	// ThomasWang hashes each packed k-mer integer independently.
	ThomasWang Hasher = iota

	// NtHash rolls the published ntHash across the sequence.
	NtHash
)

// Sampler selects the window-minimum strategy.
type Sampler int

const (
	Naive Sampler = iota
	Deque
	InplaceDeque
	Ring
	ArgMin
	ArgMinRecovery
	SplitWindow
)

// Minimize dispatches a (hasher, sampler) pair over one sequence.  The
// short-sequence guard is applied once here, the hash array is
// materialized once, and every sampler consumes it through the same
// window semantics, so any two pairs agree within a hash family.
// KMerLength is clamped to [1, 32] and WindowLength to at least 1
// rather than running the hot loops on values they are not defined
// for.
func Minimize(args Args, h Hasher, s Sampler) []KMer {
	if args.KMerLength < 1 {
		args.KMerLength = 1
	} else if args.KMerLength > 32 {
		args.KMerLength = 32
	}
	if args.WindowLength < 1 {
		args.WindowLength = 1
	}
	if args.tooShort() {
		return nil
	}

	var hashes []uint64
	switch h {
	case NtHash:
		hashes = nthash.Hashes(args.Seq, int(args.KMerLength))
	default:
		hashes = ThomasWangHashes(args.Seq, args.KMerLength)
	}

	w := int(args.WindowLength)
	dst := make([]KMer, 0, len(hashes))
	switch s {
	case Naive:
		return naiveOverHashes(hashes, w, dst)
	case Deque:
		return dequeOverHashes(hashes, w, dst)
	case InplaceDeque:
		return inplaceOverHashes(hashes, w)
	case Ring:
		return ringOverHashes(hashes, w, dst)
	case ArgMinRecovery:
		return argMinRecoveryOverHashes(hashes, w, reduceScalar, dst)
	case SplitWindow:
		return splitWindowOverHashes(hashes, w, dst)
	default:
		return argMinOverHashes(hashes, w, reduceScalar, dst)
	}
}

// Algorithms returns the registry of named end-to-end extraction
// functions.  The benchmark driver and the cross-algorithm tests
// iterate over this map; names sort into hash families by prefix.
func Algorithms() map[string]func(Args) []KMer {
	return map[string]func(Args) []KMer{
		"naive":                  NaiveMinimize,
		"deque":                  DequeMinimize,
		"inplace-deque":          InplaceMinimize,
		"ring":                   RingMinimize,
		"argmin":                 ArgMinMinimize,
		"argmin-unrolled":        ArgMinUnrolledMinimize,
		"argmin-recovery":        ArgMinRecoveryMinimize,
		"split-window":           SplitWindowMinimize,
		"nthash-argmin":          NtHashArgMinMinimize,
		"nthash-argmin-recovery": NtHashArgMinRecoveryMinimize,
	}
}
