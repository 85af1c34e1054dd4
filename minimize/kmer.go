// Copyright 2026, Kerby Shedden and the Minimizers contributors.

// Package minimize extracts window minimizers from packed nucleotide
// sequences.  Every exported algorithm implements the same sampling
// scheme: over the hashes of all k-mers, slide a window of w
// consecutive positions and report the position of the smallest hash
// (ties to the leftmost) whenever it changes.  The algorithms differ
// only in how they find the window minimum, which is the point: this
// package doubles as a benchmark of those strategies, and the test
// suite pins them all to the naive reference.
package minimize

import (
	"github.com/kshedden/minimizers/seq"
)

// KMer couples a minimizer's hash with the position of its defining
// k-mer.  The strand flag occupies bit 32 of the second word, above the
// position, so that comparing the two words in order compares (value,
// strand, position).  The algorithms in this package always record the
// forward strand; the bit is kept for canonical-hashing extensions.
type KMer struct {
	value     uint64
	posStrand uint64
}

// NewKMer packs a (hash, position, strand) triple.
func NewKMer(value uint64, pos uint32, strand bool) KMer {
	var s uint64
	if strand {
		s = 1
	}
	return KMer{value: value, posStrand: s<<32 | uint64(pos)}
}

// Value returns the hash of the minimizer's defining k-mer.
func (k KMer) Value() uint64 { return k.value }

// Position returns the 0-based start offset of the defining k-mer.
func (k KMer) Position() uint32 { return uint32(k.posStrand) }

// Strand reports whether the k-mer was hashed on the reverse strand.
func (k KMer) Strand() bool { return (k.posStrand>>32)&1 == 1 }

// Less orders KMers with the hash value most significant.
func (k KMer) Less(o KMer) bool {
	if k.value != o.value {
		return k.value < o.value
	}
	return k.posStrand < o.posStrand
}

// Equal reports whether two minimizer vectors are identical at every
// index.
func Equal(a, b []KMer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Args configures a single minimizer extraction.  The sequence is
// borrowed read-only and must outlive the call.  KMerLength must be in
// [1, 32] and WindowLength at least 1; out-of-range values are a
// programming error on the caller's side.
type Args struct {
	Seq          *seq.Sequence
	WindowLength int32
	KMerLength   int32
}

// tooShort reports whether the sequence admits no full window.  A
// sequence of exactly WindowLength+KMerLength-1 bases holds one.
func (a Args) tooShort() bool {
	return a.Seq.Len() < int(a.WindowLength)+int(a.KMerLength)-1
}
