// Copyright 2026, Kerby Shedden and the Minimizers contributors.

// Package nthash implements the ntHash rolling hash for DNA k-mers over
// packed 2-bit sequences, with the per-base seeds and the interleaved
// rotation of the published function.  A from-scratch form, an O(1)
// rolling form, and a rollinghash.Hash64 adapter for raw ASCII input
// are provided; all three agree bit for bit.
package nthash

import (
	"github.com/kshedden/minimizers/seq"
)

// Per-base 64-bit seeds of the published ntHash function.
const (
	SeedA = 0x3c8bfbb395c60470
	SeedC = 0x3193c18562a02b4c
	SeedG = 0x20323ed082572324
	SeedT = 0x2d2a04e675310c18
)

// seeds is indexed by 2-bit base code.
var seeds = [4]uint64{SeedA, SeedC, SeedG, SeedT}

// MaxK is the largest supported k-mer length.
const MaxK = 32

// srol rotates x left by one bit inside each half of a 33/31-bit
// interleaved word: bit 32 wraps to bit 0 and bit 63 wraps to bit 33.
// The mask and the two displaced bits are load-bearing; the rolling
// recurrence only cancels spent seeds if this exact permutation is
// used.
func srol(x uint64) uint64 {
	m := ((x & 0x8000000000000000) >> 30) | ((x & 0x100000000) >> 32)
	return ((x << 1) & 0xFFFFFFFDFFFFFFFF) | m
}

// srolN composes n single-step rotations.  The closed form below only
// holds for rotation counts under 32, so larger counts are first
// reduced by stepping.  Only the seed table construction uses srolN;
// the hot paths look the result up in rolled.
func srolN(x uint64, n uint) uint64 {
	for ; n >= 32; n-- {
		x = srol(x)
	}
	if n == 0 {
		return x
	}
	v := (x << n) | (x >> (64 - n))
	y := (v ^ (v >> 33)) & (^uint64(0) >> (64 - n))
	return v ^ (y | (y << 33))
}

// rolled[r][b] is seed b rotated r times.  The rolling step for k-mer
// length k removes the outgoing base with rolled[k][out].
var rolled [MaxK + 1][4]uint64

func init() {
	for r := 0; r <= MaxK; r++ {
		for b, s := range seeds {
			rolled[r][b] = srolN(s, uint(r))
		}
	}
}

// Sum computes the hash of the k-mer starting at position i from
// scratch.  The caller guarantees i+k <= s.Len() and 1 <= k <= MaxK.
func Sum(s *seq.Sequence, i, k int) uint64 {
	var h uint64
	for j := 0; j < k; j++ {
		h = srol(h) ^ seeds[s.Code(i+j)]
	}
	return h
}

// Roll advances the hash of a k-mer window by one base: out is the code
// leaving on the left, in the code entering on the right.
func Roll(prev uint64, out, in uint64, k int) uint64 {
	return srol(prev) ^ rolled[k][out] ^ seeds[in]
}

// Hashes returns the ntHash of every k-mer in s, in order.  The result
// has length s.Len()-k+1, or is nil when the sequence is shorter than
// one k-mer.  The first hash is computed from scratch and the rest by
// rolling.
func Hashes(s *seq.Sequence, k int) []uint64 {
	n := s.Len()
	if n < k {
		return nil
	}
	dst := make([]uint64, 0, n-k+1)
	h := Sum(s, 0, k)
	dst = append(dst, h)
	for i := k; i < n; i++ {
		h = Roll(h, s.Code(i-k), s.Code(i), k)
		dst = append(dst, h)
	}
	return dst
}
