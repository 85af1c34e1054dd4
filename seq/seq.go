// Copyright 2026, Kerby Shedden and the Minimizers contributors.

// Package seq provides a compact nucleotide sequence container.  Bases
// are stored as 2-bit codes packed 32 to a 64-bit word, with the code
// for position 0 in the least significant bit pair of word 0.
package seq

import (
	"fmt"

	"github.com/seehuhn/mt19937"
)

// coder maps ASCII bytes to 2-bit nucleotide codes.  A/a=0, C/c=1,
// G/g=2, T/t=3.  U folds to T, N and '-' fold to A, and the IUPAC
// ambiguity codes fold to one of their constituent bases.  255 marks a
// byte with no nucleotide interpretation.  Changing any entry changes
// every downstream hash, so the table is written out in full.
var coder = [256]byte{
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 0, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 0, 1, 1, 2, 255, 255, 2,
	3, 255, 255, 2, 255, 1, 0, 255,
	255, 255, 0, 1, 3, 3, 0, 3,
	255, 3, 255, 255, 255, 255, 255, 255,
	255, 0, 1, 1, 2, 255, 255, 2,
	3, 255, 255, 2, 255, 1, 0, 255,
	255, 255, 0, 1, 3, 3, 0, 3,
	255, 3, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255,
}

// decoder maps 2-bit codes back to canonical nucleotide letters.
var decoder = [4]byte{'A', 'C', 'G', 'T'}

// Encode returns the 2-bit code of an ASCII nucleotide byte, or 255 if
// the byte has no nucleotide interpretation.
func Encode(b byte) byte {
	return coder[b]
}

// Sequence is an immutable packed nucleotide sequence.
type Sequence struct {
	nBases int
	data   []uint64
}

// New decodes an ASCII nucleotide string into a packed sequence.  It
// returns an error on the first byte with no entry in the coder table.
func New(raw []byte) (*Sequence, error) {
	s := &Sequence{
		nBases: len(raw),
		data:   make([]uint64, (len(raw)+31)/32),
	}
	for i, b := range raw {
		c := coder[b]
		if c == 255 {
			return nil, fmt.Errorf("seq: invalid nucleotide %q at position %d", b, i)
		}
		s.data[i>>5] |= uint64(c) << ((uint(i) << 1) & 63)
	}
	return s, nil
}

// NewRandom returns a sequence of n bases whose packed words are drawn
// from an MT19937-64 stream seeded with seed.  It is intended for tests
// and benchmarks, where the exact stream is part of the contract.
func NewRandom(n int, seed int64) *Sequence {
	rng := mt19937.New()
	rng.Seed(seed)
	s := &Sequence{
		nBases: n,
		data:   make([]uint64, (n+31)/32),
	}
	for i := range s.data {
		s.data[i] = rng.Uint64()
	}
	return s
}

// Len returns the number of bases.
func (s *Sequence) Len() int {
	return s.nBases
}

// Code returns the 2-bit code of the base at position i.  The access is
// unchecked; the caller guarantees 0 <= i < Len().
func (s *Sequence) Code(i int) uint64 {
	return (s.data[i>>5] >> ((uint(i) << 1) & 63)) & 3
}

// ReverseCode returns the i-th base when reading the reverse-complement
// strand, i.e. the complement of the code at the mirror position.
func (s *Sequence) ReverseCode(i int) uint64 {
	return s.Code(s.nBases-1-i) ^ 3
}

// Decode expands the packed codes back to canonical ACGT letters.
func (s *Sequence) Decode() []byte {
	d := make([]byte, s.nBases)
	for i := range d {
		d[i] = decoder[s.Code(i)]
	}
	return d
}
