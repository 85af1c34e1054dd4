// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package nthash

import (
	"github.com/chmduquesne/rollinghash"

	"github.com/kshedden/minimizers/seq"
)

// Size of the checksum in bytes.
const Size = 8

var _ rollinghash.Hash64 = (*Hash)(nil)

// Hash is a rolling ntHash over raw ASCII nucleotides, satisfying
// rollinghash.Hash64 so it can stand in wherever a rolling hash is
// consumed.  The window holds 2-bit codes in a circular buffer; bytes
// with no nucleotide interpretation hash as A.  Window lengths above
// MaxK are not supported.
type Hash struct {
	value  uint64
	window []byte
	oldest int
}

// New returns a rolling ntHash with a one-byte window.  Write
// establishes the real window size.
func New() *Hash {
	h := &Hash{window: make([]byte, 0, rollinghash.DefaultWindowCap)}
	h.Reset()
	return h
}

// Reset restores the initial one-byte window holding an A.
func (d *Hash) Reset() {
	d.window = d.window[:0]
	d.window = append(d.window, 0)
	d.value = seeds[0]
	d.oldest = 0
}

// Size is 8 bytes.
func (d *Hash) Size() int { return Size }

// BlockSize is 1 byte.
func (d *Hash) BlockSize() int { return 1 }

// Write (re)initializes the rolling window with the input byte slice
// and computes its hash from scratch.  It never returns an error.
func (d *Hash) Write(data []byte) (int, error) {
	l := len(data)
	if l == 0 {
		l = 1
	}
	if cap(d.window) >= l {
		d.window = d.window[:l]
		for i := range d.window {
			d.window[i] = 0
		}
	} else {
		d.window = make([]byte, l)
	}
	for i, b := range data {
		if c := seq.Encode(b); c != 255 {
			d.window[i] = c
		}
	}
	d.value = 0
	for _, c := range d.window {
		d.value = srol(d.value) ^ seeds[c]
	}
	d.oldest = 0
	return len(data), nil
}

// Roll updates the hash for the byte entering the window.  A window
// MUST have been initialized with Write first.
func (d *Hash) Roll(b byte) {
	in := seq.Encode(b)
	if in == 255 {
		in = 0
	}
	out := d.window[d.oldest]
	d.window[d.oldest] = in
	d.oldest++
	if d.oldest >= len(d.window) {
		d.oldest = 0
	}
	d.value = srol(d.value) ^ rolled[len(d.window)][out] ^ seeds[in]
}

// Sum64 returns the hash of the current window.
func (d *Hash) Sum64() uint64 {
	return d.value
}

// Sum returns the hash as a byte slice, big endian.
func (d *Hash) Sum(b []byte) []byte {
	v := d.Sum64()
	return append(b,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
