// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package nthash

import (
	"testing"

	"github.com/kshedden/minimizers/seq"
)

// srolN must equal n applications of the single-step rotation; the
// seed table is built from it.
func TestSrolComposition(t *testing.T) {

	for _, x := range []uint64{SeedA, SeedC, SeedG, SeedT} {
		v := x
		for n := 0; n <= MaxK; n++ {
			if got := srolN(x, uint(n)); got != v {
				t.Fatalf("srolN(%#x, %d) = %#x, want %#x", x, n, got, v)
			}
			v = srol(v)
		}
	}
}

func TestRollingIdentity(t *testing.T) {

	s := seq.NewRandom(1000, 42)
	for _, k := range []int{1, 2, 15, 21, 31, 32} {
		hashes := Hashes(s, k)
		if len(hashes) != s.Len()-k+1 {
			t.Fatalf("k=%d: len = %d, want %d", k, len(hashes), s.Len()-k+1)
		}
		for i := range hashes {
			if want := Sum(s, i, k); hashes[i] != want {
				t.Fatalf("k=%d: rolled hash at %d = %#x, from scratch %#x",
					k, i, hashes[i], want)
			}
		}
	}
}

func TestRollingIdentityLong(t *testing.T) {

	if testing.Short() {
		t.Skip("long sequence")
	}

	const n = 1000000
	const k = 21
	s := seq.NewRandom(n, 42)
	hashes := Hashes(s, k)

	for _, i := range []int{0, 1, k, 2 * k, n / 2, n - k} {
		if want := Sum(s, i, k); hashes[i] != want {
			t.Errorf("rolled hash at %d = %#x, from scratch %#x", i, hashes[i], want)
		}
	}
}

func TestShortSequence(t *testing.T) {

	s := seq.NewRandom(10, 1)
	if h := Hashes(s, 11); h != nil {
		t.Errorf("Hashes on short sequence = %v, want nil", h)
	}
	if h := Hashes(s, 10); len(h) != 1 {
		t.Errorf("Hashes at exact length: len = %d, want 1", len(h))
	}
}

// The ASCII adapter must agree with the packed-sequence bulk form
// position by position.
func TestAdapterMatchesBulk(t *testing.T) {

	s := seq.NewRandom(500, 3)
	const k = 19

	bulk := Hashes(s, k)
	ascii := s.Decode()

	h := New()
	if _, err := h.Write(ascii[:k]); err != nil {
		t.Fatal(err)
	}
	if h.Sum64() != bulk[0] {
		t.Fatalf("initial window: Sum64() = %#x, want %#x", h.Sum64(), bulk[0])
	}

	for i := k; i < len(ascii); i++ {
		h.Roll(ascii[i])
		if h.Sum64() != bulk[i-k+1] {
			t.Fatalf("after rolling %d bytes: Sum64() = %#x, want %#x",
				i-k+1, h.Sum64(), bulk[i-k+1])
		}
	}
}

func TestAdapterReset(t *testing.T) {

	h := New()
	if _, err := h.Write([]byte("ACGTACGTACGT")); err != nil {
		t.Fatal(err)
	}
	before := h.Sum64()

	h.Reset()
	if h.Sum64() != SeedA {
		t.Errorf("after Reset: Sum64() = %#x, want seed A %#x", h.Sum64(), uint64(SeedA))
	}

	if _, err := h.Write([]byte("ACGTACGTACGT")); err != nil {
		t.Fatal(err)
	}
	if h.Sum64() != before {
		t.Errorf("rewritten window: Sum64() = %#x, want %#x", h.Sum64(), before)
	}
}

func TestAdapterSum(t *testing.T) {

	h := New()
	if _, err := h.Write([]byte("ACGTACG")); err != nil {
		t.Fatal(err)
	}

	v := h.Sum64()
	b := h.Sum(nil)
	if len(b) != Size {
		t.Fatalf("Sum length = %d, want %d", len(b), Size)
	}
	var got uint64
	for _, x := range b {
		got = got<<8 | uint64(x)
	}
	if got != v {
		t.Errorf("Sum bytes = %#x, Sum64 = %#x", got, v)
	}
}
