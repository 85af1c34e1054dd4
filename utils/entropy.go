// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package utils

// CountDinuc returns the number of distinct dinucleotides in seq, an
// ASCII nucleotide string.  Bases outside ACGT share one bucket.  wk is
// workspace with at least 25 entries.  Low counts flag repetitive
// subsequences that hash-based sketches of a sequence collection would
// be better off skipping.
func CountDinuc(seq []byte, wk []int) int {

	for i := range wk {
		wk[i] = 0
	}

	var last int
	var n int
	for i, x := range seq {

		var v int
		switch x {
		case 'A':
			v = 0
		case 'C':
			v = 1
		case 'G':
			v = 2
		case 'T':
			v = 3
		default:
			v = 4
		}

		if i > 0 {
			k := 5*last + v
			if wk[k] == 0 {
				n++
			}
			wk[k]++
		}
		last = v
	}

	return n
}
