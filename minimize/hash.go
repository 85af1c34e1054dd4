// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

import (
	"github.com/kshedden/minimizers/seq"
)

// calcMask returns the 2k-bit mask confining a packed k-mer integer.
// For k=32 the shift count reaches 64 and the expression wraps to all
// ones, which is the intended mask.
func calcMask(k int32) uint64 {
	return (uint64(1) << (uint(k) * 2)) - 1
}

// wangHash scrambles a packed k-mer integer with the seven-step Thomas
// Wang construction, applied under the mask at every widening step.
func wangHash(key, mask uint64) uint64 {
	key = ((^key) + (key << 21)) & mask
	key = key ^ (key >> 24)
	key = ((key + (key << 3)) + (key << 8)) & mask
	key = key ^ (key >> 14)
	key = ((key + (key << 2)) + (key << 4)) & mask
	key = key ^ (key >> 28)
	key = (key + (key << 31)) & mask
	return key
}

// ThomasWangHashes materializes the hash of every k-mer of s, in order.
// The result has length s.Len()-k+1, or is nil when the sequence is
// shorter than one k-mer.
func ThomasWangHashes(s *seq.Sequence, k int32) []uint64 {
	n := s.Len()
	if n < int(k) {
		return nil
	}
	mask := calcMask(k)
	dst := make([]uint64, 0, n-int(k)+1)
	var value uint64
	for i := 0; i < n; i++ {
		value = ((value << 2) | s.Code(i)) & mask
		if i >= int(k)-1 {
			dst = append(dst, wangHash(value, mask))
		}
	}
	return dst
}
