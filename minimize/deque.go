// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

// DequeMinimize is the classical O(n) sliding-window minimum: a deque
// of (hash, position) entries with strictly increasing hashes, oldest
// at the front.  Hashing is fused into the scan, so the k-mer stream is
// consumed once and no hash array is materialized.
func DequeMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	n := args.Seq.Len()
	k := int(args.KMerLength)
	w := int(args.WindowLength)
	mask := calcMask(args.KMerLength)

	dst := make([]KMer, 0, n)
	window := make([]KMer, 0, w+1)

	var value uint64
	for i := 0; i < n; i++ {
		value = ((value << 2) | args.Seq.Code(i)) & mask
		if i < k-1 {
			continue
		}
		pos := i - k + 1
		if pos >= w && window[0].Position() <= uint32(pos-w) {
			window = window[1:]
		}
		h := wangHash(value, mask)
		for len(window) > 0 && window[len(window)-1].Value() > h {
			window = window[:len(window)-1]
		}
		window = append(window, NewKMer(h, uint32(pos), false))
		if i >= w+k-2 && (len(dst) == 0 || dst[len(dst)-1].Position() != window[0].Position()) {
			dst = append(dst, window[0])
		}
	}
	return dst
}

// dequeOverHashes runs the same monotone deque over a precomputed hash
// array.
func dequeOverHashes(hashes []uint64, w int, dst []KMer) []KMer {
	window := make([]KMer, 0, w+1)
	for pos, h := range hashes {
		if pos >= w && window[0].Position() <= uint32(pos-w) {
			window = window[1:]
		}
		for len(window) > 0 && window[len(window)-1].Value() > h {
			window = window[:len(window)-1]
		}
		window = append(window, NewKMer(h, uint32(pos), false))
		if pos >= w-1 && (len(dst) == 0 || dst[len(dst)-1].Position() != window[0].Position()) {
			dst = append(dst, window[0])
		}
	}
	return dst
}

// InplaceMinimize is DequeMinimize with the deque stored inside the
// output slice: emitted entries occupy [0, idx], the live deque
// occupies [frontIdx, backIdx), and idx < frontIdx <= backIdx holds
// throughout.  When an emission would land on the deque front, the
// deque is shifted right one slot first.  The shifts make the worst
// case O(n*w), but they are rare enough in practice that the scan stays
// effectively linear while allocating a single buffer.
func InplaceMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	n := args.Seq.Len()
	k := int(args.KMerLength)
	w := int(args.WindowLength)
	m := n - k + 1
	mask := calcMask(args.KMerLength)

	// One slot per k-mer plus the initial deque offset and one shift
	// slot; backIdx never reaches past this.
	dst := make([]KMer, m+2)
	idx := -1
	frontIdx, backIdx := 1, 1

	var value uint64
	for i := 0; i < n; i++ {
		value = ((value << 2) | args.Seq.Code(i)) & mask
		if i < k-1 {
			continue
		}
		pos := i - k + 1
		if pos >= w && dst[frontIdx].Position() <= uint32(pos-w) {
			frontIdx++
		}
		h := wangHash(value, mask)
		for ; frontIdx < backIdx && dst[backIdx-1].Value() > h; backIdx-- {
		}
		dst[backIdx] = NewKMer(h, uint32(pos), false)
		backIdx++
		if i >= w+k-2 && (idx < 0 || dst[idx].Position() != dst[frontIdx].Position()) {
			if idx+1 == frontIdx {
				copy(dst[frontIdx+1:backIdx+1], dst[frontIdx:backIdx])
				frontIdx++
				backIdx++
			}
			idx++
			dst[idx] = dst[frontIdx]
		}
	}
	return dst[:idx+1]
}

// inplaceOverHashes is InplaceMinimize over a precomputed hash array.
func inplaceOverHashes(hashes []uint64, w int) []KMer {
	m := len(hashes)
	dst := make([]KMer, m+2)
	idx := -1
	frontIdx, backIdx := 1, 1

	for pos, h := range hashes {
		if pos >= w && dst[frontIdx].Position() <= uint32(pos-w) {
			frontIdx++
		}
		for ; frontIdx < backIdx && dst[backIdx-1].Value() > h; backIdx-- {
		}
		dst[backIdx] = NewKMer(h, uint32(pos), false)
		backIdx++
		if pos >= w-1 && (idx < 0 || dst[idx].Position() != dst[frontIdx].Position()) {
			if idx+1 == frontIdx {
				copy(dst[frontIdx+1:backIdx+1], dst[frontIdx:backIdx])
				frontIdx++
				backIdx++
			}
			idx++
			dst[idx] = dst[frontIdx]
		}
	}
	return dst[:idx+1]
}
