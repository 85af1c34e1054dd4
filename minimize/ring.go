// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

// ring is a fixed-capacity deque of KMers backed by one allocation.
// Capacity must exceed the largest number of simultaneously live
// entries by one, since front == back doubles as the empty state.
type ring struct {
	frontIdx int
	backIdx  int
	data     []KMer
}

func newRing(n int) *ring {
	return &ring{data: make([]KMer, n)}
}

func (r *ring) front() KMer { return r.data[r.frontIdx] }

func (r *ring) back() KMer {
	return r.data[(len(r.data)+r.backIdx-1)%len(r.data)]
}

func (r *ring) empty() bool { return r.frontIdx == r.backIdx }

func (r *ring) push(k KMer) {
	r.data[r.backIdx] = k
	r.backIdx = (r.backIdx + 1) % len(r.data)
}

func (r *ring) popBack() {
	r.backIdx = (len(r.data) + r.backIdx - 1) % len(r.data)
}

func (r *ring) popFront() {
	r.frontIdx = (r.frontIdx + 1) % len(r.data)
}

// RingMinimize is DequeMinimize with the deque held in a ring buffer,
// trading the slice deque's occasional reallocation and front-slicing
// for modular index arithmetic in a single fixed allocation.
func RingMinimize(args Args) []KMer {
	if args.tooShort() {
		return nil
	}
	n := args.Seq.Len()
	k := int(args.KMerLength)
	w := int(args.WindowLength)
	mask := calcMask(args.KMerLength)

	dst := make([]KMer, 0, n)
	window := newRing(w + 1)

	var value uint64
	for i := 0; i < n; i++ {
		value = ((value << 2) | args.Seq.Code(i)) & mask
		if i < k-1 {
			continue
		}
		pos := i - k + 1
		if pos >= w && window.front().Position() <= uint32(pos-w) {
			window.popFront()
		}
		h := wangHash(value, mask)
		for !window.empty() && window.back().Value() > h {
			window.popBack()
		}
		window.push(NewKMer(h, uint32(pos), false))
		if i >= w+k-2 && (len(dst) == 0 || dst[len(dst)-1].Position() != window.front().Position()) {
			dst = append(dst, window.front())
		}
	}
	return dst
}

// ringOverHashes is RingMinimize over a precomputed hash array.
func ringOverHashes(hashes []uint64, w int, dst []KMer) []KMer {
	window := newRing(w + 1)
	for pos, h := range hashes {
		if pos >= w && window.front().Position() <= uint32(pos-w) {
			window.popFront()
		}
		for !window.empty() && window.back().Value() > h {
			window.popBack()
		}
		window.push(NewKMer(h, uint32(pos), false))
		if pos >= w-1 && (len(dst) == 0 || dst[len(dst)-1].Position() != window.front().Position()) {
			dst = append(dst, window.front())
		}
	}
	return dst
}
