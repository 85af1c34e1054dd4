// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package minimize

import (
	"sort"
	"testing"

	"github.com/kshedden/minimizers/seq"
)

// The deterministic scenarios every algorithm is checked on.  The
// third is two windows long and the fourth is one base short of the
// first full window.
var scenarios = []struct {
	n    int
	seed int64
	k, w int32
}{
	{16384, 42, 15, 5},
	{1024, 42, 21, 11},
	{20, 1, 15, 5},
	{18, 1, 15, 5},
}

func scenarioArgs(i int) Args {
	sc := scenarios[i]
	return Args{
		Seq:          seq.NewRandom(sc.n, sc.seed),
		WindowLength: sc.w,
		KMerLength:   sc.k,
	}
}

// sortedNames returns the registry keys in stable order, optionally
// filtered by hash family.
func sortedNames(ntHash bool) []string {
	var names []string
	for name := range Algorithms() {
		if (len(name) > 7 && name[:7] == "nthash-") == ntHash {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func TestKMerPacking(t *testing.T) {

	km := NewKMer(0xdeadbeef12345678, 12345, false)
	if km.Value() != 0xdeadbeef12345678 || km.Position() != 12345 || km.Strand() {
		t.Errorf("round trip failed: %#x %d %v", km.Value(), km.Position(), km.Strand())
	}

	rc := NewKMer(0xdeadbeef12345678, 12345, true)
	if !rc.Strand() || rc.Position() != 12345 {
		t.Errorf("strand bit clobbered the position: %d %v", rc.Position(), rc.Strand())
	}

	// Hash value is most significant in the ordering.
	a := NewKMer(1, 100, false)
	b := NewKMer(2, 1, false)
	if !a.Less(b) || b.Less(a) {
		t.Error("ordering is not value-first")
	}
	c := NewKMer(1, 101, false)
	if !a.Less(c) || c.Less(a) {
		t.Error("ordering ignores position")
	}
}

func TestReduceTieBreak(t *testing.T) {

	window := []uint64{5, 1, 7, 1, 9, 1}
	for name, reduce := range map[string]ReduceFunc{
		"scalar":     reduceScalar,
		"predicated": reducePredicated,
		"unrolled":   reducers[len(window)],
	} {
		if got := reduce(window); got != 1 {
			t.Errorf("%s: reduce = %d, want leftmost tie 1", name, got)
		}
	}

	single := []uint64{42}
	for name, reduce := range map[string]ReduceFunc{
		"scalar":     reduceScalar,
		"predicated": reducePredicated,
		"unrolled":   reducers[1],
	} {
		if got := reduce(single); got != 0 {
			t.Errorf("%s: reduce of one element = %d", name, got)
		}
	}
}

func TestReferenceAgreement(t *testing.T) {

	algos := Algorithms()
	for i := range scenarios {
		args := scenarioArgs(i)
		want := NaiveMinimize(args)
		for _, name := range sortedNames(false) {
			if got := algos[name](args); !Equal(got, want) {
				t.Errorf("scenario %d: %s disagrees with naive (%d vs %d entries)",
					i, name, len(got), len(want))
			}
		}
	}
}

func TestNtHashFamilyAgreement(t *testing.T) {

	algos := Algorithms()
	for i := range scenarios {
		args := scenarioArgs(i)
		want := NtHashArgMinMinimize(args)
		for _, name := range sortedNames(true) {
			if got := algos[name](args); !Equal(got, want) {
				t.Errorf("scenario %d: %s disagrees with nthash-argmin", i, name)
			}
		}

		// Every dispatched sampler agrees within the ntHash family.
		for _, s := range []Sampler{Naive, Deque, InplaceDeque, Ring, ArgMin, ArgMinRecovery, SplitWindow} {
			if got := Minimize(args, NtHash, s); !Equal(got, want) {
				t.Errorf("scenario %d: Minimize(NtHash, %d) disagrees with nthash-argmin", i, s)
			}
		}
	}
}

func TestDispatchAgreesWithDirect(t *testing.T) {

	for i := range scenarios {
		args := scenarioArgs(i)
		want := NaiveMinimize(args)
		for _, s := range []Sampler{Naive, Deque, InplaceDeque, Ring, ArgMin, ArgMinRecovery, SplitWindow} {
			if got := Minimize(args, ThomasWang, s); !Equal(got, want) {
				t.Errorf("scenario %d: Minimize(ThomasWang, %d) disagrees with naive", i, s)
			}
		}
	}
}

func TestDeduplication(t *testing.T) {

	algos := Algorithms()
	for i := range scenarios {
		args := scenarioArgs(i)
		for name, fn := range algos {
			dst := fn(args)
			for j := 1; j < len(dst); j++ {
				if dst[j].Position() == dst[j-1].Position() {
					t.Fatalf("scenario %d: %s emitted position %d twice in a row",
						i, name, dst[j].Position())
				}
			}
		}
	}
}

func TestDensityLowerBound(t *testing.T) {

	for _, tc := range []struct {
		scenario int
		min      int
	}{
		{0, 16384/5 - 10},
		{1, 1024/11 - 5},
	} {
		dst := NaiveMinimize(scenarioArgs(tc.scenario))
		if len(dst) < tc.min {
			t.Errorf("scenario %d: %d minimizers, want at least %d",
				tc.scenario, len(dst), tc.min)
		}
	}
}

func TestShortSequenceBoundary(t *testing.T) {

	const k, w = 15, 5
	algos := Algorithms()

	// One base short of the first full window: empty for everyone.
	empty := Args{Seq: seq.NewRandom(w+k-2, 1), WindowLength: w, KMerLength: k}
	for name, fn := range algos {
		if dst := fn(empty); len(dst) != 0 {
			t.Errorf("%s returned %d entries on a %d-base sequence", name, len(dst), w+k-2)
		}
	}

	// Exactly one window: exactly one entry, the same one everywhere.
	one := Args{Seq: seq.NewRandom(w+k-1, 1), WindowLength: w, KMerLength: k}
	want := NaiveMinimize(one)
	if len(want) != 1 {
		t.Fatalf("naive returned %d entries on a one-window sequence", len(want))
	}
	for _, name := range sortedNames(false) {
		if got := algos[name](one); !Equal(got, want) {
			t.Errorf("%s disagrees with naive on a one-window sequence", name)
		}
	}
	for _, name := range sortedNames(true) {
		if got := algos[name](one); len(got) != 1 {
			t.Errorf("%s returned %d entries on a one-window sequence", name, len(got))
		}
	}
}

func TestTwoWindows(t *testing.T) {

	// n = w+k gives two windows, so at most two entries and at least
	// one.
	args := scenarioArgs(2)
	dst := NaiveMinimize(args)
	if len(dst) < 1 || len(dst) > 2 {
		t.Errorf("two-window sequence produced %d entries", len(dst))
	}
}

func TestWindowOne(t *testing.T) {

	// With w = 1 every k-mer is its own minimizer.
	args := Args{Seq: seq.NewRandom(100, 9), WindowLength: 1, KMerLength: 7}
	m := args.Seq.Len() - int(args.KMerLength) + 1

	want := NaiveMinimize(args)
	if len(want) != m {
		t.Fatalf("w=1: naive emitted %d of %d k-mers", len(want), m)
	}
	for name, fn := range Algorithms() {
		if got := fn(args); len(got) != m {
			t.Errorf("w=1: %s emitted %d of %d k-mers", name, len(got), m)
		}
	}
}

func TestStress(t *testing.T) {

	if testing.Short() {
		t.Skip("long sequence")
	}

	args := Args{
		Seq:          seq.NewRandom(1000000, 42),
		WindowLength: 11,
		KMerLength:   21,
	}

	algos := Algorithms()
	want := NaiveMinimize(args)
	for _, name := range sortedNames(false) {
		if got := algos[name](args); !Equal(got, want) {
			t.Errorf("%s disagrees with naive on the long sequence", name)
		}
	}

	ntWant := NtHashArgMinMinimize(args)
	for _, name := range sortedNames(true) {
		if got := algos[name](args); !Equal(got, ntWant) {
			t.Errorf("%s disagrees with nthash-argmin on the long sequence", name)
		}
	}
}
