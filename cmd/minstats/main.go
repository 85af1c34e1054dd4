// Copyright 2026, Kerby Shedden and the Minimizers contributors.

// minstats reports summary statistics of the minimizers selected from
// a sequence file (one sequence per line, snappy handled by suffix):
//
//   - the minimizer count and its density among all k-mers;
//   - an estimate of the number of distinct k-mer hashes in the
//     sequence, from a Bloom filter fed by the rolling hash;
//   - an estimate of the number of distinct minimizer hashes;
//   - the fraction of bases covered by at least one selected k-mer;
//   - the mean number of distinct dinucleotides per selected k-mer.
//
// The distinct-hash estimates are sketches, not exact counts: two
// sequences can be compared cheaply, at Bloom filter accuracy.

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"github.com/chmduquesne/rollinghash"
	"github.com/golang-collections/go-datastructures/bitarray"
	"github.com/willf/bloom"

	"github.com/kshedden/minimizers/minimize"
	"github.com/kshedden/minimizers/nthash"
	"github.com/kshedden/minimizers/seq"
	"github.com/kshedden/minimizers/utils"
)

var (
	seqFile   string
	algorithm string
	kmerLen   int
	windowLen int
	bloomSize uint
	numHash   uint
)

// countDistinct feeds every rolling k-mer hash of the ASCII sequence
// into a Bloom filter and returns the number of hashes not seen
// before.
func countDistinct(ascii []byte, k int, filter *bloom.BloomFilter) int {

	var h rollinghash.Hash64 = nthash.New()
	if _, err := h.Write(ascii[:k]); err != nil {
		panic(err)
	}

	var buf [8]byte
	var distinct int

	binary.BigEndian.PutUint64(buf[:], h.Sum64())
	if !filter.TestAndAdd(buf[:]) {
		distinct++
	}

	for i := k; i < len(ascii); i++ {
		h.Roll(ascii[i])
		binary.BigEndian.PutUint64(buf[:], h.Sum64())
		if !filter.TestAndAdd(buf[:]) {
			distinct++
		}
	}

	return distinct
}

// coverage marks every base under a selected k-mer in a bit array and
// returns the fraction of marked bases.
func coverage(minimizers []minimize.KMer, n, k int) float64 {

	ba := bitarray.NewBitArray(uint64(n))
	for _, km := range minimizers {
		p := int(km.Position())
		for j := p; j < p+k && j < n; j++ {
			if err := ba.SetBit(uint64(j)); err != nil {
				panic(err)
			}
		}
	}

	var covered int
	for i := 0; i < n; i++ {
		f, err := ba.GetBit(uint64(i))
		if err != nil {
			panic(err)
		}
		if f {
			covered++
		}
	}

	return float64(covered) / float64(n)
}

func processseq(ascii []byte, snum int) {

	s, err := seq.New(ascii)
	if err != nil {
		panic(err)
	}

	if s.Len() < windowLen+kmerLen-1 {
		fmt.Printf("%d\ttoo short (%d bases)\n", snum, s.Len())
		return
	}

	fn, ok := minimize.Algorithms()[algorithm]
	if !ok {
		panic(fmt.Sprintf("minstats: no algorithm named %s", algorithm))
	}

	args := minimize.Args{
		Seq:          s,
		WindowLength: int32(windowLen),
		KMerLength:   int32(kmerLen),
	}
	minimizers := fn(args)

	nk := s.Len() - kmerLen + 1
	canonical := s.Decode()

	distinctKmers := countDistinct(canonical, kmerLen, bloom.New(bloomSize, numHash))

	mfilter := bloom.New(bloomSize, numHash)
	var buf [8]byte
	var distinctMin int
	for _, km := range minimizers {
		binary.BigEndian.PutUint64(buf[:], km.Value())
		if !mfilter.TestAndAdd(buf[:]) {
			distinctMin++
		}
	}

	wk := make([]int, 25)
	var dinuc int
	for _, km := range minimizers {
		p := int(km.Position())
		dinuc += utils.CountDinuc(canonical[p:p+kmerLen], wk)
	}

	fmt.Printf("%d\t%d bases\t%d minimizers\tdensity %.4f\t~%d distinct k-mers\t~%d distinct minimizers\tcoverage %.4f\tmean dinucs %.2f\n",
		snum, s.Len(), len(minimizers),
		float64(len(minimizers))/float64(nk),
		distinctKmers, distinctMin,
		coverage(minimizers, s.Len(), kmerLen),
		float64(dinuc)/float64(len(minimizers)))
}

func main() {

	flag.StringVar(&seqFile, "SeqFile", "", "Sequence file, one sequence per line")
	flag.StringVar(&algorithm, "Algorithm", "argmin-recovery", "Minimizer algorithm")
	flag.IntVar(&kmerLen, "KMerLength", 21, "K-mer length")
	flag.IntVar(&windowLen, "WindowLength", 11, "Window length")
	flag.UintVar(&bloomSize, "BloomSize", 1<<28, "Bloom filter size in bits")
	flag.UintVar(&numHash, "NumHash", 4, "Bloom filter hash count")

	flag.Parse()

	if seqFile == "" {
		os.Stderr.WriteString("minstats: SeqFile is required\n")
		os.Exit(1)
	}

	ris := utils.NewReadInSeq(seqFile)
	defer ris.Close()

	for snum := 0; ris.Next(); snum++ {
		processseq([]byte(ris.Seq), snum)
	}
}
