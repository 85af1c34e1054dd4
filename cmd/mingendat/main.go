// Copyright 2026, Kerby Shedden and the Minimizers contributors.

// mingendat writes a synthetic nucleotide sequence file, one sequence
// per line, for use with minstats or any other line-oriented consumer.
// The sequences come from the same deterministic generator the
// benchmarks use, so a file is reproducible from its seed.

package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"

	"github.com/kshedden/minimizers/seq"
)

var (
	numSeq   int
	numBases int
	seed     int64
	outFile  string
)

func main() {

	flag.IntVar(&numSeq, "NumSeq", 1, "Number of sequences")
	flag.IntVar(&numBases, "NumBases", 1000000, "Bases per sequence")
	flag.Int64Var(&seed, "Seed", 42, "Generator seed")
	flag.StringVar(&outFile, "OutFile", "seqs.txt.sz", "Output file name")

	flag.Parse()

	fid, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer fid.Close()

	var wtr io.Writer = fid
	if strings.HasSuffix(outFile, ".sz") {
		swtr := snappy.NewBufferedWriter(fid)
		defer swtr.Close()
		wtr = swtr
	}

	for i := 0; i < numSeq; i++ {
		s := seq.NewRandom(numBases, seed+int64(i))
		if _, err := wtr.Write(s.Decode()); err != nil {
			panic(err)
		}
		if _, err := wtr.Write([]byte("\n")); err != nil {
			panic(err)
		}
	}
}
