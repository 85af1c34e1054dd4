// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package utils

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// ReadInSeq reads nucleotide sequences, one per line, from a plain or
// snappy-compressed text file.  Snappy is inferred from the .sz
// suffix.
type ReadInSeq struct {
	file    *os.File
	scanner *bufio.Scanner
	Seq     string
}

func NewReadInSeq(seqfile string) *ReadInSeq {
	inf, err := os.Open(seqfile)
	if err != nil {
		panic(err)
	}

	var rdr io.Reader = inf
	if strings.HasSuffix(seqfile, ".sz") {
		rdr = snappy.NewReader(rdr)
	}

	scanner := bufio.NewScanner(rdr)
	buf := make([]byte, 0, 64*1024)

	// Whole chromosomes arrive as single lines.
	scanner.Buffer(buf, 64*1024*1024)

	return &ReadInSeq{
		file:    inf,
		scanner: scanner,
	}
}

func (ris *ReadInSeq) Next() bool {

	if !ris.scanner.Scan() {

		if err := ris.scanner.Err(); err != nil {
			panic(err)
		}

		return false
	}

	ris.Seq = ris.scanner.Text()
	return true
}

func (ris *ReadInSeq) Close() {
	ris.file.Close()
}
