// Copyright 2026, Kerby Shedden and the Minimizers contributors.

package utils

import (
	"github.com/BurntSushi/toml"
)

// Config describes one benchmark scenario, in TOML.
type Config struct {

	// The number of bases in the synthetic sequence.
	NumBases int

	// The seed of the sequence generator.
	Seed int64

	// The k-mer length, between 1 and 32.
	KMerLength int32

	// The window length, in k-mers.
	WindowLength int32

	// The algorithms to time.  If empty, every registered
	// algorithm runs.
	Algorithms []string

	// The number of timed repetitions per algorithm.
	Repeats int

	// The file path where the results are written, relative to
	// the run directory.  A name ending in .sz is written
	// snappy-compressed.
	ResultsFileName string

	// The directory where run directories are created.  Each run
	// gets its own subdirectory.  Defaults to minbench_runs in the
	// local directory.
	RunDir string

	// If true, a CPU profile of the whole run, including sequence
	// generation and the reference cross-checks, is written into the
	// run directory.
	CPUProfile bool
}

// ReadConfig decodes a TOML scenario file.
func ReadConfig(filename string) *Config {
	config := new(Config)
	if _, err := toml.DecodeFile(filename, config); err != nil {
		panic(err)
	}
	return config
}
