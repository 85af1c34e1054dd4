// Copyright 2026, Kerby Shedden and the Minimizers contributors.

// minbench times every configured minimizer algorithm over one
// synthetic nucleotide sequence and writes a results table.
//
// A scenario is described by a TOML config file:
//
//	NumBases = 1000000
//	Seed = 42
//	KMerLength = 21
//	WindowLength = 11
//	Repeats = 10
//	ResultsFileName = "results.txt.sz"
//
// and run with:
//
//	minbench config.toml
//
// Every run gets its own directory under RunDir, named by a UUID, and
// a log file inside it.  Before timing, each algorithm's output is
// checked against the reference for its hash family; a mismatch aborts
// the run, since timings of a wrong answer are worthless.
//
// The results file has one row per algorithm:
//
// (algorithm) (bases) (k) (w) (minimizers) (repeats) (best ns) (mean ns)

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"
	"github.com/pkg/profile"

	"github.com/kshedden/minimizers/minimize"
	"github.com/kshedden/minimizers/seq"
	"github.com/kshedden/minimizers/utils"
)

var (
	// A log
	logger *log.Logger

	// Configuration information
	config *utils.Config

	// All output for this run is stored here
	rundir string
)

func setupLogger() {
	logname := path.Join(rundir, "minbench.log")
	logfid, err := os.Create(logname)
	if err != nil {
		panic(err)
	}
	logger = log.New(logfid, "", log.Ltime)
}

func setupRundir() {
	base := config.RunDir
	if base == "" {
		base = "minbench_runs"
	}

	xuid, err := uuid.NewUUID()
	if err != nil {
		panic(err)
	}
	rundir = path.Join(base, xuid.String())

	if err := os.MkdirAll(rundir, 0755); err != nil {
		panic(err)
	}
}

// algorithmNames returns the configured algorithm list, or every
// registered algorithm, sorted for stable output.
func algorithmNames() []string {
	names := config.Algorithms
	if len(names) == 0 {
		for name := range minimize.Algorithms() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// reference returns the oracle output for an algorithm's hash family.
func reference(name string, args minimize.Args) []minimize.KMer {
	if strings.HasPrefix(name, "nthash-") {
		return minimize.NtHashArgMinMinimize(args)
	}
	return minimize.NaiveMinimize(args)
}

type result struct {
	name    string
	count   int
	bestNs  int64
	meanNs  int64
	repeats int
}

func run() []result {

	logger.Printf("Generating %d bases with seed %d...", config.NumBases, config.Seed)
	sequence := seq.NewRandom(config.NumBases, config.Seed)
	args := minimize.Args{
		Seq:          sequence,
		WindowLength: config.WindowLength,
		KMerLength:   config.KMerLength,
	}

	algos := minimize.Algorithms()
	names := algorithmNames()

	var results []result
	for _, name := range names {

		fn, ok := algos[name]
		if !ok {
			logger.Printf("No algorithm named %s, exiting", name)
			panic(fmt.Sprintf("minbench: no algorithm named %s", name))
		}

		// Warm up and cross-check in one pass.
		dst := fn(args)
		if ref := reference(name, args); !minimize.Equal(dst, ref) {
			logger.Printf("%s disagrees with its reference, exiting", name)
			panic(fmt.Sprintf("minbench: %s disagrees with its reference", name))
		}

		var best, total int64
		for r := 0; r < config.Repeats; r++ {
			t0 := time.Now()
			fn(args)
			ns := time.Since(t0).Nanoseconds()
			total += ns
			if best == 0 || ns < best {
				best = ns
			}
		}

		logger.Printf("%-24s %d minimizers, best %d ns", name, len(dst), best)
		results = append(results, result{
			name:    name,
			count:   len(dst),
			bestNs:  best,
			meanNs:  total / int64(config.Repeats),
			repeats: config.Repeats,
		})
	}

	return results
}

func writeResults(results []result) {

	outname := path.Join(rundir, config.ResultsFileName)
	out, err := os.Create(outname)
	if err != nil {
		logger.Print(err)
		panic(err)
	}
	defer out.Close()

	var wtr io.Writer = out
	if strings.HasSuffix(outname, ".sz") {
		swtr := snappy.NewBufferedWriter(out)
		defer swtr.Close()
		wtr = swtr
	}

	for _, r := range results {
		line := fmt.Sprintf("%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			r.name, config.NumBases, config.KMerLength, config.WindowLength,
			r.count, r.repeats, r.bestNs, r.meanNs)
		if _, err := wtr.Write([]byte(line)); err != nil {
			logger.Print(err)
			panic(err)
		}
	}

	logger.Printf("Wrote results to %s", outname)
}

func main() {

	if len(os.Args) != 2 {
		os.Stderr.WriteString(fmt.Sprintf("%s: wrong number of arguments\n", os.Args[0]))
		os.Exit(1)
	}

	config = utils.ReadConfig(os.Args[1])

	if config.NumBases == 0 {
		config.NumBases = 1 << 20
	}
	if config.Repeats == 0 {
		config.Repeats = 10
	}
	if config.ResultsFileName == "" {
		config.ResultsFileName = "results.txt"
	}

	setupRundir()
	setupLogger()

	if config.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(rundir)).Stop()
	}

	results := run()
	writeResults(results)
}
