/*

Prodon-bench measures translation throughput of different codon table
strategies on a generated batch. The shared mode builds the table once
and reuses it for the whole batch; the perrecord and percodon modes
rebuild the table for every record or for every single codon and exist
only to show the cost of not sharing it; the parallel mode shares one
table between worker goroutines.

*/
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/op/go-logging"

	"bitbucket.org/Marchuk/prodon/bio"
	"bitbucket.org/Marchuk/prodon/codon"
)

// setting up logging
var formatter = logging.MustStringFormatter(`%{message}`)
var log = logging.MustGetLogger("prodon-bench")

// program parameters
var (
	gcodeID    = flag.Int("gcode", 1, "NCBI genetic code id")
	records    = flag.Int("records", 1000, "number of records in the generated batch")
	codons     = flag.Int("codons", 300, "codons per record")
	scale      = flag.String("scale", "", "comma-separated record counts to run instead of -records")
	modes      = flag.String("modes", "shared,perrecord,parallel", "comma-separated modes to run (shared, perrecord, percodon, parallel); percodon is very slow")
	reps       = flag.Int("reps", 5, "repetitions per measurement")
	nThreads   = flag.Int("nt", 0, "threads for the parallel mode, GOMAXPROCS by default")
	seed       = flag.Int64("seed", 1, "random generator seed")
	tsvF       = flag.String("tsv", "", "write results in TSV format to a file")
	jsonF      = flag.String("json", "", "write results in json format to a file")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to file")
	debug      = flag.Bool("debug", false, "enable debug mode")
)

func main() {
	startTime := time.Now()

	logging.SetFormatter(formatter)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(backend)

	flag.Parse()

	if !*debug {
		logging.SetLevel(logging.INFO, "prodon-bench")
	}

	if *cpuProfile != "" {
		f := osUtil.Create(*cpuProfile)
		defer simpleUtil.DeferClose(f)
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	gcode, ok := bio.GeneticCodes[*gcodeID]
	if !ok {
		log.Fatalf("couldn't load genetic code with id=%d", *gcodeID)
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)

	// The table source every mode starts from. Rebuilding a table
	// means re-reading this source.
	var src bytes.Buffer
	simpleUtil.CheckErr(codon.New(gcode).WriteTSV(&src))

	sizes, err := getSizes()
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))

	var results []*Result
	for _, nrec := range sizes {
		seqs := makeBatch(rng, nrec, *codons)
		sharedMean := 0.0
		for _, mode := range getModes() {
			res, err := benchMode(mode, src.Bytes(), seqs, *reps, *nThreads)
			if err != nil {
				log.Fatal(err)
			}
			if mode == "shared" {
				sharedMean = res.Mean
			}
			if sharedMean > 0 {
				res.Slowdown = res.Mean / sharedMean
			}
			results = append(results, res)
			log.Info(res)
		}
	}

	if *tsvF != "" {
		f := osUtil.Create(*tsvF)
		defer simpleUtil.DeferClose(f)
		simpleUtil.CheckErr(writeTSV(f, results))
	}

	if *jsonF != "" {
		j, err := json.Marshal(results)
		if err != nil {
			log.Error(err)
		} else {
			f := osUtil.Create(*jsonF)
			defer simpleUtil.DeferClose(f)
			simpleUtil.HandleError(f.Write(j))
		}
	}

	log.Noticef("Running time: %v", time.Since(startTime))
}

// getSizes returns the record counts to run: -scale entries if
// given, -records otherwise.
func getSizes() ([]int, error) {
	if *scale == "" {
		return []int{*records}, nil
	}
	var sizes []int
	for _, s := range strings.Split(*scale, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// getModes returns the mode names from -modes, spaces around the
// commas allowed.
func getModes() []string {
	var ms []string
	for _, m := range strings.Split(*modes, ",") {
		ms = append(ms, strings.TrimSpace(m))
	}
	return ms
}
