/*

Prodon translates nucleotide sequences into protein sequences. It
reads every sequence in the first frame as consecutive non-overlapping
codons and looks the codons up in a table which is built once per run
from an NCBI genetic code or from a codon table file.

The basic usage of prodon looks like this:

	prodon sequences.fst

, this will translate all the sequences using the standard genetic
code and print the result to the standard output.

You can change the genetic code and the unknown-codon policy:

	prodon -gcode 2 -unknown strict sequences.fst

To see all the options run:

	prodon -h

*/
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Marchuk/prodon/bio"
	"bitbucket.org/Marchuk/prodon/checkpoint"
	"bitbucket.org/Marchuk/prodon/codon"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("prodon")
var formatter = logging.MustStringFormatter(`%{message}`)

// getPolicyFromString returns an unknown-codon policy constant from
// codon from a string.
func getPolicyFromString(policy string) (codon.Policy, error) {
	switch policy {
	case "mark":
		return codon.PolicyMark, nil
	case "skip":
		return codon.PolicySkip, nil
	case "strict":
		return codon.PolicyStrict, nil
	}
	return codon.PolicyMark, fmt.Errorf("Unknown policy: %s", policy)
}

// newTable builds the codon table from the command-line options: a
// table file if one was given, an NCBI genetic code otherwise.
func newTable() *codon.Table {
	if *tableFileName != "" {
		tableFile, err := os.Open(*tableFileName)
		if err != nil {
			log.Fatal(err)
		}
		defer tableFile.Close()
		table, err := codon.ReadTable(tableFile)
		if err != nil {
			log.Fatalf("Error reading codon table %s: %v", *tableFileName, err)
		}
		table.Name = *tableFileName
		log.Infof("Codon table: %q, %d codons", table.Name, table.Len())
		return table
	}
	gcode, ok := bio.GeneticCodes[*gcodeID]
	if !ok {
		log.Fatalf("couldn't load genetic code with id=%d", *gcodeID)
	}
	log.Infof("Genetic code: %d, \"%s\"", gcode.ID, gcode.Name)
	return codon.New(gcode)
}

// countUnknown counts codons of the batch which are missing from the
// table.
func countUnknown(table *codon.Table, seqs bio.Sequences) (n int) {
	for _, seq := range seqs {
		for i := 0; i+3 <= len(seq.Sequence); i += 3 {
			if _, ok := table.Get(seq.Sequence[i : i+3]); !ok {
				n++
			}
		}
	}
	return
}

// command-line options
var (
	// application
	app = kingpin.New("prodon", "frame-1 codon translator").Version(version)

	// input
	fastaFileName = app.Arg("sequences", "nucleotide sequences in FASTA format").Required().ExistingFile()

	// table selection
	gcodeID       = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()
	tableFileName = app.Flag("table", "codon table file (overrides -gcode)").String()

	// translation parameters
	unknownPolicy = app.Flag("unknown", "unknown codon policy "+
		"(mark: write the marker symbol, "+
		"skip: omit the codon, "+
		"strict: stop with an error)").Default("mark").Enum("mark", "skip", "strict")
	marker = app.Flag("marker", "symbol to write for unknown codons").Default("X").String()

	// technical
	nThreads   = app.Flag("nt", "number of threads to use").Int()
	cpuProfile = app.Flag("cpuprofile", "write cpu profile to file").String()

	// checkpoints
	checkpointFileName = app.Flag("checkpoint", "checkpoint file; translation becomes sequential and resumable (requires -out)").String()
	checkpointSeconds  = app.Flag("cseconds", "how often checkpoint should be saved, seconds").Default("30").Float64()

	// input/output
	outLogF   = app.Flag("log", "write log to a file").String()
	outF      = app.Flag("out", "write protein sequences to a file").String()
	usageF    = app.Flag("usage", "write codon usage report to a file").String()
	outTableF = app.Flag("outtable", "write the codon table to a file").String()
	wrapCols  = app.Flag("wrap", "wrap output sequences at n characters, 0 disables wrapping").Default("80").Int()
	logLevel  = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

func run() (summary *TranslationSummary) {
	startTime := time.Now()
	summary = &TranslationSummary{Policy: *unknownPolicy}

	table := newTable()
	summary.Table = table.Name

	if *outTableF != "" {
		f, err := os.Create(*outTableF)
		if err != nil {
			log.Error("Error creating table output file:", err)
		} else {
			if err := table.WriteTSV(f); err != nil {
				log.Error("Error writing codon table:", err)
			}
			f.Close()
		}
	}

	translator := codon.NewTranslator(table)
	policy, err := getPolicyFromString(*unknownPolicy)
	if err != nil {
		log.Fatal(err)
	}
	translator.SetPolicy(policy)
	if len(*marker) != 1 {
		log.Fatalf("marker should be a single symbol, got %q", *marker)
	}
	translator.SetMarker((*marker)[0])

	fastaFile, err := os.Open(*fastaFileName)
	if err != nil {
		log.Fatal(err)
	}
	defer fastaFile.Close()

	seqs, err := bio.ParseFasta(fastaFile)
	if err != nil {
		log.Fatal(err)
	}

	nCodons := 0
	for _, seq := range seqs {
		nCodons += len(seq.Sequence) / 3
	}
	log.Infof("Read %d sequences, %d codons", len(seqs), nCodons)
	summary.Records = len(seqs)
	summary.Codons = nCodons

	if *jsonF != "" {
		summary.UnknownCodons = countUnknown(table, seqs)
	}

	if *usageF != "" {
		u := codon.NewUsage()
		u.AddSequences(seqs)
		f, err := os.Create(*usageF)
		if err != nil {
			log.Error("Error creating usage report file:", err)
		} else {
			if err := u.WriteTSV(f); err != nil {
				log.Error("Error writing usage report:", err)
			}
			f.Close()
		}
	}

	if *checkpointFileName != "" {
		runCheckpointed(translator, seqs)
	} else {
		res, err := translator.SequencesParallel(seqs, *nThreads)
		if err != nil {
			log.Fatal(err)
		}

		f := os.Stdout
		if *outF != "" {
			f, err = os.Create(*outF)
			if err != nil {
				log.Fatal("Error creating output file:", err)
			}
			defer f.Close()
		}
		if err := bio.WriteFasta(f, res, *wrapCols); err != nil {
			log.Fatal("Error writing output:", err)
		}
	}

	endTime := time.Now()

	deltaT := endTime.Sub(startTime)
	log.Noticef("Translation time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	return
}

// runCheckpointed translates records one by one, saving progress to
// the checkpoint file, so an interrupted run can be resumed.
func runCheckpointed(translator *codon.Translator, seqs bio.Sequences) {
	if *outF == "" {
		log.Fatal("-checkpoint requires -out")
	}

	db, err := bolt.Open(*checkpointFileName, 0644, nil)
	if err != nil {
		log.Fatal("Error opening checkpoint file:", err)
	}
	defer db.Close()

	cp := checkpoint.NewCheckpointIO(db, []byte("translation"), *checkpointSeconds)

	data, err := cp.GetProgress()
	if err != nil {
		log.Fatal("Error reading checkpoint:", err)
	}
	if data != nil && data.Final {
		log.Notice("Translation already finished, nothing to do")
		return
	}

	done := 0
	nCodons := 0
	var offset int64
	if data != nil {
		if data.Records > len(seqs) {
			log.Fatalf("Checkpoint has %d records, input only %d", data.Records, len(seqs))
		}
		done = data.Records
		nCodons = data.Codons
		offset = data.Offset
		log.Noticef("Resuming from record %d", done)
	}

	f, err := os.OpenFile(*outF, os.O_WRONLY|os.O_CREATE, 0666)
	if err != nil {
		log.Fatal("Error opening output file:", err)
	}
	defer f.Close()
	if err = f.Truncate(offset); err != nil {
		log.Fatal("Error truncating output file:", err)
	}
	if _, err = f.Seek(offset, io.SeekStart); err != nil {
		log.Fatal(err)
	}

	bw := bufio.NewWriter(f)
	cp.SetNow()
	for i := done; i < len(seqs); i++ {
		prot, err := translator.Translate(seqs[i].Sequence)
		if err != nil {
			log.Fatalf("sequence %q: %v", seqs[i].Name, err)
		}
		rec := ">" + seqs[i].Name + "\n" + bio.Wrap(prot, *wrapCols)
		if _, err = bw.WriteString(rec); err != nil {
			log.Fatal("Error writing output:", err)
		}
		offset += int64(len(rec))
		nCodons += len(seqs[i].Sequence) / 3
		if cp.Old() {
			if err = bw.Flush(); err != nil {
				log.Fatal("Error writing output:", err)
			}
			cp.Save(&checkpoint.CheckpointData{Records: i + 1, Codons: nCodons, Offset: offset})
		}
	}
	if err = bw.Flush(); err != nil {
		log.Fatal("Error writing output:", err)
	}
	cp.Save(&checkpoint.CheckpointData{Records: len(seqs), Codons: nCodons, Offset: offset, Final: true})
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "prodon")
	logging.SetLevel(level, "checkpoint")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	runtime.GOMAXPROCS(*nThreads)

	effectiveNThreads := runtime.GOMAXPROCS(0)
	log.Infof("Using threads: %d.\n", effectiveNThreads)

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	startTime := time.Now()
	translation := run()

	summary := RunSummary{
		Version:     version,
		CommandLine: os.Args,
		NThreads:    effectiveNThreads,
		Translation: translation,
		TotalTime:   time.Now().Sub(startTime).Seconds(),
	}

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
