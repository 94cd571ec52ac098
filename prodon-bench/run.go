package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"time"

	"bitbucket.org/Marchuk/prodon/bio"
	"bitbucket.org/Marchuk/prodon/codon"
)

var letters = [...]byte{'T', 'C', 'A', 'G'}

// makeBatch generates a reproducible batch of random nucleotide
// records, nCodons complete codons each.
func makeBatch(rng *rand.Rand, nRecords, nCodons int) bio.Sequences {
	seqs := make(bio.Sequences, nRecords)
	for i := range seqs {
		b := make([]byte, 3*nCodons)
		for j := range b {
			b[j] = letters[rng.Intn(len(letters))]
		}
		seqs[i] = bio.Sequence{
			Name:     fmt.Sprintf("seq%d", i),
			Sequence: string(b),
		}
	}
	return seqs
}

// benchMode measures a single mode on the batch, repeating the run
// reps times.
func benchMode(mode string, src []byte, seqs bio.Sequences, reps, nThreads int) (*Result, error) {
	var run func() error
	switch mode {
	case "shared":
		run = func() error { return runShared(src, seqs) }
	case "perrecord":
		run = func() error { return runPerRecord(src, seqs) }
	case "percodon":
		run = func() error { return runPerCodon(src, seqs) }
	case "parallel":
		run = func() error { return runParallel(src, seqs, nThreads) }
	default:
		return nil, fmt.Errorf("Unknown mode: %s", mode)
	}

	nCodons := 0
	for _, seq := range seqs {
		nCodons += len(seq.Sequence) / 3
	}

	res := &Result{
		Mode:    mode,
		Records: len(seqs),
		Codons:  nCodons,
		Times:   make([]float64, 0, reps),
	}
	for r := 0; r < reps; r++ {
		startTime := time.Now()
		if err := run(); err != nil {
			return nil, err
		}
		res.Times = append(res.Times, time.Since(startTime).Seconds())
	}
	res.compute()
	return res, nil
}

// runShared reads the table once and translates the whole batch with
// it.
func runShared(src []byte, seqs bio.Sequences) error {
	table, err := codon.ReadTable(bytes.NewReader(src))
	if err != nil {
		return err
	}
	_, err = codon.NewTranslator(table).Sequences(seqs)
	return err
}

// runPerRecord re-reads the table for every record. This is the
// anti-pattern the shared mode exists to avoid.
func runPerRecord(src []byte, seqs bio.Sequences) error {
	for _, seq := range seqs {
		table, err := codon.ReadTable(bytes.NewReader(src))
		if err != nil {
			return err
		}
		if _, err = codon.NewTranslator(table).Translate(seq.Sequence); err != nil {
			return err
		}
	}
	return nil
}

// runPerCodon re-reads the table for every single codon lookup.
func runPerCodon(src []byte, seqs bio.Sequences) error {
	for _, seq := range seqs {
		prot := make([]byte, 0, len(seq.Sequence)/3)
		for i := 0; i+3 <= len(seq.Sequence); i += 3 {
			table, err := codon.ReadTable(bytes.NewReader(src))
			if err != nil {
				return err
			}
			aa, ok := table.Get(seq.Sequence[i : i+3])
			if !ok {
				aa = codon.DefaultMarker
			}
			prot = append(prot, aa)
		}
		if len(prot) != len(seq.Sequence)/3 {
			return fmt.Errorf("wrong protein length for %s", seq.Name)
		}
	}
	return nil
}

// runParallel reads the table once and translates the batch with
// worker goroutines sharing it.
func runParallel(src []byte, seqs bio.Sequences, nThreads int) error {
	table, err := codon.ReadTable(bytes.NewReader(src))
	if err != nil {
		return err
	}
	_, err = codon.NewTranslator(table).SequencesParallel(seqs, nThreads)
	return err
}
