package codon

import (
	"bytes"
	"testing"

	"bitbucket.org/Marchuk/prodon/bio"
)

const (
	benchRecords = 100
	benchCodons  = 300
)

// The shared benchmark builds the table once; the rebuild benchmarks
// re-read it per record or per codon and exist to show the cost of
// not sharing it.

func BenchmarkSequencesShared(b *testing.B) {
	tr := newStandard()
	seqs := makeSequences(benchRecords, benchCodons)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tr.Sequences(seqs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSequencesPerRecordRebuild(b *testing.B) {
	var src bytes.Buffer
	if err := New(bio.GeneticCodes[1]).WriteTSV(&src); err != nil {
		b.Fatal(err)
	}
	seqs := makeSequences(benchRecords, benchCodons)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, seq := range seqs {
			table, err := ReadTable(bytes.NewReader(src.Bytes()))
			if err != nil {
				b.Fatal(err)
			}
			if _, err := NewTranslator(table).Translate(seq.Sequence); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkSequencesPerCodonRebuild(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode.")
	}
	var src bytes.Buffer
	if err := New(bio.GeneticCodes[1]).WriteTSV(&src); err != nil {
		b.Fatal(err)
	}
	seqs := makeSequences(benchRecords, benchCodons)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, seq := range seqs {
			for j := 0; j+3 <= len(seq.Sequence); j += 3 {
				table, err := ReadTable(bytes.NewReader(src.Bytes()))
				if err != nil {
					b.Fatal(err)
				}
				table.Get(seq.Sequence[j : j+3])
			}
		}
	}
}

func BenchmarkSequencesParallel(b *testing.B) {
	tr := newStandard()
	seqs := makeSequences(benchRecords, benchCodons)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tr.SequencesParallel(seqs, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranslate(b *testing.B) {
	tr := newStandard()
	seqs := makeSequences(1, benchCodons)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := tr.Translate(seqs[0].Sequence); err != nil {
			b.Fatal(err)
		}
	}
}
