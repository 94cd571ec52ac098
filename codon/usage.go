package codon

import (
	"bufio"
	"fmt"
	"io"

	"bitbucket.org/Marchuk/prodon/bio"
)

// rAlphabet is reverse nucleotide alphabet (letter to a number).
var rAlphabet = map[byte]byte{'T': 0, 'C': 1, 'A': 2, 'G': 3}

// Usage accumulates codon occurrence counts over nucleotide
// sequences. Only complete first-frame codons over the DNA alphabet
// are counted.
type Usage struct {
	counts map[string]int
	total  int
}

// NewUsage creates an empty Usage.
func NewUsage() *Usage {
	return &Usage{counts: make(map[string]int, bio.NCodons)}
}

// Add counts the codons of a nucleotide sequence.
func (u *Usage) Add(nseq string) {
	for i := 0; i+3 <= len(nseq); i += 3 {
		codon := nseq[i : i+3]
		if !validCodon(codon) {
			continue
		}
		u.counts[codon]++
		u.total++
	}
}

// AddSequences counts the codons of every record in the batch.
func (u *Usage) AddSequences(seqs bio.Sequences) {
	for _, seq := range seqs {
		u.Add(seq.Sequence)
	}
}

// Count returns the number of occurrences of the codon.
func (u *Usage) Count(codon string) int {
	return u.counts[codon]
}

// Total returns the total number of counted codons.
func (u *Usage) Total() int {
	return u.total
}

// Frequency returns the fraction of the codon among all counted
// codons.
func (u *Usage) Frequency(codon string) float64 {
	if u.total == 0 {
		return 0
	}
	return float64(u.counts[codon]) / float64(u.total)
}

// Positional returns nucleotide frequencies for each of the three
// codon positions, nucleotides in TCAG order.
func (u *Usage) Positional() (poscf [3][4]float64) {
	if u.total == 0 {
		return
	}
	for codon, n := range u.counts {
		poscf[0][rAlphabet[codon[0]]] += float64(n)
		poscf[1][rAlphabet[codon[1]]] += float64(n)
		poscf[2][rAlphabet[codon[2]]] += float64(n)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			poscf[i][j] /= float64(u.total)
		}
	}
	return
}

// WriteTSV writes per-codon counts and frequencies, codons in the
// TCAG order of the NCBI tables.
func (u *Usage) WriteTSV(wr io.Writer) error {
	bw := bufio.NewWriter(wr)
	bw.WriteString("Codon\tCount\tFrequency\n")
	for codon := range bio.GetCodons() {
		fmt.Fprintf(bw, "%s\t%d\t%g\n", codon, u.counts[codon], u.Frequency(codon))
	}
	return bw.Flush()
}

func (u *Usage) String() (s string) {
	s = "<Usage:"
	for codon := range bio.GetCodons() {
		if u.counts[codon] > 0 {
			s += fmt.Sprintf(" %v: %v,", codon, u.counts[codon])
		}
	}
	s = s[:len(s)-1] + ">"
	return
}
