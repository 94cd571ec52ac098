package codon

import (
	"fmt"
	"runtime"
	"sync"

	"bitbucket.org/Marchuk/prodon/bio"
)

// Policy specifies what a translation does with a codon which is not
// present in the table.
type Policy int

const (
	// PolicyMark writes a marker ('X' by default) for every unknown
	// codon.
	PolicyMark Policy = iota
	// PolicySkip omits unknown codons from the output.
	PolicySkip
	// PolicyStrict stops the translation with an error on the first
	// unknown codon.
	PolicyStrict
)

// DefaultMarker is the symbol written for an unknown codon under
// PolicyMark.
const DefaultMarker = 'X'

// Translator translates nucleotide sequences in the first reading
// frame using a shared codon table. The table is supplied on creation
// and never rebuilt; a single translator can process any number of
// sequences. Methods of a configured translator are safe for
// concurrent use.
type Translator struct {
	table  *Table
	policy Policy
	marker byte
}

// NewTranslator creates a Translator using the table. Unknown codons
// are marked with DefaultMarker unless SetPolicy is called.
func NewTranslator(table *Table) *Translator {
	return &Translator{
		table:  table,
		policy: PolicyMark,
		marker: DefaultMarker,
	}
}

// SetPolicy sets the unknown-codon policy.
func (tr *Translator) SetPolicy(policy Policy) {
	tr.policy = policy
}

// SetMarker sets the symbol written for unknown codons under
// PolicyMark.
func (tr *Translator) SetMarker(marker byte) {
	tr.marker = marker
}

// Table returns the lookup table the translator was created with.
func (tr *Translator) Table() *Table {
	return tr.table
}

// Translate translates a nucleotide sequence into a protein sequence.
// The sequence is read in the first frame as consecutive
// non-overlapping codons; 1-2 trailing nucleotides which do not form
// a complete codon are dropped. Stop-codons translate to '*' like any
// other codon. Under PolicyStrict an error reports the first unknown
// codon and its nucleotide offset.
func (tr *Translator) Translate(nseq string) (string, error) {
	prot := make([]byte, 0, len(nseq)/3)
	for i := 0; i+3 <= len(nseq); i += 3 {
		codon := nseq[i : i+3]
		aa, ok := tr.table.aa[codon]
		if !ok {
			switch tr.policy {
			case PolicyMark:
				aa = tr.marker
			case PolicySkip:
				continue
			case PolicyStrict:
				return "", fmt.Errorf("unknown codon %q at position %d", codon, i)
			}
		}
		prot = append(prot, aa)
	}
	return string(prot), nil
}

// Sequences translates a batch of records. The result has the same
// length and order as the batch, every record keeps its name; a
// record with an empty sequence produces an empty protein sequence.
// Under PolicyStrict the first failing record stops the batch and the
// error reports the record name.
func (tr *Translator) Sequences(seqs bio.Sequences) (bio.Sequences, error) {
	res := make(bio.Sequences, len(seqs))
	for i, seq := range seqs {
		prot, err := tr.Translate(seq.Sequence)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %v", seq.Name, err)
		}
		res[i] = bio.Sequence{Name: seq.Name, Sequence: prot}
	}
	return res, nil
}

// SequencesParallel translates a batch of records using nThreads
// goroutines sharing a single table. Records are assigned to workers
// by index stride, every worker writes only its own indices of the
// result, so the output is identical to Sequences. Zero or negative
// nThreads means GOMAXPROCS. Under PolicyStrict a failing record
// stops the batch; with multiple failing records the reported one
// depends on the partition.
func (tr *Translator) SequencesParallel(seqs bio.Sequences, nThreads int) (bio.Sequences, error) {
	if nThreads <= 0 {
		nThreads = runtime.GOMAXPROCS(0)
	}
	if nThreads > len(seqs) {
		nThreads = len(seqs)
	}
	if nThreads <= 1 {
		return tr.Sequences(seqs)
	}

	res := make(bio.Sequences, len(seqs))
	errs := make([]error, nThreads)
	var wg sync.WaitGroup
	for w := 0; w < nThreads; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(seqs); i += nThreads {
				prot, err := tr.Translate(seqs[i].Sequence)
				if err != nil {
					errs[w] = fmt.Errorf("sequence %q: %v", seqs[i].Name, err)
					return
				}
				res[i] = bio.Sequence{Name: seqs[i].Name, Sequence: prot}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
