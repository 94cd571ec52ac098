// Package codon implements codon lookup tables and translation of
// nucleotide sequences into protein sequences.
package codon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bitbucket.org/Marchuk/prodon/bio"
)

// Table is a codon lookup table mapping every codon to an amino acid
// one-letter code, '*' is a stop-codon. A table is built once per run
// and shared by all translations; it is never modified after loading.
type Table struct {
	// Name describes the table origin: a genetic code name or a
	// source file name.
	Name string

	aa map[string]byte
}

// New creates a Table from a genetic code. The mapping is copied, so
// the table does not alias the genetic code storage.
func New(gcode *bio.GeneticCode) *Table {
	t := Table{
		Name: gcode.Name,
		aa:   make(map[string]byte, bio.NCodons),
	}
	for codon, aa := range gcode.Map {
		t.aa[codon] = aa
	}
	return &t
}

// ReadTable reads a codon table from a tab-separated source. The
// first non-empty line should be a Codon/AA header, every following
// line should assign an amino acid to a codon. Lines starting with #
// are skipped. The table must assign each of the 64 codons exactly
// once; duplicate, malformed or missing codons are errors.
func ReadTable(rd io.Reader) (*Table, error) {
	t := Table{
		Name: "custom",
		aa:   make(map[string]byte, bio.NCodons),
	}

	scanner := bufio.NewScanner(rd)
	nline := 0
	header := false
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if !header {
			if len(fields) != 2 || fields[0] != "Codon" || fields[1] != "AA" {
				return nil, fmt.Errorf("line %d: expecting Codon/AA header", nline)
			}
			header = true
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expecting two fields, got %d", nline, len(fields))
		}
		codon := strings.ToUpper(fields[0])
		if !validCodon(codon) {
			return nil, fmt.Errorf("line %d: invalid codon %q", nline, fields[0])
		}
		if len(fields[1]) != 1 || !validAminoAcid(fields[1][0]) {
			return nil, fmt.Errorf("line %d: invalid amino acid %q for codon %s", nline, fields[1], codon)
		}
		if _, ok := t.aa[codon]; ok {
			return nil, fmt.Errorf("line %d: duplicate codon %s", nline, codon)
		}
		t.aa[codon] = fields[1][0]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, fmt.Errorf("no Codon/AA header found")
	}

	if len(t.aa) < bio.NCodons {
		missing := ""
		for codon := range bio.GetCodons() {
			if _, ok := t.aa[codon]; !ok && missing == "" {
				missing = codon
			}
		}
		return nil, fmt.Errorf("incomplete table: codon %s is missing", missing)
	}

	return &t, nil
}

// Get returns the amino acid for a codon. The second value is false
// if the codon is not in the table.
func (t *Table) Get(codon string) (byte, bool) {
	aa, ok := t.aa[codon]
	return aa, ok
}

// Len returns the number of codons in the table.
func (t *Table) Len() int {
	return len(t.aa)
}

// IsStopCodon tests if the codon translates to a stop.
func (t *Table) IsStopCodon(codon string) bool {
	return t.aa[codon] == '*'
}

// WriteTSV writes the table in the tab-separated format accepted by
// ReadTable, codons in the TCAG order of the NCBI tables.
func (t *Table) WriteTSV(wr io.Writer) error {
	bw := bufio.NewWriter(wr)
	bw.WriteString("Codon\tAA\n")
	for codon := range bio.GetCodons() {
		aa, ok := t.aa[codon]
		if !ok {
			continue
		}
		bw.WriteString(codon + "\t" + string(aa) + "\n")
	}
	return bw.Flush()
}

func (t *Table) String() string {
	return fmt.Sprintf("<Table: Name=%q, %d codons>", t.Name, len(t.aa))
}

// validCodon tests if the string is a three-letter codon over the DNA
// alphabet (capital letters).
func validCodon(codon string) bool {
	if len(codon) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		switch codon[i] {
		case 'T', 'C', 'A', 'G':
		default:
			return false
		}
	}
	return true
}

// validAminoAcid tests if the byte is an amino acid one-letter code
// or the '*' stop symbol.
func validAminoAcid(aa byte) bool {
	return aa == '*' || ('A' <= aa && aa <= 'Z')
}
