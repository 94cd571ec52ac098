// Package bio provides sequence types, FASTA input/output and the
// NCBI genetic codes.
package bio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences. E.g. a batch of records from a
// FASTA file.
type Sequences []Sequence

// ParseFasta parses FASTA sequences from a reader. Sequence lines are
// converted to uppercase and spaces are removed.
func ParseFasta(rd io.Reader) (seqs Sequences, err error) {
	seqs = make(Sequences, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			seq := Sequence{Name: line[1:]}
			seqs = append(seqs, seq)
		} else {
			if len(seqs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			seqs[len(seqs)-1].Sequence += line
		}
	}
	return seqs, scanner.Err()
}

// WriteFasta writes sequences in FASTA format wrapping sequence lines
// at cols characters.
func WriteFasta(wr io.Writer, seqs Sequences, cols int) error {
	bw := bufio.NewWriter(wr)
	for _, seq := range seqs {
		if _, err := bw.WriteString(">" + seq.Name + "\n"); err != nil {
			return err
		}
		if _, err := bw.WriteString(Wrap(seq.Sequence, cols)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Wrap inputs a string and wraps it so string length is n characters
// or less. If n is not positive, the string is returned as a single
// line.
func Wrap(seq string, n int) (s string) {
	if n <= 0 {
		if seq == "" {
			return ""
		}
		return seq + "\n"
	}
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() (s string) {
	s = ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
	return
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() (s string) {
	for _, seq := range seqs {
		s += seq.String()
	}
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}
