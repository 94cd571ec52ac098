package bio

import (
	"bytes"
	"strings"
	"testing"
)

const fasta1 = `>seq1 first sequence
ATGGGG
accATG aag
>seq2
atg
>seq3
`

func TestParseFasta(tst *testing.T) {
	seqs, err := ParseFasta(strings.NewReader(fasta1))
	if err != nil {
		tst.Fatal("Error parsing fasta:", err)
	}
	if len(seqs) != 3 {
		tst.Fatal("Expecting 3 sequences, got", len(seqs))
	}
	if seqs[0].Name != "seq1 first sequence" {
		tst.Error("Wrong sequence name:", seqs[0].Name)
	}
	if seqs[0].Sequence != "ATGGGGACCATGAAG" {
		tst.Error("Wrong sequence:", seqs[0].Sequence)
	}
	if seqs[1].Name != "seq2" || seqs[1].Sequence != "ATG" {
		tst.Error("Wrong second record:", seqs[1])
	}
	if seqs[2].Name != "seq3" || seqs[2].Sequence != "" {
		tst.Error("Wrong empty record:", seqs[2])
	}
}

func TestParseFastaNoHeader(tst *testing.T) {
	_, err := ParseFasta(strings.NewReader("ATGGGG\n"))
	if err == nil {
		tst.Error("Expecting an error for a sequence without a header")
	}
}

func TestParseFastaEmpty(tst *testing.T) {
	seqs, err := ParseFasta(strings.NewReader(""))
	if err != nil {
		tst.Error("Error parsing empty input:", err)
	}
	if len(seqs) != 0 {
		tst.Error("Expecting no sequences, got", len(seqs))
	}
}

func TestWrap(tst *testing.T) {
	if s := Wrap("AAAAA", 2); s != "AA\nAA\nA\n" {
		tst.Errorf("Wrong wrapping: %q", s)
	}
	if s := Wrap("AAAA", 2); s != "AA\nAA\n" {
		tst.Errorf("Wrong wrapping on the boundary: %q", s)
	}
	if s := Wrap("AAAAA", 0); s != "AAAAA\n" {
		tst.Errorf("Wrong unwrapped string: %q", s)
	}
	if s := Wrap("", 2); s != "" {
		tst.Errorf("Wrong empty string wrapping: %q", s)
	}
	if s := Wrap("", 0); s != "" {
		tst.Errorf("Wrong empty string wrapping: %q", s)
	}
}

func TestWriteFasta(tst *testing.T) {
	seqs := Sequences{
		{Name: "seq1", Sequence: "ATGGGGACC"},
		{Name: "seq2", Sequence: ""},
	}
	var b bytes.Buffer
	if err := WriteFasta(&b, seqs, 4); err != nil {
		tst.Fatal("Error writing fasta:", err)
	}
	expected := ">seq1\nATGG\nGGAC\nC\n>seq2\n"
	if b.String() != expected {
		tst.Errorf("Wrong fasta output: %q", b.String())
	}
}

func TestFastaRoundTrip(tst *testing.T) {
	seqs := Sequences{
		{Name: "seq1", Sequence: "ATGGGGACCATGAAG"},
		{Name: "seq2", Sequence: "ATG"},
	}
	var b bytes.Buffer
	if err := WriteFasta(&b, seqs, 80); err != nil {
		tst.Fatal("Error writing fasta:", err)
	}
	seqs2, err := ParseFasta(&b)
	if err != nil {
		tst.Fatal("Error parsing fasta:", err)
	}
	if len(seqs) != len(seqs2) {
		tst.Fatal("Wrong number of sequences:", len(seqs2))
	}
	for i := range seqs {
		if seqs[i] != seqs2[i] {
			tst.Error("Record mismatch:", seqs[i], seqs2[i])
		}
	}
}

func TestSequenceString(tst *testing.T) {
	seq := Sequence{Name: "seq1", Sequence: "ATG"}
	if seq.String() != ">seq1\nATG\n" {
		tst.Errorf("Wrong fasta rendering: %q", seq.String())
	}
	seqs := Sequences{seq, {Name: "seq2", Sequence: "GGG"}}
	if seqs.String() != ">seq1\nATG\n>seq2\nGGG" {
		tst.Errorf("Wrong fasta rendering: %q", seqs.String())
	}
	if (Sequences{}).String() != "" {
		tst.Error("Empty sequences should render to an empty string")
	}
}
