package codon

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"bitbucket.org/Marchuk/prodon/bio"
)

const usageSmallDiff = 1e-9

func TestUsage(tst *testing.T) {
	u := NewUsage()
	u.Add("ATGGGGACCATGAAG")
	if u.Total() != 5 {
		tst.Error("Expecting 5 codons, got", u.Total())
	}
	if u.Count("ATG") != 2 {
		tst.Error("Expecting 2 ATG, got", u.Count("ATG"))
	}
	for _, codon := range []string{"GGG", "ACC", "AAG"} {
		if u.Count(codon) != 1 {
			tst.Errorf("Expecting 1 %s, got %d", codon, u.Count(codon))
		}
	}
	if u.Count("TTT") != 0 {
		tst.Error("Expecting no TTT")
	}
	if math.Abs(u.Frequency("ATG")-0.4) > usageSmallDiff {
		tst.Error("Wrong ATG frequency:", u.Frequency("ATG"))
	}
}

// Codons outside the DNA alphabet and trailing nucleotides are not
// counted.
func TestUsageSkipsInvalid(tst *testing.T) {
	u := NewUsage()
	u.Add("ATGNNNAAGTT")
	if u.Total() != 2 {
		tst.Error("Expecting 2 codons, got", u.Total())
	}
	if u.Count("ATG") != 1 || u.Count("AAG") != 1 {
		tst.Error("Wrong counts")
	}
}

func TestUsageEmpty(tst *testing.T) {
	u := NewUsage()
	if u.Total() != 0 {
		tst.Error("Expecting an empty usage")
	}
	if u.Frequency("ATG") != 0 {
		tst.Error("Expecting zero frequency")
	}
	poscf := u.Positional()
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if poscf[i][j] != 0 {
				tst.Error("Expecting zero positional frequencies")
			}
		}
	}
}

func TestUsageSequences(tst *testing.T) {
	u := NewUsage()
	u.AddSequences(bio.Sequences{
		{Name: "seq1", Sequence: "ATGATG"},
		{Name: "seq2", Sequence: "ATG"},
	})
	if u.Count("ATG") != 3 || u.Total() != 3 {
		tst.Error("Wrong counts:", u.Count("ATG"), u.Total())
	}
}

func TestUsagePositional(tst *testing.T) {
	u := NewUsage()
	u.Add("ATGATGTTGGTG")
	poscf := u.Positional()

	// ATG ATG TTG GTG: position 0 is {A, A, T, G}, position 1 is
	// {T, T, T, T}, position 2 is {G, G, G, G}
	expected := [3][4]float64{
		{0.25, 0, 0.5, 0.25}, // T, C, A, G
		{1, 0, 0, 0},
		{0, 0, 0, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(poscf[i][j]-expected[i][j]) > usageSmallDiff {
				tst.Errorf("Position %d, nucleotide %d: expecting %g, got %g",
					i, j, expected[i][j], poscf[i][j])
			}
		}
	}
}

func TestUsageWriteTSV(tst *testing.T) {
	u := NewUsage()
	u.Add("ATGGGGACCATGAAG")
	var b bytes.Buffer
	if err := u.WriteTSV(&b); err != nil {
		tst.Fatal("Error writing usage report:", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != bio.NCodons+1 {
		tst.Fatal("Wrong number of lines:", len(lines))
	}
	if lines[0] != "Codon\tCount\tFrequency" {
		tst.Error("Wrong header:", lines[0])
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "ATG\t") && line != "ATG\t2\t0.4" {
			tst.Error("Wrong ATG row:", line)
		}
	}
}
