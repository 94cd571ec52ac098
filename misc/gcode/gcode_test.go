package main

import (
	"strings"
	"testing"
)

var gcPrt = `--**************************************************************************
--  This is a copy of the NCBI genetic code table
--**************************************************************************

Genetic-code-table ::= {
 {
  name "Standard" ,
  name "SGC0" ,
  id 1 ,
  ncbieaa  "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
  sncbieaa "---M------**--*----M---------------M----------------------------"
  -- Base1  TTTTTTTTTTTTTTTTCCCCCCCCCCCCCCCCAAAAAAAAAAAAAAAAGGGGGGGGGGGGGGGG
  -- Base2  TTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGG
  -- Base3  TCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAG
 } ,
 {
  name "Vertebrate
 Mitochondrial" ,
  name "SGC1" ,
  id 2 ,
  ncbieaa  "FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
  sncbieaa "----------**--------------------MMMM----------**---M------------"
  -- Base1  TTTTTTTTTTTTTTTTCCCCCCCCCCCCCCCCAAAAAAAAAAAAAAAAGGGGGGGGGGGGGGGG
  -- Base2  TTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGG
  -- Base3  TCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAG
 }
}
`

func TestParseAsn1(tst *testing.T) {
	gcodes, err := ParseAsn1(strings.NewReader(gcPrt))
	if err != nil {
		tst.Fatal("Error parsing genetic codes:", err)
	}
	if len(gcodes) != 2 {
		tst.Fatal("Expecting 2 genetic codes, got", len(gcodes))
	}

	std := gcodes[0]
	if std.ID != 1 || std.Name != "Standard" || std.ShortName != "SGC0" {
		tst.Error("Wrong first code:", std)
	}

	// the wrapped name should come out as a single line
	mito := gcodes[1]
	if mito.ID != 2 || mito.Name != "Vertebrate Mitochondrial" || mito.ShortName != "SGC1" {
		tst.Error("Wrong second code:", mito)
	}
	if len(mito.Ncbieaa) != 64 || len(mito.Sncbieaa) != 64 {
		tst.Error("Expecting 64 symbols in the code strings:", mito)
	}

	want := `newGeneticCode(1,
"Standard",
"SGC0",
"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
"---M------**--*----M---------------M----------------------------")`
	if s := std.GoString(); s != want {
		tst.Errorf("Wrong generated code:\n%s\nexpecting:\n%s", s, want)
	}
}

func TestParseAsn1Errors(tst *testing.T) {
	cases := []string{
		"",
		"Genetic-code-table",
		"Genetic-code-table ::= { { name \"X\" , id 1 }",
		"Gene-table ::= { }",
		"Genetic-code-table ::= { ; }",
	}
	for _, c := range cases {
		if _, err := ParseAsn1(strings.NewReader(c)); err == nil {
			tst.Errorf("Expecting an error for %q", c)
		}
	}
}
