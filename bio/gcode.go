package bio

import "fmt"

// NCodons is the number of possible codons (4^3).
const NCodons = 64

// alphabet is the nucleotide alphabet in the order used by the NCBI
// genetic code tables.
var alphabet = [...]byte{'T', 'C', 'A', 'G'}

// GeneticCode stores a single NCBI genetic code (translation table).
type GeneticCode struct {
	// ID is the NCBI genetic code identifier.
	ID int
	// Name is the full genetic code name.
	Name string
	// ShortName is the short genetic code name (e.g. SGC0); it is
	// empty for codes which have no short name.
	ShortName string
	// Map maps codons to amino acid one-letter codes, '*' is a
	// stop-codon.
	Map map[string]byte
	// Starts has true values for start-codons.
	Starts map[string]bool
	// NCodon is the number of sense (non-stop) codons.
	NCodon int
}

// GetCodons returns a channel with every codon (64 in total).
func GetCodons() <-chan string {
	ch := make(chan string)
	var cn func(string)
	cn = func(prefix string) {
		if len(prefix) == 3 {
			ch <- prefix
		} else {
			for _, l := range alphabet {
				cn(prefix + string(l))
			}
			if len(prefix) == 0 {
				close(ch)
			}
		}
	}
	go cn("")
	return ch
}

// newGeneticCode creates a GeneticCode from ncbieaa and sncbieaa
// strings. Codons in the strings follow the TCAG order of the NCBI
// tables. It panics on malformed data since genetic codes are
// generated during the build.
func newGeneticCode(id int, name, shortName, ncbieaa, sncbieaa string) *GeneticCode {
	if len(ncbieaa) != NCodons || len(sncbieaa) != NCodons {
		panic(fmt.Sprintf("genetic code %d: wrong translation table length", id))
	}
	gcode := GeneticCode{
		ID:        id,
		Name:      name,
		ShortName: shortName,
		Map:       make(map[string]byte, NCodons),
		Starts:    make(map[string]bool),
	}
	i := 0
	for codon := range GetCodons() {
		aa := ncbieaa[i]
		gcode.Map[codon] = aa
		if aa != '*' {
			gcode.NCodon++
		}
		if sncbieaa[i] == 'M' {
			gcode.Starts[codon] = true
		}
		i++
	}
	return &gcode
}

// IsStopCodon tests if the codon is a stop-codon (DNA alphabet,
// capital letters).
func (gcode *GeneticCode) IsStopCodon(codon string) bool {
	return gcode.Map[codon] == '*'
}

// IsStartCodon tests if the codon is a start-codon (DNA alphabet,
// capital letters).
func (gcode *GeneticCode) IsStartCodon(codon string) bool {
	return gcode.Starts[codon]
}

// Translate translates a codon into an amino acid one-letter code.
// The second value is false if the codon is not in the table.
func (gcode *GeneticCode) Translate(codon string) (byte, bool) {
	aa, ok := gcode.Map[codon]
	return aa, ok
}

func (gcode *GeneticCode) String() string {
	return fmt.Sprintf("<GeneticCode: Id=%d, Name=%q, ShortName=%q, NCodon=%d>",
		gcode.ID, gcode.Name, gcode.ShortName, gcode.NCodon)
}
