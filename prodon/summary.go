package main

// RunSummary stores prodon run summary information.
type RunSummary struct {
	// Version stores prodon version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// Translation is the translation run summary.
	Translation *TranslationSummary `json:"translation"`
	// TotalTime is the computations time in seconds.
	TotalTime float64 `json:"time"`
}

// TranslationSummary stores information on a single translation run.
type TranslationSummary struct {
	// Table is the name of the codon table used.
	Table string `json:"table"`
	// Policy is the unknown-codon policy name.
	Policy string `json:"policy"`
	// Records is the number of translated records.
	Records int `json:"records"`
	// Codons is the number of translated codons.
	Codons int `json:"codons"`
	// UnknownCodons is the number of codons missing from the table,
	// only computed for json output.
	UnknownCodons int `json:"unknownCodons,omitempty"`
	// Time is the translation time in seconds.
	Time float64 `json:"translationTime"`
}
