package main

import (
	"bufio"
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"
)

// Result stores timing results for a single mode and batch size.
type Result struct {
	// Mode is the table strategy name.
	Mode string `json:"mode"`
	// Records is the number of records in the batch.
	Records int `json:"records"`
	// Codons is the total number of codons in the batch.
	Codons int `json:"codons"`
	// Times stores the individual run times in seconds.
	Times []float64 `json:"times"`
	// Mean is the mean run time in seconds.
	Mean float64 `json:"mean"`
	// StdDev is the run time standard deviation.
	StdDev float64 `json:"stdDev"`
	// CodonsPerSec is the translation throughput.
	CodonsPerSec float64 `json:"codonsPerSec"`
	// Slowdown is the mean run time relative to the shared mode.
	Slowdown float64 `json:"slowdown,omitempty"`
}

// compute fills the derived fields from Times.
func (res *Result) compute() {
	res.Mean = stat.Mean(res.Times, nil)
	if len(res.Times) > 1 {
		res.StdDev = stat.StdDev(res.Times, nil)
	}
	if res.Mean > 0 {
		res.CodonsPerSec = float64(res.Codons) / res.Mean
	}
}

func (res *Result) String() string {
	s := fmt.Sprintf("%s: records=%d, mean=%.4gs (sd=%.2g), %.4g codons/s",
		res.Mode, res.Records, res.Mean, res.StdDev, res.CodonsPerSec)
	if res.Slowdown > 0 {
		s += fmt.Sprintf(", %.3gx shared", res.Slowdown)
	}
	return s
}

// writeTSV writes results in TSV format for plotting.
func writeTSV(wr io.Writer, results []*Result) error {
	bw := bufio.NewWriter(wr)
	bw.WriteString("Mode\tRecords\tCodons\tMean\tStdDev\tCodonsPerSec\n")
	for _, res := range results {
		fmt.Fprintf(bw, "%s\t%d\t%d\t%g\t%g\t%g\n",
			res.Mode, res.Records, res.Codons, res.Mean, res.StdDev, res.CodonsPerSec)
	}
	return bw.Flush()
}
