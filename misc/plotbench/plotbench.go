// plotbench creates a plot of prodon-bench timing results.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func main() {
	tsvF := flag.String("tsv", "bench.tsv", "prodon-bench TSV results")
	outF := flag.String("out", "bench.png", "output image")
	title := flag.String("title", "translation time", "plot title")
	flag.Parse()

	f, err := os.Open(*tsvF)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	modes, pts, err := readResults(f)
	if err != nil {
		panic(err)
	}

	p := plot.New()
	p.Title.Text = *title
	p.X.Label.Text = "codons"
	p.Y.Label.Text = "seconds"

	var vs []interface{}
	for _, mode := range modes {
		vs = append(vs, mode, pts[mode])
	}
	err = plotutil.AddLinePoints(p, vs...)
	if err != nil {
		panic(err)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *outF); err != nil {
		panic(err)
	}
}

// readResults reads prodon-bench TSV output and returns mean run
// times grouped by mode, in file order.
func readResults(rd io.Reader) (modes []string, pts map[string]plotter.XYs, err error) {
	pts = make(map[string]plotter.XYs)
	scanner := bufio.NewScanner(rd)
	nline := 0
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if fields[0] == "Mode" {
			continue
		}
		if len(fields) < 6 {
			return nil, nil, fmt.Errorf("line %d: expecting 6 fields", nline)
		}
		codons, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, err
		}
		mean, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, nil, err
		}
		mode := fields[0]
		if _, ok := pts[mode]; !ok {
			modes = append(modes, mode)
		}
		pts[mode] = append(pts[mode], plotter.XY{X: codons, Y: mean})
	}
	return modes, pts, scanner.Err()
}
