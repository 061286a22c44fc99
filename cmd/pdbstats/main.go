// Command pdbstats prints distance-distribution statistics for a
// generated PDB file.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/pdb"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	tileset string
	oneLine bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pdbstats <pdbfile>",
		Short: "Print a distance histogram and entropy statistics for a PDB file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.tileset, "tileset", "t", "", "whitespace-separated tile labels the PDB was generated over")
	cmd.Flags().BoolVarP(&opts.oneLine, "oneline", "p", false, "print a single-line histogram")

	return cmd
}

func run(opts *options, path string) error {
	if opts.tileset == "" {
		return fmt.Errorf("pdbstats: -t is required")
	}
	ts, err := parseTileset(opts.tileset)
	if err != nil {
		return err
	}

	p, err := pdb.LoadFile(ts, path)
	if err != nil {
		return err
	}

	hist := p.Histogram()
	if opts.oneLine {
		printHistogramLine(hist)
		return nil
	}
	printHistogram(hist)
	return nil
}

func parseTileset(s string) (puzzle.Tileset, error) {
	ts := puzzle.EmptyTileset
	for _, f := range strings.Fields(s) {
		t, err := strconv.Atoi(f)
		if err != nil || t < 0 || t >= puzzle.TileCount {
			return ts, fmt.Errorf("pdbstats: invalid tile label %q", f)
		}
		ts = ts.Add(t)
	}
	return ts, nil
}

func printHistogram(hist [256]uint64) {
	p := message.NewPrinter(language.English)

	var total uint64
	for d := 0; d < pdb.Unreached; d++ {
		total += hist[d]
	}

	var entropy float64
	for d := 0; d < pdb.Unreached; d++ {
		if hist[d] == 0 {
			continue
		}
		prob := float64(hist[d]) / float64(total)
		bucketEntropy := -prob * math.Log2(prob)
		entropy += bucketEntropy

		p.Printf("%3d: %v %6.2f%% %23.2fb\n", d, number.Decimal(hist[d]), prob*100, bucketEntropy)
	}

	p.Printf("unreached: %v\n", number.Decimal(hist[pdb.Unreached]))
	p.Printf("total entropy: %.4f bits\n", entropy)
	p.Printf("eta: %.6f\n", eta(hist))
}

func printHistogramLine(hist [256]uint64) {
	for d := 0; d < pdb.Unreached; d++ {
		fmt.Printf("%d ", hist[d])
	}
	fmt.Printf("%.6f\n", eta(hist))
}

// eta accumulates the effective-branching-factor estimate from the
// tail of the histogram (largest distance first) down to distance 0,
// weighting nearer distances more heavily by repeated division by the
// branching factor base.
func eta(hist [256]uint64) float64 {
	var e float64
	for d := pdb.Unreached - 1; d >= 0; d-- {
		e = e/float64(pdb.BranchingFactor) + float64(hist[d])
	}
	return e
}
