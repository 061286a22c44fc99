// Command parsearch solves 24-puzzle instances with IDA* search guided
// by a PDB catalogue heuristic.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tatami-tools/puzzle24/puzzle/catalogue"
	"github.com/tatami-tools/puzzle24/puzzle/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	lastFull   bool
	pdbDir     string
	identify   bool
	jobs       int
	fsmPath    string
	transposed bool
}

func newRootCmd() *cobra.Command {
	opts := &options{jobs: 1}

	cmd := &cobra.Command{
		Use:   "parsearch <catalogue> <puzzles>",
		Short: "Solve 24-puzzle instances against a PDB catalogue with IDA*",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], args[1])
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.lastFull, "full", "F", false, "run the final iteration exhaustively")
	flags.StringVarP(&opts.pdbDir, "pdbdir", "d", ".", "directory containing PDB files")
	flags.BoolVarP(&opts.identify, "identify", "i", false, "group manifest entries into additive terms")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "worker count, 1.."+fmt.Sprint(search.MaxJobs))
	flags.StringVarP(&opts.fsmPath, "fsm", "m", "", "FSM pruner file (default: reject immediate reversal)")
	flags.BoolVarP(&opts.transposed, "transpose", "t", false, "add diagonal-transpose twin PDBs")

	return cmd
}

func run(opts *options, catPath, puzzlesPath string) error {
	if opts.jobs < 1 || opts.jobs > search.MaxJobs {
		return fmt.Errorf("parsearch: -j must be in [1, %d], got %d", search.MaxJobs, opts.jobs)
	}

	var flags catalogue.Flags
	if opts.identify {
		flags |= catalogue.Identify
	}

	cat, err := catalogue.Load(catPath, opts.pdbDir, flags, os.Stderr)
	if err != nil {
		return err
	}
	defer cat.Close()

	if opts.transposed {
		cat.AddTranspositions()
	}

	fsm := search.DefaultFSM()
	if opts.fsmPath != "" {
		f, err := os.Open(opts.fsmPath)
		if err != nil {
			return fmt.Errorf("parsearch: opening fsm file: %w", err)
		}
		loaded, err := search.Load(f)
		f.Close()
		// The original's fsm_load null check tests the newly loaded
		// FSM, not the pre-existing default: a failed load simply
		// retains fsm_simple rather than aborting the run.
		if err == nil {
			fsm = loaded
		} else {
			fmt.Fprintf(os.Stderr, "parsearch: loading fsm %s: %v (keeping default)\n", opts.fsmPath, err)
		}
	}

	puzzles, err := os.Open(puzzlesPath)
	if err != nil {
		return fmt.Errorf("parsearch: opening puzzles file: %w", err)
	}
	defer puzzles.Close()

	var searchFlags search.Flags
	if opts.lastFull {
		searchFlags |= search.LastFull
	}

	search.RunMultiple(cat, fsm, puzzles, os.Stdout, os.Stderr, opts.jobs, searchFlags)
	return nil
}
