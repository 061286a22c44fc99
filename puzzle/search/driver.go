package search

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tatami-tools/puzzle24/puzzle"
	"github.com/tatami-tools/puzzle24/puzzle/catalogue"
)

// MaxJobs is the hard ceiling on worker count for RunMultiple,
// mirroring the original's compile-time PDB_MAX_JOBS.
const MaxJobs = 64

// RunMultiple reads one puzzle per line from src, searches each with
// cat and fsm, and writes one result line per solved puzzle to dst:
// "<original-line> <pathlen> <expansions> <move-sequence>". Invalid
// lines are skipped with a diagnostic to diag. jobs is clamped to
// [1, MaxJobs]; jobs == 1 runs on the calling goroutine, skipping the
// worker pool (the original skips thread creation in this case to
// simplify debugging).
func RunMultiple(cat *catalogue.Catalogue, fsm *FSM, src io.Reader, dst io.Writer, diag io.Writer, jobs int, flags Flags) {
	if jobs < 1 {
		jobs = 1
	}
	if jobs > MaxJobs {
		jobs = MaxJobs
	}

	scanner := bufio.NewScanner(src)
	var inputMu sync.Mutex
	var outputMu sync.Mutex

	worker := func() {
		for {
			inputMu.Lock()
			ok := scanner.Scan()
			var line string
			if ok {
				line = scanner.Text()
			}
			inputMu.Unlock()
			if !ok {
				return
			}

			processLine(cat, fsm, line, dst, diag, &outputMu, flags)
		}
	}

	if jobs == 1 {
		worker()
		return
	}

	var g errgroup.Group
	for w := 0; w < jobs; w++ {
		g.Go(func() error {
			worker()
			return nil
		})
	}
	_ = g.Wait()
}

func processLine(cat *catalogue.Catalogue, fsm *FSM, line string, dst, diag io.Writer, outputMu *sync.Mutex, flags Flags) {
	p, err := puzzle.Parse(line)
	if err != nil {
		if diag != nil {
			fmt.Fprintf(diag, "search: skipping line %q: %v\n", line, err)
		}
		return
	}
	if !p.Valid() {
		if diag != nil {
			fmt.Fprintf(diag, "search: skipping unsolvable puzzle %q\n", line)
		}
		return
	}

	path, expansions, err := SearchIDA(cat, fsm, &p, flags)
	if err != nil {
		if diag != nil {
			fmt.Fprintf(diag, "search: %q: %v\n", line, err)
		}
		return
	}

	var moves strings.Builder
	for i, m := range path {
		if i > 0 {
			moves.WriteByte(' ')
		}
		moves.WriteString(strconv.Itoa(m))
	}

	outputMu.Lock()
	fmt.Fprintf(dst, "%s %3d %12d %s\n", line, len(path), expansions, moves.String())
	outputMu.Unlock()
}
