package catalogue

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tatami-tools/puzzle24/puzzle"
)

// Flags controls manifest interpretation.
type Flags uint8

// Identify, when set, groups tilesets separated by blank lines into a
// single additive heuristic term (CAT_IDENTIFY in the original).
// Without it, every tileset is its own singleton term.
const Identify Flags = 1 << 0

// parseManifest reads a line-oriented manifest: each non-blank,
// non-comment line names a tileset as whitespace-separated tile
// labels; blank lines separate groups. Comment lines start with '#'.
func parseManifest(r io.Reader, flags Flags) ([][]puzzle.Tileset, error) {
	var groups [][]puzzle.Tileset
	var current []puzzle.Tileset

	flush := func() {
		if len(current) == 0 {
			return
		}
		groups = append(groups, current)
		current = nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			if flags&Identify != 0 {
				flush()
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		ts, err := parseTileset(line)
		if err != nil {
			return nil, fmt.Errorf("catalogue: manifest line %d: %w", lineNo, err)
		}

		if flags&Identify == 0 {
			groups = append(groups, []puzzle.Tileset{ts})
			continue
		}
		current = append(current, ts)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("catalogue: reading manifest: %w", err)
	}

	return groups, nil
}

// parseTileset parses whitespace-separated tile labels into a
// Tileset.
func parseTileset(line string) (puzzle.Tileset, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return puzzle.EmptyTileset, fmt.Errorf("empty tileset")
	}

	ts := puzzle.EmptyTileset
	for _, f := range fields {
		t, err := strconv.Atoi(f)
		if err != nil || t < 0 || t >= puzzle.TileCount {
			return puzzle.EmptyTileset, fmt.Errorf("invalid tile label %q", f)
		}
		if ts.Has(t) {
			return puzzle.EmptyTileset, fmt.Errorf("tile %d repeated", t)
		}
		ts = ts.Add(t)
	}
	return ts, nil
}

// fileName returns the canonical on-disk PDB file name for a tileset
// already reduced to its canonical form: the ascending tile labels,
// dash-joined.
func fileName(ts puzzle.Tileset) string {
	var b strings.Builder
	b.WriteString("ts")
	for t := ts; !t.Empty(); t = t.RemoveLeast() {
		fmt.Fprintf(&b, "-%d", t.Least())
	}
	b.WriteString(".pdb")
	return b.String()
}
