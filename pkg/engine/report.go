package engine

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/yourusername/pegsolve/internal/board"
	"github.com/yourusername/pegsolve/internal/pegid"
)

// TierCount summarises the positions with a given number of pegs.
type TierCount struct {
	Pegs  int `json:"pegs"`  // Number of pegs on the board
	Wins  int `json:"wins"`  // Positions that can be reduced to one peg
	Total int `json:"total"` // All positions with Pegs pegs
}

// Report counts the winning positions for every peg count from 1 to a full
// board. The table is only read.
func Report(t *Table) []TierCount {
	counts := make([]TierCount, 0, board.Size)
	for n := 1; n <= board.Size; n++ {
		tc := TierCount{Pegs: n, Total: pegid.Combination(board.Size, n)}
		gen := combin.NewCombinationGenerator(board.Size, n)
		combo := make([]int, n)
		for gen.Next() {
			if t.Wins(pegid.EncodeInts(gen.Combination(combo))) {
				tc.Wins++
			}
		}
		counts = append(counts, tc)
	}
	return counts
}

// WriteReport prints one "pegs: wins" line per tier.
func WriteReport(w io.Writer, counts []TierCount) error {
	for _, tc := range counts {
		if _, err := fmt.Fprintf(w, "%d: %d\n", tc.Pegs, tc.Wins); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
