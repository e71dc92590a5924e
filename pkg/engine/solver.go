// Package engine classifies every peg solitaire position on the triangular
// board as a win or a loss.
//
// A position is a win when some sequence of jumps leaves a single peg. Every
// jump removes exactly one peg, so the classification of an n-peg position
// depends only on (n-1)-peg positions. The solver fills a table of all 2^15
// positions tier by tier, from two pegs up to the full board.
package engine

import (
	"context"
	"log/slog"
	"math/bits"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/yourusername/pegsolve/internal/board"
	"github.com/yourusername/pegsolve/internal/pegid"
)

// Outcome is the classification of one position.
type Outcome uint8

const (
	Unknown Outcome = iota // not yet classified
	Lose                   // no jump sequence reaches a single peg
	Win                    // some jump sequence reaches a single peg
)

// String returns the human-readable name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}

// Table maps every position to its outcome. Tables handed out by Solve are
// complete and must be treated as read-only.
type Table struct {
	outcomes []Outcome
}

// newTable returns a table holding only the base cases: the empty board and
// every single-peg board are already won.
func newTable() *Table {
	t := &Table{outcomes: make([]Outcome, pegid.NumStates)}
	t.outcomes[0] = Win
	for p := board.Position(0); p < board.Size; p++ {
		t.outcomes[pegid.Encode(p)] = Win
	}
	return t
}

// Outcome returns the classification of state.
func (t *Table) Outcome(state pegid.State) Outcome {
	return t.outcomes[state]
}

// Wins reports whether state can be reduced to a single peg.
func (t *Table) Wins(state pegid.State) bool {
	return t.outcomes[state] == Win
}

// Len returns the number of entries, one per position.
func (t *Table) Len() int {
	return len(t.outcomes)
}

// Complete reports whether every position has been classified.
func (t *Table) Complete() bool {
	for _, o := range t.outcomes {
		if o == Unknown {
			return false
		}
	}
	return true
}

// Options configures a Solver. The zero value searches the full state space
// on the calling goroutine.
type Options struct {
	// Workers is the number of goroutines filling a tier. Values below 2
	// run sequentially.
	Workers int

	// Symmetry searches one position per symmetry class and copies the
	// outcome to the rest of the class. Results are unchanged.
	Symmetry bool

	// OnTier, if set, is called before each tier is filled with the peg
	// count of that tier.
	OnTier func(pegs int)

	// Logger receives debug timings. Nil discards them.
	Logger *slog.Logger
}

// Solver fills outcome tables for one board topology.
type Solver struct {
	topo *board.Topology
	opts Options
	log  *slog.Logger
}

// NewSolver creates a solver for the given topology.
func NewSolver(topo *board.Topology, opts Options) *Solver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Solver{topo: topo, opts: opts, log: logger}
}

// Solve classifies every position and returns the completed table.
//
// Tiers are filled in increasing peg count and each tier is finished before
// the next one starts. A successor found unclassified yields *InvariantError.
func (s *Solver) Solve(ctx context.Context) (*Table, error) {
	table := newTable()
	start := time.Now()

	for n := 2; n <= board.Size; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.opts.OnTier != nil {
			s.opts.OnTier(n)
		}

		tierStart := time.Now()
		searched, err := s.fillTier(ctx, table, n)
		if err != nil {
			return nil, err
		}
		s.log.Debug("tier filled",
			"pegs", n,
			"states", pegid.Combination(board.Size, n),
			"searched", searched,
			"elapsed", time.Since(tierStart))
	}

	s.log.Debug("table complete", "elapsed", time.Since(start))
	return table, nil
}

// fillTier classifies every n-peg position and returns how many were
// searched directly.
func (s *Solver) fillTier(ctx context.Context, table *Table, n int) (int, error) {
	states := tierStates(n)
	if s.opts.Symmetry {
		reps := states[:0]
		for _, st := range states {
			if Canonical(st) == st {
				reps = append(reps, st)
			}
		}
		states = reps
	}

	if s.opts.Workers < 2 || len(states) == 0 {
		return len(states), s.fillStates(table, states)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	chunks := s.opts.Workers * 4
	size := (len(states) + chunks - 1) / chunks
	for lo := 0; lo < len(states); lo += size {
		part := states[lo:min(lo+size, len(states))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return s.fillStates(table, part)
		})
	}

	// Wait is the tier barrier: nothing from tier n+1 reads the table
	// before every n-peg entry is written.
	return len(states), g.Wait()
}

// fillStates classifies states and records the results. Each state (or each
// symmetry class, with Options.Symmetry) is written by exactly one caller.
func (s *Solver) fillStates(table *Table, states []pegid.State) error {
	for _, st := range states {
		outcome, err := s.classify(table, st)
		if err != nil {
			return err
		}
		if !s.opts.Symmetry {
			table.outcomes[st] = outcome
			continue
		}
		for _, img := range Orbit(st) {
			table.outcomes[img] = outcome
		}
	}
	return nil
}

// classify searches every jump from state. One winning successor is enough.
func (s *Solver) classify(table *Table, state pegid.State) (Outcome, error) {
	for w := uint16(state); w != 0; w &= w - 1 {
		from := board.Position(bits.TrailingZeros16(w))
		for _, j := range s.topo.JumpsFrom(from) {
			next, ok := TryJump(state, from, j.Over, j.To)
			if !ok {
				continue
			}
			switch table.outcomes[next] {
			case Win:
				return Win, nil
			case Unknown:
				return Unknown, &InvariantError{State: state, Successor: next}
			}
		}
	}
	return Lose, nil
}

// tierStates lists every position with exactly n pegs in lexicographic order
// of the occupied holes.
func tierStates(n int) []pegid.State {
	states := make([]pegid.State, 0, pegid.Combination(board.Size, n))
	gen := combin.NewCombinationGenerator(board.Size, n)
	combo := make([]int, n)
	for gen.Next() {
		states = append(states, pegid.EncodeInts(gen.Combination(combo)))
	}
	return states
}
