package bfsstrategy

import (
	"errors"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/search"
	"github.com/katalvlaran/sokolve/succ"
)

// DefaultMaxStates bounds exploration so the oracle never runs away on
// a level too large for brute force; Strategy is meant for small test
// fixtures, not production-sized packs.
const DefaultMaxStates = 200000

// ErrStateLimitExceeded is returned when exploration visits more than
// MaxStates distinct states without reaching a solved state.
var ErrStateLimitExceeded = errors.New("bfsstrategy: state limit exceeded before a solution was found")

// Strategy is the plain-BFS oracle. The zero value is ready to use with
// DefaultMaxStates.
type Strategy struct {
	// MaxStates caps the number of distinct states explored. Zero means
	// DefaultMaxStates.
	MaxStates int
}

var _ search.Strategy = (*Strategy)(nil)

// New returns a Strategy with DefaultMaxStates.
func New() *Strategy {
	return &Strategy{MaxStates: DefaultMaxStates}
}

// Solve explores every single-push successor of start breadth-first over
// a plain FIFO queue, carrying each state's push depth alongside it
// instead of recording transitions into a graph and re-deriving depth
// with a second traversal: the exploration is already breadth-first, so
// the first time a state is dequeued its depth is final. Macro
// (multi-push) successors are skipped: the oracle is meant to be the
// unoptimized baseline, not a second copy of the macro heuristic.
func (s *Strategy) Solve(lv *level.Level, start *level.Node) (int, bool, error) {
	limit := s.MaxStates
	if limit <= 0 {
		limit = DefaultMaxStates
	}

	if start.IsSolved(lv.Goals) {
		return 0, true, nil
	}

	type queued struct {
		node  *level.Node
		depth int
	}

	visited := map[uint64]bool{start.Key(): true}
	queue := []queued{{node: start, depth: 0}}

	for head := 0; head < len(queue); head++ {
		if len(visited) > limit {
			return 0, false, ErrStateLimitExceeded
		}
		cur := queue[head]

		for _, edge := range succ.Generate(lv, lv.Goals, cur.node) {
			if edge.Macro {
				continue
			}
			key := edge.Child.Key()
			if visited[key] {
				continue
			}
			visited[key] = true
			depth := cur.depth + 1
			if edge.Child.IsSolved(lv.Goals) {
				return depth, true, nil
			}
			queue = append(queue, queued{node: edge.Child, depth: depth})
		}
	}

	return 0, false, nil
}
