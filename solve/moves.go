package solve

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/sokolve/boxmove"
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/search"
	"github.com/katalvlaran/sokolve/zone"
)

// buildMoves walks the solved tree from root to node, reconstructing the
// full move-grammar string (§4.13): one uppercase letter per individual
// push (a macro edge's Cost pushes each get their own letter) preceded
// by whatever lowercase walking letters get the pusher from wherever it
// is standing to behind the box it's about to push.
//
// Each edge only records the box's final destination and the direction
// of its last push, so the intermediate pushes of a macro delivery are
// recovered by re-running the same Dijkstra (boxmove.Distances) the
// search used to find the edge in the first place and replaying its
// Path from the parent state.
func buildMoves(lv *level.Level, node *search.TreeNode) string {
	edges := collectEdges(node)

	var b strings.Builder
	pusherPos := lv.Map.ToZone(lv.PusherStartGrid)
	for _, e := range edges {
		obstacles := e.parent.Boxes.Clone()
		obstacles.Clear(e.edge.BoxFrom)

		result := boxmove.Distances(lv, obstacles, e.parent.Reach, e.edge.BoxFrom)
		cells, dirs, ok := result.Path(e.edge.BoxTo)
		if !ok {
			// boxmove found no push chain to BoxTo: fall back to the
			// single push the edge itself records.
			cells = []int{e.edge.BoxTo}
			dirs = []level.Direction{e.edge.Dir}
		}

		boxCell := e.edge.BoxFrom
		for i, dest := range cells {
			dir := dirs[i]
			behind := lv.AdjZone(boxCell, dir.Opposite())
			walk := pusherPath(lv, obstacles, boxCell, pusherPos, behind)
			for _, d := range walk {
				b.WriteByte(d.MoveLetter())
			}
			b.WriteByte(dir.PushLetter())
			pusherPos = boxCell
			boxCell = dest
		}
	}
	return b.String()
}

// edgeStep pairs one tree edge with the parent state it departs from,
// which collectEdges needs for the Dijkstra replay in buildMoves.
type edgeStep struct {
	parent *level.Node
	edge   search.EdgeInfo
}

// collectEdges walks node's Parent chain back to the root and returns
// its edges in forward (root-to-node) order.
func collectEdges(node *search.TreeNode) []edgeStep {
	var out []edgeStep
	for n := node; n.Parent != nil; n = n.Parent {
		out = append(out, edgeStep{parent: n.Parent.State, edge: *n.Edge})
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// pusherPath returns the shortest sequence of directions walking the
// pusher from start to target over cells not in boxes and not equal to
// skip (the box about to be pushed, still sitting at its pre-push cell).
// Returns nil if start already equals target.
func pusherPath(lv *level.Level, boxes *zone.Zone, skip, start, target int) []level.Direction {
	if start == target {
		return nil
	}
	type queued struct {
		cell int
		dir  level.Direction
		prev int
	}
	visited := make(map[int]bool, 64)
	visited[start] = true
	cameFrom := make(map[int]queued, 64)
	queue := []int{start}
	blocked := func(z int) bool { return z == skip || boxes.Get(z) }

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == target {
			break
		}
		for _, d := range level.Directions {
			n := lv.AdjZone(cur, d)
			if n < 0 || visited[n] || blocked(n) {
				continue
			}
			visited[n] = true
			cameFrom[n] = queued{cell: n, dir: d, prev: cur}
			queue = append(queue, n)
		}
	}

	if !visited[target] {
		return nil
	}
	var rev []level.Direction
	for cur := target; cur != start; {
		step, ok := cameFrom[cur]
		if !ok {
			return nil
		}
		rev = append(rev, step.dir)
		cur = step.prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// CompressMoves run-length-encodes a move-grammar string (§6 "moves may
// be compressed with a simple run-length scheme"): each maximal run of
// an identical letter is emitted as the letter alone when the run length
// is 1, or <letter><count> otherwise. decompress(compress(s)) == s for
// every s, including the empty string.
func CompressMoves(moves string) string {
	if moves == "" {
		return ""
	}
	var b strings.Builder
	run := 1
	for i := 1; i <= len(moves); i++ {
		if i < len(moves) && moves[i] == moves[i-1] {
			run++
			continue
		}
		b.WriteByte(moves[i-1])
		if run > 1 {
			b.WriteString(strconv.Itoa(run))
		}
		run = 1
	}
	return b.String()
}

// DecompressMoves reverses CompressMoves, returning ErrInvalidCompressedMoves
// if s is not a well-formed run-length move string.
func DecompressMoves(s string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		letter := s[i]
		if !isMoveLetter(letter) {
			return "", ErrInvalidCompressedMoves
		}
		i++
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		count := 1
		if j > i {
			n, err := strconv.Atoi(s[i:j])
			if err != nil || n <= 0 {
				return "", ErrInvalidCompressedMoves
			}
			count = n
		}
		for k := 0; k < count; k++ {
			b.WriteByte(letter)
		}
		i = j
	}
	return b.String(), nil
}

func isMoveLetter(c byte) bool {
	switch c {
	case 'U', 'D', 'L', 'R', 'u', 'd', 'l', 'r':
		return true
	default:
		return false
	}
}
