package search

import "github.com/katalvlaran/sokolve/level"

// EdgeInfo is the move-reconstruction metadata for one push edge (§4.13):
// which box moved, where it ended up, the direction of its final push,
// and whether the edge was a macro delivery. The search core fills this
// in from the successor that produced a TreeNode; the root has no edge.
type EdgeInfo struct {
	BoxFrom, BoxTo int
	Dir            level.Direction
	Macro          bool
}

// TreeNode owns the canonical Node it was expanded into, its position in
// the search tree, and its current cost estimates (§4.10).
type TreeNode struct {
	State  *level.Node
	Parent *TreeNode

	// Edge describes the push that reached this node from Parent, nil
	// only for the root.
	Edge *EdgeInfo

	Children []*TreeNode

	G int // pushes from the root to this node
	H int // heuristic estimate to a solution
	F int // G + H

	// heapIndex is this node's slot in the close heap, maintained by
	// container/heap's Swap so Fix can reposition it in O(log n) after
	// an in-place cost update. -1 when the node is not in close.
	heapIndex int

	// inClose and inOpen record which table currently holds this node,
	// so duplicate handling (§4.10) doesn't need to search both.
	inClose bool
	inOpen  bool
}

// newTreeNode builds a fresh, unlinked tree node for state.
func newTreeNode(state *level.Node, parent *TreeNode, g, h int, edge *EdgeInfo) *TreeNode {
	return &TreeNode{
		State:     state,
		Parent:    parent,
		Edge:      edge,
		G:         g,
		H:         h,
		F:         saturatingAdd(g, h),
		heapIndex: -1,
	}
}

func saturatingAdd(g, h int) int {
	const infinity = 1 << 30
	if h >= infinity || g >= infinity {
		return infinity
	}
	sum := g + h
	if sum < g { // overflow
		return infinity
	}
	return sum
}

// setCost updates g/h/f in place, used by duplicate handling when a
// cheaper path to an already-known node is found.
func (t *TreeNode) setCost(g, h int) {
	t.G = g
	t.H = h
	t.F = saturatingAdd(g, h)
}

// reparent detaches t from its current parent (if any) and attaches it
// under newParent, propagating the resulting g delta to every
// descendant (§4.10 duplicate handling: open-table reparenting).
func (t *TreeNode) reparent(newParent *TreeNode, newG int) {
	if t.Parent != nil {
		t.Parent.removeChild(t)
	}
	delta := newG - t.G
	t.Parent = newParent
	if newParent != nil {
		newParent.Children = append(newParent.Children, t)
	}
	t.propagateGDelta(delta)
}

func (t *TreeNode) propagateGDelta(delta int) {
	t.setCost(t.G+delta, t.H)
	for _, c := range t.Children {
		c.propagateGDelta(delta)
	}
}

func (t *TreeNode) removeChild(c *TreeNode) {
	for i, ch := range t.Children {
		if ch == c {
			t.Children[i] = t.Children[len(t.Children)-1]
			t.Children = t.Children[:len(t.Children)-1]
			return
		}
	}
}

// liveInClose reports whether t or any descendant is still present in
// the close table, the test dead-branch GC uses to decide whether a
// subtree can be pruned (§4.10).
func (t *TreeNode) liveInClose() bool {
	if t.inClose {
		return true
	}
	for _, c := range t.Children {
		if c.liveInClose() {
			return true
		}
	}
	return false
}
