package search

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/sokolve/level"
)

// Tree is the transposition-table search tree (§4.10): TreeNode owns
// its Node; the close table plus closeHeap hold the frontier; the open
// table holds already-expanded nodes kept around so new successors that
// land on a previously visited state can be compared and, if cheaper,
// reparented.
type Tree struct {
	root  *TreeNode
	open  *bucketTable
	close *bucketTable
	heap  closeHeap

	// openCache tracks open-table recency under a soft capacity; its
	// eviction callback runs dead-branch GC for the evicted node.
	openCache *lru.Cache[*TreeNode, struct{}]
}

// NewTree builds a Tree rooted at root, with the open table bounded to
// openCap entries (§6 Limits.OpenTableCap).
func NewTree(root *level.Node, openCap int) (*Tree, error) {
	t := &Tree{
		open:  newBucketTable(),
		close: newBucketTable(),
		heap:  make(closeHeap, 0, 64),
	}
	t.root = newTreeNode(root, nil, 0, 0, nil)

	cache, err := lru.NewWithEvict[*TreeNode, struct{}](openCap, func(tn *TreeNode, _ struct{}) {
		t.GCUpward(tn)
	})
	if err != nil {
		return nil, fmt.Errorf("search: building open-table cache: %w", err)
	}
	t.openCache = cache
	return t, nil
}

// Root returns the tree's root node.
func (t *Tree) Root() *TreeNode { return t.root }

// SeedRoot gives the root its heuristic value and places it in close,
// the starting frontier for bounded A* (§4.11).
func (t *Tree) SeedRoot(h int) {
	t.root.setCost(0, h)
	t.root.inClose = true
	t.close.insert(t.root)
	pushClose(&t.heap, t.root)
}

// Len reports how many nodes are currently in the close-heap frontier.
func (t *Tree) Len() int { return t.heap.Len() }

// PopFrontier removes and returns the smallest-f frontier node, or false
// if the frontier is empty (§4.11 step 5: "no solution within limit").
func (t *Tree) PopFrontier() (*TreeNode, bool) {
	if t.heap.Len() == 0 {
		return nil, false
	}
	tn := popClose(&t.heap)
	tn.inClose = false
	t.close.remove(tn)
	return tn, true
}

// MoveToOpen transfers tn from close to open (§4.11 step 3).
func (t *Tree) MoveToOpen(tn *TreeNode) {
	tn.inOpen = true
	t.open.insert(tn)
	t.openCache.Add(tn, struct{}{})
}

// Insert applies the duplicate-handling rules (§4.10) for a successor
// state reached from parent at the given edge cost, with heuristic h and
// move-reconstruction metadata edge. It returns the TreeNode now
// representing that state (freshly created, or the existing one,
// possibly reparented/updated in place).
func (t *Tree) Insert(parent *TreeNode, state *level.Node, edgeCost, h int, edge EdgeInfo) *TreeNode {
	g := parent.G + edgeCost
	f := saturatingAdd(g, h)

	if existing := t.open.find(state); existing != nil {
		if f < existing.F {
			existing.Edge = &edge
			existing.reparent(parent, g)
			reSiftDescendantsInClose(existing, &t.heap)
			t.openCache.Add(existing, struct{}{}) // touch: keep recently-improved nodes warm
		}
		return existing
	}
	if existing := t.close.find(state); existing != nil {
		if f < existing.F {
			if existing.Parent != nil {
				existing.Parent.removeChild(existing)
			}
			existing.Parent = parent
			existing.Edge = &edge
			parent.Children = append(parent.Children, existing)
			existing.setCost(g, h)
			fixClose(&t.heap, existing)
		}
		return existing
	}

	tn := newTreeNode(state, parent, g, h, &edge)
	parent.Children = append(parent.Children, tn)
	tn.inClose = true
	t.close.insert(tn)
	pushClose(&t.heap, tn)
	return tn
}

// reSiftDescendantsInClose repositions every descendant of tn still in
// the close heap after tn's own g changed (§4.10: "if any descendant is
// currently in the close heap, re-sift it upward").
func reSiftDescendantsInClose(tn *TreeNode, h *closeHeap) {
	for _, c := range tn.Children {
		if c.inClose {
			fixClose(h, c)
		}
		reSiftDescendantsInClose(c, h)
	}
}

// GCUpward walks from tn up through its ancestors, deleting each dead
// subtree bottom-up as soon as it holds no node still present in close
// (§4.10 dead-branch garbage collection). Call after expanding a node
// (and whenever the open-table LRU evicts one) to keep the tree pruned.
func (t *Tree) GCUpward(tn *TreeNode) {
	for cur := tn; cur != nil; {
		parent := cur.Parent
		if !cur.liveInClose() {
			t.deleteSubtree(cur)
		}
		cur = parent
	}
}

func (t *Tree) deleteSubtree(tn *TreeNode) {
	for _, c := range tn.Children {
		t.deleteSubtree(c)
	}
	tn.Children = nil
	if tn.inOpen {
		t.open.remove(tn)
		tn.inOpen = false
	}
	if tn.inClose {
		t.close.remove(tn)
		removeClose(&t.heap, tn)
		tn.inClose = false
	}
	if tn.Parent != nil {
		tn.Parent.removeChild(tn)
	}
}
