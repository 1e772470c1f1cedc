package search

import "container/heap"

// closeHeap is the min-heap of frontier tree nodes (§4.10), ordered by
// (f, h) lexicographically so states closer to the goal break ties
// first. Each element tracks its own slot via heapIndex, so a cost
// update elsewhere can call heap.Fix directly instead of searching.
type closeHeap []*TreeNode

func (h closeHeap) Len() int { return len(h) }

func (h closeHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].H < h[j].H
}

func (h closeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *closeHeap) Push(x any) {
	tn := x.(*TreeNode)
	tn.heapIndex = len(*h)
	*h = append(*h, tn)
}

func (h *closeHeap) Pop() any {
	old := *h
	n := len(old)
	tn := old[n-1]
	old[n-1] = nil
	tn.heapIndex = -1
	*h = old[:n-1]
	return tn
}

// pushClose inserts tn into h.
func pushClose(h *closeHeap, tn *TreeNode) { heap.Push(h, tn) }

// popClose removes and returns the smallest-f node.
func popClose(h *closeHeap) *TreeNode { return heap.Pop(h).(*TreeNode) }

// fixClose repositions tn after its cost changed in place.
func fixClose(h *closeHeap, tn *TreeNode) { heap.Fix(h, tn.heapIndex) }

// removeClose extracts tn from anywhere in the heap; the dead-branch GC
// calls this when pruning. A node in close that is reparented stays in
// close and is repositioned with fixClose instead.
func removeClose(h *closeHeap, tn *TreeNode) {
	if tn.heapIndex < 0 {
		return
	}
	heap.Remove(h, tn.heapIndex)
}
