// Package astar implements bounded A* (§4.11): one cost-limited search
// iteration over a github.com/katalvlaran/sokolve/search.Tree. Successors
// over cost_limit are rejected and tracked as min_reject, the tightest
// bound the next ida iteration can use; successors that survive are
// screened by github.com/katalvlaran/sokolve/deadlock before they ever
// reach the tree's duplicate-handling rules. Quick-search mode only runs
// the deadlock screen; slow mode additionally spends a small, tree-size
// scaled budget on incremental github.com/katalvlaran/sokolve/penalty
// discovery around the last-pushed box.
package astar
