// Package heuristic computes h(n) (§4.7): an assignment lower bound from
// boxes to goals over the per-level goal-cost table, plus the penalty
// database's contribution. Feasibility (can every box reach some goal at
// all) is pre-checked with Kuhn's augmenting-path bipartite matching
// over the box/goal adjacency the goal-cost table already implies,
// before paying for the O(n^3) Hungarian assignment; no pack repo ships
// a ready-made Munkres solver, so the assignment itself is a
// from-scratch implementation (see the module's grounding ledger).
package heuristic
