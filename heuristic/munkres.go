package heuristic

import "math"

// bigCost pads non-existent box/goal slots in the assignment matrix so
// the Hungarian algorithm never chooses them over a genuine pairing.
const bigCost = math.MaxInt32 / 4

// solveAssignment runs the classic O(n^3) Hungarian algorithm (the
// Kuhn-Munkres method with row/column potentials) on a square cost
// matrix and returns, for each row, the column it was assigned to, and
// the total assigned cost.
//
// Steps, one row at a time:
//  1. Seed a fictitious zero-cost match at column 0 for the new row.
//  2. Grow an alternating tree of reachable columns, tracking the
//     smallest reduced cost (minv) to an unused column at each step.
//  3. Adjust potentials by that smallest delta so at least one new
//     column becomes reachable at zero reduced cost.
//  4. Once an unmatched column is reached, walk the alternating path
//     backward, reassigning each column on it to the row that reached it.
func solveAssignment(cost [][]int) (colForRow []int, total int) {
	n := len(cost)
	u := make([]int, n+1)
	v := make([]int, n+1)
	p := make([]int, n+1) // p[j] = row currently matched to column j (1-indexed), 0 = unmatched
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = bigCost
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := bigCost
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colForRow = make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			colForRow[p[j]-1] = j - 1
			total += cost[p[j]-1][j-1]
		}
	}
	return colForRow, total
}
