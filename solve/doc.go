// Package solve is the solver's single public entry point (§6 External
// Interfaces): Solve wires together level, costtable, deadlock, penalty,
// heuristic, and ida into the synchronous solve(level, limits, options)
// → result call the rest of the package tree exists to support, and
// reconstructs the pusher move string from the winning search tree path
// (§4.13).
package solve
