// Package penalty implements the penalty database (§4.9): a list of
// (sub-state, value) pairs asserting that any full search state
// containing that sub-state needs at least value pushes beyond the base
// assignment heuristic. Database.Match folds confirmed penalties into a
// state's heuristic; Discover runs the bounded-cost-limit sub-solver
// loop that finds new ones, driven entirely through injected callbacks
// so this package never imports the search core or heuristic packages
// that in turn depend on it.
package penalty
