// Package persist is the on-disk cache layer backing cost_table.dat,
// penalty_list.dat, ida_cost.dat, solution.dat and deductive_positions.dat
// (§6 Persisted caches): a badger/v4 key-value store keyed by
// (pack, level-id, artifact), with badger's own write-ahead log
// satisfying the "atomic, crash-safe commit" requirement so Store never
// needs its own temp-file-and-rename dance.
package persist
