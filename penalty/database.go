package penalty

import (
	"sort"

	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// Entry is one confirmed penalty (§4.9): State.Boxes is the sub-state's
// box placement, State.Reach is the pusher-zone restriction required for
// the penalty to apply, and Value is the excess pushes any full state
// covering it must pay beyond the base assignment heuristic.
type Entry struct {
	State *level.Node
	Value int
}

// Database holds confirmed penalties sorted by Value, descending, so
// Match's greedy scan always considers the most valuable match first.
type Database struct {
	entries []Entry
}

// NewDatabase builds a Database from entries, sorting a copy by Value
// descending.
func NewDatabase(entries []Entry) *Database {
	db := &Database{entries: append([]Entry(nil), entries...)}
	sort.SliceStable(db.entries, func(i, j int) bool {
		return db.entries[i].Value > db.entries[j].Value
	})
	return db
}

// Add inserts entry, keeping entries sorted by Value descending.
func (db *Database) Add(entry Entry) {
	i := sort.Search(len(db.entries), func(i int) bool {
		return db.entries[i].Value < entry.Value
	})
	db.entries = append(db.entries, Entry{})
	copy(db.entries[i+1:], db.entries[i:])
	db.entries[i] = entry
}

// Len returns the number of confirmed entries.
func (db *Database) Len() int { return len(db.entries) }

// Entries returns the underlying entries, highest value first. The
// returned slice must not be mutated.
func (db *Database) Entries() []Entry { return db.entries }

// Match computes the penalty contribution for a state (§4.7, §4.9):
// scanning entries in decreasing value order, greedily consuming
// disjoint box subsets whose required pusher zone the current reach
// satisfies, and summing their values.
func (db *Database) Match(boxes, reach *zone.Zone) int {
	remaining := boxes.Clone()
	total := 0
	for _, e := range db.entries {
		if !e.State.Boxes.IsSubsetOf(remaining) {
			continue
		}
		if !e.State.Reach.IsSubsetOf(reach) {
			continue
		}
		total += e.Value
		remaining.Minus(e.State.Boxes)
	}
	return total
}
