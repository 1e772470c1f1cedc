package deadlock

import (
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/zone"
)

// Default bounds for the blocked-zone stratum (§4.8 stratum 3): how many
// single-box junctions a region union may cross, how many candidate
// unions the search explores in total, and how deep the recursive
// forced-push analysis is allowed to go.
const (
	DefaultMaxJunctions      = 3
	DefaultMaxZonesGenerated = 64
	DefaultBlockedDeepness   = 10
)

// Detector runs the three deadlock strata for one level (§4.8).
type Detector struct {
	lv     *level.Level
	goals  *zone.Zone
	static *zone.Zone

	MaxJunctions      int
	MaxZonesGenerated int
	BlockedDeepness   int
}

// New builds a Detector for lv, precomputing the static deadlock zone
// once up front.
func New(lv *level.Level, goals *zone.Zone) *Detector {
	return &Detector{
		lv:                lv,
		goals:             goals,
		static:            StaticZone(lv),
		MaxJunctions:      DefaultMaxJunctions,
		MaxZonesGenerated: DefaultMaxZonesGenerated,
		BlockedDeepness:   DefaultBlockedDeepness,
	}
}

// IsDeadlocked reports whether (boxes, reach) is provably unsolvable
// (§4.8). lastPushed is the zone-bit cell the most recently pushed box
// now sits on, or -1 if no push has happened yet (e.g. the root state);
// the last-move stratum is skipped in that case since there is nothing
// to test it against.
func (d *Detector) IsDeadlocked(boxes, reach *zone.Zone, lastPushed int) bool {
	return d.check(boxes, reach, lastPushed, 0)
}

func (d *Detector) check(boxes, reach *zone.Zone, lastPushed int, depth int) bool {
	if !zone.And(boxes, d.static).IsEmpty() {
		return true
	}
	if lastPushed >= 0 && FrozenByLastMove(d.lv, d.goals, boxes, lastPushed) {
		return true
	}
	if depth >= d.BlockedDeepness {
		return false
	}
	return d.hasBlockedZone(boxes, reach, depth)
}
