package zone

// Map is the bijection between a level's grid indices and zone bit
// indices (§4.2). It is built once per level by scanning the grid for
// usable cells and is immutable thereafter.
type Map struct {
	zoneToGrid []int // zoneToGrid[i] = grid index of zone bit i
	gridToZone []int // gridToZone[g] = zone bit of grid index g, or -1
}

// NewMap builds a Map from gridIsUsable, a slice indexed by grid
// position reporting whether that cell participates in the zone
// (level.New marks every non-wall cell, reachable or not). Grid positions are visited in order, so bit
// 0 is assigned to the first usable cell encountered, and so on.
func NewMap(gridIsUsable []bool) *Map {
	m := &Map{
		zoneToGrid: make([]int, 0, len(gridIsUsable)),
		gridToZone: make([]int, len(gridIsUsable)),
	}
	for g, usable := range gridIsUsable {
		if usable {
			m.gridToZone[g] = len(m.zoneToGrid)
			m.zoneToGrid = append(m.zoneToGrid, g)
		} else {
			m.gridToZone[g] = -1
		}
	}
	return m
}

// Len returns Z, the number of usable cells (bits in the zone).
func (m *Map) Len() int { return len(m.zoneToGrid) }

// ToGrid maps a zone bit index to its grid index.
func (m *Map) ToGrid(zoneIdx int) int { return m.zoneToGrid[zoneIdx] }

// ToZone maps a grid index to its zone bit index, or -1 if that grid
// cell is a wall or otherwise outside the zone.
func (m *Map) ToZone(gridIdx int) int { return m.gridToZone[gridIdx] }
