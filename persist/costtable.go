package persist

import "github.com/katalvlaran/sokolve/costtable"

// SaveCostTable persists table for levelID as cost_table.dat's
// in-process equivalent: a length-prefixed binary encoding mirroring
// zone.Zone's own Marshal scheme (fixed-width little-endian integers,
// no reflection-based format).
func (s *Store) SaveCostTable(pack, levelID string, table *costtable.Table) error {
	return s.put(pack, levelID, ArtifactCostTable, encodeCostTable(table))
}

// LoadCostTable reads back a previously saved cost table, ErrNotFound if
// none is cached.
func (s *Store) LoadCostTable(pack, levelID string) (*costtable.Table, error) {
	raw, err := s.get(pack, levelID, ArtifactCostTable)
	if err != nil {
		return nil, err
	}
	return decodeCostTable(raw)
}

func encodeCostTable(t *costtable.Table) []byte {
	buf := make([]byte, 0, 8+4*len(t.Goals)+4*len(t.Cost)*len(t.Goals))
	buf = appendU32(buf, uint32(len(t.Goals)))
	for _, g := range t.Goals {
		buf = appendU32(buf, uint32(g))
	}
	buf = appendU32(buf, uint32(len(t.Cost)))
	for _, row := range t.Cost {
		for _, c := range row {
			buf = appendU32(buf, uint32(c))
		}
	}
	return buf
}

func decodeCostTable(buf []byte) (*costtable.Table, error) {
	r := byteReader{buf: buf}
	numGoals, err := r.u32()
	if err != nil {
		return nil, err
	}
	goals := make([]int, numGoals)
	for i := range goals {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		goals[i] = int(v)
	}
	numCells, err := r.u32()
	if err != nil {
		return nil, err
	}
	cost := make([][]int, numCells)
	for c := range cost {
		row := make([]int, numGoals)
		for j := range row {
			v, err := r.u32()
			if err != nil {
				return nil, err
			}
			row[j] = int(v)
		}
		cost[c] = row
	}
	return &costtable.Table{Goals: goals, Cost: cost}, nil
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// byteReader is a tiny cursor over a []byte, used by every artifact
// codec in this package to decode the fixed-width little-endian fields
// encodeCostTable/encodePenaltyDatabase write.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) u32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, ErrShortBuffer
	}
	b := r.buf[r.pos : r.pos+4]
	r.pos += 4
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

func (r *byteReader) bytes(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, ErrShortBuffer
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}
