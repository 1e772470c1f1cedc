package persist

import (
	"github.com/katalvlaran/sokolve/level"
	"github.com/katalvlaran/sokolve/penalty"
	"github.com/katalvlaran/sokolve/zone"
)

// SavePenalties persists db's confirmed entries for levelID, reusing
// zone.Zone's own Marshal encoding for each entry's Boxes/Reach.
func (s *Store) SavePenalties(pack, levelID string, db *penalty.Database) error {
	return s.put(pack, levelID, ArtifactPenaltyList, encodePenaltyDatabase(db))
}

// LoadPenalties reads back a previously saved penalty database,
// ErrNotFound if none is cached.
func (s *Store) LoadPenalties(pack, levelID string) (*penalty.Database, error) {
	raw, err := s.get(pack, levelID, ArtifactPenaltyList)
	if err != nil {
		return nil, err
	}
	return decodePenaltyDatabase(raw)
}

func encodePenaltyDatabase(db *penalty.Database) []byte {
	entries := db.Entries()
	buf := appendU32(nil, uint32(len(entries)))
	for _, e := range entries {
		boxes := e.State.Boxes.Marshal()
		reach := e.State.Reach.Marshal()
		buf = appendU32(buf, uint32(e.State.Repr))
		buf = appendU32(buf, uint32(e.Value))
		buf = appendU32(buf, uint32(len(boxes)))
		buf = append(buf, boxes...)
		buf = appendU32(buf, uint32(len(reach)))
		buf = append(buf, reach...)
	}
	return buf
}

func decodePenaltyDatabase(buf []byte) (*penalty.Database, error) {
	r := byteReader{buf: buf}
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	entries := make([]penalty.Entry, count)
	for i := range entries {
		repr, err := r.u32()
		if err != nil {
			return nil, err
		}
		value, err := r.u32()
		if err != nil {
			return nil, err
		}
		boxesLen, err := r.u32()
		if err != nil {
			return nil, err
		}
		boxesRaw, err := r.bytes(int(boxesLen))
		if err != nil {
			return nil, err
		}
		boxes, err := zone.Unmarshal(boxesRaw)
		if err != nil {
			return nil, err
		}
		reachLen, err := r.u32()
		if err != nil {
			return nil, err
		}
		reachRaw, err := r.bytes(int(reachLen))
		if err != nil {
			return nil, err
		}
		reach, err := zone.Unmarshal(reachRaw)
		if err != nil {
			return nil, err
		}
		entries[i] = penalty.Entry{
			State: &level.Node{Boxes: boxes, Reach: reach, Repr: int(repr)},
			Value: int(value),
		}
	}
	return penalty.NewDatabase(entries), nil
}
