package persist

import "github.com/katalvlaran/sokolve/zone"

// SaveSolution persists the compressed move string and push count for a
// solved level, the solution.dat artifact.
func (s *Store) SaveSolution(pack, levelID string, pushes int, compressedMoves string) error {
	buf := appendU32(nil, uint32(pushes))
	buf = append(buf, []byte(compressedMoves)...)
	return s.put(pack, levelID, ArtifactSolution, buf)
}

// LoadSolution reads back a previously saved solution, ErrNotFound if
// none is cached.
func (s *Store) LoadSolution(pack, levelID string) (pushes int, compressedMoves string, err error) {
	raw, err := s.get(pack, levelID, ArtifactSolution)
	if err != nil {
		return 0, "", err
	}
	r := byteReader{buf: raw}
	p, err := r.u32()
	if err != nil {
		return 0, "", err
	}
	return int(p), string(raw[r.pos:]), nil
}

// SaveDeductivePositions persists a set of zone-bit cells for this
// level as the deductive_positions.dat artifact. It only stores and
// returns the zone; no solver package reads or writes this artifact.
func (s *Store) SaveDeductivePositions(pack, levelID string, positions *zone.Zone) error {
	return s.put(pack, levelID, ArtifactDeductivePositions, positions.Marshal())
}

// LoadDeductivePositions reads back a previously saved set, ErrNotFound
// if none is cached.
func (s *Store) LoadDeductivePositions(pack, levelID string) (*zone.Zone, error) {
	raw, err := s.get(pack, levelID, ArtifactDeductivePositions)
	if err != nil {
		return nil, err
	}
	return zone.Unmarshal(raw)
}
