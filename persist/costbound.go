package persist

// CostBoundStore adapts a Store into ida.CostBoundStore's two-argument
// shape (levelID, cost) by fixing Pack once at construction: ida itself
// takes only a bare interface so it never needs to know about badger or
// the pack-scoping concept at all.
type CostBoundStore struct {
	Store *Store
	Pack  string
}

// NewCostBoundStore builds a CostBoundStore scoped to pack.
func NewCostBoundStore(store *Store, pack string) *CostBoundStore {
	return &CostBoundStore{Store: store, Pack: pack}
}

// LoadCostBound implements ida.CostBoundStore: it reads the persisted
// IDA* cost bound for levelID, returning ok=false if none is cached yet.
func (c *CostBoundStore) LoadCostBound(levelID string) (int, bool, error) {
	raw, err := c.Store.get(c.Pack, levelID, ArtifactIDACost)
	if err == ErrNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if len(raw) < 8 {
		return 0, false, ErrShortBuffer
	}
	return int(decodeInt64(raw)), true, nil
}

// SaveCostBound implements ida.CostBoundStore: it persists cost as the
// current IDA* bound for levelID.
func (c *CostBoundStore) SaveCostBound(levelID string, cost int) error {
	return c.Store.put(c.Pack, levelID, ArtifactIDACost, encodeInt64(int64(cost)))
}

func encodeInt64(v int64) []byte {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
	return buf
}

func decodeInt64(buf []byte) int64 {
	var v int64
	for i := 0; i < 8; i++ {
		v |= int64(buf[i]) << (8 * uint(i))
	}
	return v
}
