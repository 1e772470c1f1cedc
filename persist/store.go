package persist

import (
	"fmt"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
)

// Artifact names one of the cache kinds §6 enumerates.
type Artifact string

const (
	ArtifactCostTable          Artifact = "cost_table"
	ArtifactPenaltyList        Artifact = "penalty_list"
	ArtifactIDACost            Artifact = "ida_cost"
	ArtifactSolution           Artifact = "solution"
	ArtifactDeductivePositions Artifact = "deductive_positions"
)

// Store is a badger-backed cache keyed by (pack, level-id, artifact),
// mirroring the teacher's practice of guarding shared state behind its
// own mutex per logically independent piece of state (core.Graph's
// muVert/muEdgeAdj split): here there is only one piece of shared state
// (the badger handle itself), so one RWMutex suffices.
type Store struct {
	mu     sync.RWMutex
	db     *badger.DB
	closed bool
}

// Open opens (creating if necessary) a badger database rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("persist: opening badger store at %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying badger handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// key builds the (pack, level-id, artifact) tuple key §6 requires.
func key(pack, levelID string, artifact Artifact) []byte {
	return []byte(pack + "/" + levelID + "/" + string(artifact))
}

// put writes raw bytes for (pack, levelID, artifact), overwriting any
// existing entry. badger's write-ahead log makes this commit atomic and
// crash-safe without Store needing its own temp-file-and-rename step.
func (s *Store) put(pack, levelID string, artifact Artifact, value []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(pack, levelID, artifact), value)
	})
}

// get reads raw bytes for (pack, levelID, artifact), returning
// ErrNotFound if no entry is cached.
func (s *Store) get(pack, levelID string, artifact Artifact) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(pack, levelID, artifact))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a cached artifact, if present; a no-op if it wasn't.
func (s *Store) Delete(pack, levelID string, artifact Artifact) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(key(pack, levelID, artifact))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}
