package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkordes/decom-ledger/internal/domain"
)

// memRecordStore keeps records in insertion order in a slice.
// Identifiers come from a counter, so a deleted identifier is never handed out again.
type memRecordStore struct {
	mu      sync.Mutex
	records []domain.Equipment
	lastID  int
}

// NewMemoryRecordStore constructs an empty in-process RecordStore.
// Its contents are lost when the process exits.
func NewMemoryRecordStore() RecordStore {
	return &memRecordStore{}
}

func (s *memRecordStore) Save(_ context.Context, e domain.Equipment) (domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		s.lastID++
		e.ID = s.lastID
		s.records = append(s.records, e)
		return e, nil
	}

	i := s.indexOf(e.ID)
	if i < 0 {
		return domain.Equipment{}, fmt.Errorf("repo.RecordStore.Save: id %d: %w", e.ID, domain.ErrNotFound)
	}
	s.records[i] = e
	return e, nil
}

func (s *memRecordStore) Get(_ context.Context, id int) (domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Equipment{}, domain.ErrNotFound
	}
	return s.records[i], nil
}

func (s *memRecordStore) Delete(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return true, nil
}

func (s *memRecordStore) List(_ context.Context) ([]domain.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Equipment, len(s.records))
	copy(out, s.records)
	return out, nil
}

// indexOf returns the slice position of the first record with the given id, or -1.
// The caller must hold s.mu.
func (s *memRecordStore) indexOf(id int) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
