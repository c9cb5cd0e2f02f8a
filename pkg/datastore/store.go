// Package datastore holds uploaded datasets in memory. Datasets are
// immutable once stored, so reads hand out the shared pointer.
package datastore

import (
	"sort"
	"sync"
	"time"

	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/google/uuid"
)

// Held is a stored dataset with its upload metadata.
type Held struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Format      string          `json:"format"`
	PersonCount int             `json:"person_count"`
	EntryCount  int             `json:"entry_count"`
	UploadedAt  time.Time       `json:"uploaded_at"`
	Dataset     *models.Dataset `json:"-"`
}

// Store is a concurrency-safe dataset registry.
type Store struct {
	mu   sync.RWMutex
	held map[string]*Held
}

// NewStore creates an empty registry.
func NewStore() *Store {
	return &Store{held: make(map[string]*Held)}
}

// Put stores a dataset under a fresh ID and returns its record.
func (s *Store) Put(name, format string, dataset *models.Dataset) *Held {
	held := &Held{
		ID:          uuid.New().String(),
		Name:        name,
		Format:      format,
		PersonCount: len(dataset.Persons),
		EntryCount:  len(dataset.Entries),
		UploadedAt:  time.Now().UTC(),
		Dataset:     dataset,
	}

	s.mu.Lock()
	s.held[held.ID] = held
	s.mu.Unlock()

	return held
}

// Get returns the record for an ID, or false if absent.
func (s *Store) Get(id string) (*Held, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	held, ok := s.held[id]
	return held, ok
}

// Delete removes a record, reporting whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.held[id]
	delete(s.held, id)
	return ok
}

// List returns all records ordered by upload time, oldest first.
func (s *Store) List() []*Held {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Held, 0, len(s.held))
	for _, held := range s.held {
		list = append(list, held)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].UploadedAt.Equal(list[j].UploadedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].UploadedAt.Before(list[j].UploadedAt)
	})
	return list
}

// Len returns the number of stored datasets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.held)
}
