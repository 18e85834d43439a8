package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flavono123/curio/internal/config"
	"github.com/flavono123/curio/internal/registry"
)

var (
	ErrDuplicateName = errors.New("a saved search with this name already exists for this attribute")
	ErrNotFound      = errors.New("saved search not found")
)

// savedSearchStore is the JSON file structure.
type savedSearchStore struct {
	Searches []SavedSearch `json:"searches"`
}

// Store manages persistent storage for saved searches.
type Store struct {
	path string
	data *savedSearchStore
	mu   sync.RWMutex
}

// NewStore creates a new store with the default path.
func NewStore() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	return &Store{
		path: filepath.Join(dir, "saved-searches.json"),
		data: &savedSearchStore{Searches: []SavedSearch{}},
	}, nil
}

// Load reads the store from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = &savedSearchStore{Searches: []SavedSearch{}}
		return nil
	}
	if err != nil {
		return err
	}

	var store savedSearchStore
	if err := json.Unmarshal(data, &store); err != nil {
		// Backup corrupted file and start fresh
		backupPath := s.path + ".backup." + time.Now().Format("20060102150405")
		_ = os.WriteFile(backupPath, data, 0644)
		s.data = &savedSearchStore{Searches: []SavedSearch{}}
		return nil
	}

	s.data = &store
	return nil
}

// Save writes the store to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// ListAll returns all saved searches.
func (s *Store) ListAll() []SavedSearch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]SavedSearch, len(s.data.Searches))
	copy(result, s.data.Searches)
	return result
}

// ListByAttribute returns saved searches for a specific attribute.
func (s *Store) ListByAttribute(attribute string) []SavedSearch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []SavedSearch
	for _, ss := range s.data.Searches {
		if ss.Criteria.Attribute == attribute {
			result = append(result, ss)
		}
	}
	return result
}

// Get returns a saved search by ID.
func (s *Store) Get(id string) (*SavedSearch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ss := range s.data.Searches {
		if ss.ID == id {
			return &ss, nil
		}
	}
	return nil, ErrNotFound
}

// Create adds a new saved search.
func (s *Store) Create(name string, criteria registry.SearchCriteria) (*SavedSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check for duplicate name within same attribute
	for _, ss := range s.data.Searches {
		if ss.Criteria.Attribute == criteria.Attribute && ss.Name == name {
			return nil, ErrDuplicateName
		}
	}

	now := time.Now()
	search := SavedSearch{
		ID:        uuid.New().String(),
		Name:      name,
		Criteria:  criteria,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.data.Searches = append(s.data.Searches, search)
	return &search, nil
}

// Delete removes a saved search by ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ss := range s.data.Searches {
		if ss.ID == id {
			s.data.Searches = append(s.data.Searches[:i], s.data.Searches[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Rename updates the name of a saved search.
func (s *Store) Rename(id string, newName string) (*SavedSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *SavedSearch
	var targetIdx int
	for i := range s.data.Searches {
		if s.data.Searches[i].ID == id {
			target = &s.data.Searches[i]
			targetIdx = i
			break
		}
	}
	if target == nil {
		return nil, ErrNotFound
	}

	// Check for duplicate name within same attribute (excluding self)
	for _, ss := range s.data.Searches {
		if ss.Criteria.Attribute == target.Criteria.Attribute && ss.Name == newName && ss.ID != id {
			return nil, ErrDuplicateName
		}
	}

	s.data.Searches[targetIdx].Name = newName
	s.data.Searches[targetIdx].UpdatedAt = time.Now()

	result := s.data.Searches[targetIdx]
	return &result, nil
}
