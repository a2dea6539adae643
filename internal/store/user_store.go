package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"userstore/internal/domain"
)

// document is the on-disk JSON shape of the full dataset. Entries decode
// as generic maps so that missing fields surface as per-record errors
// instead of zero values.
type document struct {
	Users []map[string]any `json:"users"`
}

// UserFileStore persists user records to a single JSON document on disk.
type UserFileStore struct {
	path string
	log  *zap.Logger

	mu          sync.Mutex
	cache       map[int]*domain.User
	order       []int // insertion order, drives List
	initialized bool
}

// NewUserFileStore returns a store backed by the JSON document at path.
// A nil logger silences load diagnostics.
func NewUserFileStore(path string, log *zap.Logger) *UserFileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserFileStore{
		path:  path,
		log:   log,
		cache: make(map[int]*domain.User),
	}
}

// Path returns the location of the backing file.
func (s *UserFileStore) Path() string { return s.path }

// initLocked loads the backing file on first use. Load problems degrade
// to a smaller (possibly empty) cache: the store marks itself initialized
// either way and never re-reads the file. A missing file is an empty
// store, not an error.
func (s *UserFileStore) initLocked() {
	if s.initialized {
		return
	}
	s.initialized = true

	b, err := readFile(s.path)
	if err != nil {
		s.log.Warn("failed to read user data", zap.String("path", s.path), zap.Error(err))
		return
	}
	if b == nil { // file didn’t exist
		return
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		s.log.Warn("failed to load users", zap.String("path", s.path), zap.Error(err))
		return
	}
	for _, entry := range doc.Users {
		u, err := domain.UserFromMap(entry)
		if err != nil {
			s.log.Warn("skipping bad user record", zap.String("path", s.path), zap.Error(err))
			continue
		}
		s.putLocked(u)
	}
}

// putLocked inserts u into the cache, tracking first-insertion order.
func (s *UserFileStore) putLocked(u *domain.User) {
	if _, exists := s.cache[u.ID]; !exists {
		s.order = append(s.order, u.ID)
	}
	s.cache[u.ID] = u
}

// Get returns a copy of the record with the given id, if present.
func (s *UserFileStore) Get(id int) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	u, ok := s.cache[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// List returns copies of the records in insertion order, skipping offset
// entries and returning at most limit of the rest. limit <= 0 means no
// limit. The result is a snapshot, not a live view.
func (s *UserFileStore) List(limit, offset int) []*domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.order) {
		return nil
	}
	ids := s.order[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.cache[id].Clone())
	}
	return out
}

// Save upserts a copy of u and rewrites the backing file. An existing
// record with the same id is replaced in full.
func (s *UserFileStore) Save(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	s.putLocked(u.Clone())
	return s.persistLocked()
}

// Delete removes the record with the given id. It rewrites the backing
// file only when a record was actually removed, and reports that removal
// through the bool regardless of whether the rewrite succeeded.
func (s *UserFileStore) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()

	if _, ok := s.cache[id]; !ok {
		return false, nil
	}
	delete(s.cache, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, s.persistLocked()
}

// persistLocked rewrites the backing file with the full current dataset.
// Derived fields are excluded from the document.
func (s *UserFileStore) persistLocked() error {
	doc := s.documentLocked()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := writeJSON(s.path, doc, 0o600); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}

func (s *UserFileStore) documentLocked() document {
	doc := document{Users: make([]map[string]any, 0, len(s.order))}
	for _, id := range s.order {
		u := s.cache[id]
		doc.Users = append(doc.Users, map[string]any{
			"id":          u.ID,
			"name":        u.Name,
			"email":       u.Email,
			"preferences": u.Preferences,
		})
	}
	return doc
}

// Compile-time assertion that UserFileStore implements domain.UserStore.
var _ domain.UserStore = (*UserFileStore)(nil)
