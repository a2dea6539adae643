package directory

import (
	"fmt"

	"go.uber.org/zap"

	"userstore/internal/domain"
	"userstore/internal/validate"
)

// Service manages user records through a backing store.
type Service struct {
	users domain.UserStore
	log   *zap.Logger
}

// New returns a directory service backed by the given store. A nil logger
// silences activity logging.
func New(users domain.UserStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, log: log}
}

// Add checks the record's email for deliverability and persists it. An
// existing record with the same id is replaced in full.
func (s *Service) Add(u *domain.User) error {
	if !validate.IsValid(u.Email) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidEmail, u.Email)
	}
	if err := s.users.Save(u); err != nil {
		return err
	}
	s.log.Info("saved user",
		zap.Int("id", u.ID),
		zap.String("display_name", u.DisplayName()))
	return nil
}

// Get returns the record with the given id, if present.
func (s *Service) Get(id int) (*domain.User, bool) {
	return s.users.Get(id)
}

// List returns records in insertion order with offset/limit pagination.
func (s *Service) List(limit, offset int) []*domain.User {
	return s.users.List(limit, offset)
}

// Remove deletes the record with the given id, reporting whether one
// existed.
func (s *Service) Remove(id int) (bool, error) {
	removed, err := s.users.Delete(id)
	if err != nil {
		return removed, err
	}
	if removed {
		s.log.Info("removed user", zap.Int("id", id))
	}
	return removed, nil
}

// Seed persists a small set of sample users and returns them.
func (s *Service) Seed() ([]*domain.User, error) {
	alice, err := domain.NewUser(1, "Alice Johnson", "alice@example.com",
		map[string]any{"theme": "dark", "notifications": true})
	if err != nil {
		return nil, err
	}
	bob, err := domain.NewUser(2, "Bob Smith", "bob@example.com",
		map[string]any{"theme": "light", "language": "en"})
	if err != nil {
		return nil, err
	}
	carol, err := domain.NewUser(3, "Carol Davis", "carol@example.com", nil)
	if err != nil {
		return nil, err
	}

	seed := []*domain.User{alice, bob, carol}
	for _, u := range seed {
		if err := s.Add(u); err != nil {
			return nil, err
		}
	}
	return seed, nil
}

// Compile-time assertion that Service implements domain.Directory.
var _ domain.Directory = (*Service)(nil)
