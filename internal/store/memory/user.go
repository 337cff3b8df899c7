package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// UserStore implementa repository.UserRepository en memoria, con un índice
// auxiliar email→id para lookups case-insensitive. Índice y map primario se
// mutan siempre bajo el mismo lock.
type UserStore struct {
	mu         sync.RWMutex
	users      map[string]repository.User
	emailIndex map[string]string // email en minúsculas → user ID
}

// NewUserStore crea un UserStore vacío.
func NewUserStore() *UserStore {
	return &UserStore{
		users:      make(map[string]repository.User),
		emailIndex: make(map[string]string),
	}
}

func (s *UserStore) Save(_ context.Context, user *repository.User) (*repository.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Upsert: si el email cambió, retirar la entrada vieja del índice.
	if prev, ok := s.users[user.ID]; ok {
		prevKey := strings.ToLower(prev.Email)
		if prevKey != strings.ToLower(user.Email) {
			delete(s.emailIndex, prevKey)
		}
	}

	s.users[user.ID] = *user
	s.emailIndex[strings.ToLower(user.Email)] = user.ID

	saved := *user
	return &saved, nil
}

func (s *UserStore) FindByID(_ context.Context, id string) (*repository.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*repository.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.emailIndex[strings.ToLower(email)]
	return ok, nil
}

func (s *UserStore) DeleteByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	delete(s.users, id)
	delete(s.emailIndex, strings.ToLower(u.Email))
	return true, nil
}

var _ repository.UserRepository = (*UserStore)(nil)
