package memory

import (
	"context"
	"sync"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// FavoriteStore implementa repository.FavoriteRepository en memoria.
type FavoriteStore struct {
	mu        sync.RWMutex
	favorites map[string]repository.Favorite
}

// NewFavoriteStore crea un FavoriteStore vacío.
func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{favorites: make(map[string]repository.Favorite)}
}

func (s *FavoriteStore) Save(_ context.Context, favorite *repository.Favorite) (*repository.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites[favorite.ID] = *favorite
	saved := *favorite
	return &saved, nil
}

func (s *FavoriteStore) FindByID(_ context.Context, id string) (*repository.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.favorites[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (s *FavoriteStore) FindByUserID(_ context.Context, userID string) ([]repository.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []repository.Favorite
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *FavoriteStore) FindByUserIDAndProductID(_ context.Context, userID, productID string) (*repository.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.favorites {
		if f.UserID == userID && f.ProductID == productID {
			found := f
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FavoriteStore) DeleteByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[id]; !ok {
		return false, nil
	}
	delete(s.favorites, id)
	return true, nil
}

func (s *FavoriteStore) DeleteByUserIDAndProductID(ctx context.Context, userID, productID string) (bool, error) {
	f, err := s.FindByUserIDAndProductID(ctx, userID, productID)
	if err != nil {
		return false, nil
	}
	return s.DeleteByID(ctx, f.ID)
}

func (s *FavoriteStore) DeleteByProductID(ctx context.Context, productID string) (int, error) {
	s.mu.RLock()
	ids := make([]string, 0)
	for id, f := range s.favorites {
		if f.ProductID == productID {
			ids = append(ids, id)
		}
	}
	s.mu.RUnlock()

	deleted := 0
	for _, id := range ids {
		ok, _ := s.DeleteByID(ctx, id)
		if ok {
			deleted++
		}
	}
	return deleted, nil
}

var _ repository.FavoriteRepository = (*FavoriteStore)(nil)
