package memory

import (
	"context"
	"sync"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// OrderStore implementa repository.OrderRepository en memoria.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]repository.Order
}

// NewOrderStore crea un OrderStore vacío.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]repository.Order)}
}

func (s *OrderStore) Save(_ context.Context, order *repository.Order) (*repository.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = *order
	saved := *order
	return &saved, nil
}

func (s *OrderStore) FindByID(_ context.Context, id string) (*repository.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s *OrderStore) FindAll(_ context.Context) ([]repository.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]repository.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *OrderStore) FindByUserID(_ context.Context, userID string) ([]repository.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []repository.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *OrderStore) DeleteByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

var _ repository.OrderRepository = (*OrderStore)(nil)
