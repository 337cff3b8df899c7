package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// ProductStore implementa repository.ProductRepository en memoria.
type ProductStore struct {
	mu       sync.RWMutex
	products map[string]repository.Product
}

// NewProductStore crea un ProductStore vacío.
func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[string]repository.Product)}
}

func (s *ProductStore) Save(_ context.Context, product *repository.Product) (*repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	saved := *product
	return &saved, nil
}

func (s *ProductStore) FindByID(_ context.Context, id string) (*repository.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *ProductStore) FindAll(_ context.Context) ([]repository.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]repository.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *ProductStore) FindByOwnerID(_ context.Context, ownerID string) ([]repository.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []repository.Product
	for _, p := range s.products {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *ProductStore) Search(_ context.Context, query string, category repository.Category, limit, offset int) ([]repository.Product, error) {
	matched := s.filter(query, category)

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []repository.Product{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *ProductStore) Count(_ context.Context, query string, category repository.Category) (int, error) {
	return len(s.filter(query, category)), nil
}

// filter aplica substring case-insensitive sobre nombre/descripción y match
// exacto de categoría. Query y categoría vacías no filtran.
func (s *ProductStore) filter(query string, category repository.Category) []repository.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowerQuery := strings.ToLower(query)
	matched := make([]repository.Product, 0, len(s.products))
	for _, p := range s.products {
		if lowerQuery != "" &&
			!strings.Contains(strings.ToLower(p.Name), lowerQuery) &&
			!strings.Contains(strings.ToLower(p.Description), lowerQuery) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func (s *ProductStore) DeleteByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

func (s *ProductStore) DeleteByOwnerID(ctx context.Context, ownerID string) (int, error) {
	s.mu.RLock()
	ids := make([]string, 0)
	for id, p := range s.products {
		if p.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	s.mu.RUnlock()

	// Borrado por clave, no atómico como conjunto: un insert concurrente
	// del mismo owner puede sobrevivir al cascade.
	deleted := 0
	for _, id := range ids {
		ok, _ := s.DeleteByID(ctx, id)
		if ok {
			deleted++
		}
	}
	return deleted, nil
}

var _ repository.ProductRepository = (*ProductStore)(nil)
