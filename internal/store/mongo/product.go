package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// ProductStore implementa repository.ProductRepository sobre la colección
// "products".
type ProductStore struct {
	coll *mongo.Collection
}

func (s *ProductStore) Save(ctx context.Context, product *repository.Product) (*repository.Product, error) {
	doc := toProductDoc(product)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("mongo: save product: %w", err)
	}
	saved := *product
	return &saved, nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*repository.Product, error) {
	var rec productRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find product: %w", err)
	}
	p, err := rec.toProduct()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductStore) FindAll(ctx context.Context) ([]repository.Product, error) {
	return s.find(ctx, bson.M{})
}

func (s *ProductStore) FindByOwnerID(ctx context.Context, ownerID string) ([]repository.Product, error) {
	// Usa owner-index.
	return s.find(ctx, bson.M{"ownerId": ownerID})
}

func (s *ProductStore) Search(ctx context.Context, query string, category repository.Category, limit, offset int) ([]repository.Product, error) {
	matched, err := s.scanFilter(ctx, query, category)
	if err != nil {
		return nil, err
	}

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

func (s *ProductStore) Count(ctx context.Context, query string, category repository.Category) (int, error) {
	matched, err := s.scanFilter(ctx, query, category)
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// scanFilter hace full scan y filtra en proceso. No escala con el catálogo;
// limitación aceptada del backend de documentos.
func (s *ProductStore) scanFilter(ctx context.Context, query string, category repository.Category) ([]repository.Product, error) {
	all, err := s.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(query)
	matched := make([]repository.Product, 0, len(all))
	for _, p := range all {
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
	return matched, nil
}

func (s *ProductStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("mongo: delete product: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (s *ProductStore) DeleteByOwnerID(ctx context.Context, ownerID string) (int, error) {
	products, err := s.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, p := range products {
		ok, err := s.DeleteByID(ctx, p.ID)
		if err != nil {
			return deleted, err
		}
		if ok {
			deleted++
		}
	}
	return deleted, nil
}

func (s *ProductStore) find(ctx context.Context, filter bson.M) ([]repository.Product, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find products: %w", err)
	}
	defer cur.Close(ctx)

	var out []repository.Product
	for cur.Next(ctx) {
		var rec productRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("mongo: decode product: %w", err)
		}
		p, err := rec.toProduct()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo: iterate products: %w", err)
	}
	return out, nil
}

var _ repository.ProductRepository = (*ProductStore)(nil)
