package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// OrderStore implementa repository.OrderRepository sobre la colección
// "orders". Las órdenes de invitado no llevan campo userId en el documento.
type OrderStore struct {
	coll *mongo.Collection
}

func (s *OrderStore) Save(ctx context.Context, order *repository.Order) (*repository.Order, error) {
	doc := toOrderDoc(order)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("mongo: save order: %w", err)
	}
	saved := *order
	return &saved, nil
}

func (s *OrderStore) FindByID(ctx context.Context, id string) (*repository.Order, error) {
	var doc orderDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find order: %w", err)
	}
	o, err := doc.toOrder()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderStore) FindAll(ctx context.Context) ([]repository.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *OrderStore) FindByUserID(ctx context.Context, userID string) ([]repository.Order, error) {
	// Usa user-index.
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *OrderStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("mongo: delete order: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (s *OrderStore) find(ctx context.Context, filter bson.M) ([]repository.Order, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find orders: %w", err)
	}
	defer cur.Close(ctx)

	var out []repository.Order
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo: decode order: %w", err)
		}
		o, err := doc.toOrder()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo: iterate orders: %w", err)
	}
	return out, nil
}

var _ repository.OrderRepository = (*OrderStore)(nil)
