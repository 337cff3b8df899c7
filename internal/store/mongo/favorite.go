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

// FavoriteStore implementa repository.FavoriteRepository sobre la colección
// "favorites". El lookup compuesto (userId, productId) consulta user-index y
// filtra productId en proceso: la amplificación de query es aceptable y evita
// índices compuestos.
type FavoriteStore struct {
	coll *mongo.Collection
}

func (s *FavoriteStore) Save(ctx context.Context, favorite *repository.Favorite) (*repository.Favorite, error) {
	doc := toFavoriteDoc(favorite)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("mongo: save favorite: %w", err)
	}
	saved := *favorite
	return &saved, nil
}

func (s *FavoriteStore) FindByID(ctx context.Context, id string) (*repository.Favorite, error) {
	var doc favoriteDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find favorite: %w", err)
	}
	f := doc.toFavorite()
	return &f, nil
}

func (s *FavoriteStore) FindByUserID(ctx context.Context, userID string) ([]repository.Favorite, error) {
	// Usa user-index.
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *FavoriteStore) FindByUserIDAndProductID(ctx context.Context, userID, productID string) (*repository.Favorite, error) {
	byUser, err := s.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, f := range byUser {
		if f.ProductID == productID {
			found := f
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *FavoriteStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("mongo: delete favorite: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (s *FavoriteStore) DeleteByUserIDAndProductID(ctx context.Context, userID, productID string) (bool, error) {
	f, err := s.FindByUserIDAndProductID(ctx, userID, productID)
	if repository.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return s.DeleteByID(ctx, f.ID)
}

func (s *FavoriteStore) DeleteByProductID(ctx context.Context, productID string) (int, error) {
	// Usa product-index.
	favorites, err := s.find(ctx, bson.M{"productId": productID})
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, f := range favorites {
		ok, err := s.DeleteByID(ctx, f.ID)
		if err != nil {
			return deleted, err
		}
		if ok {
			deleted++
		}
	}
	return deleted, nil
}

func (s *FavoriteStore) find(ctx context.Context, filter bson.M) ([]repository.Favorite, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo: find favorites: %w", err)
	}
	defer cur.Close(ctx)

	var out []repository.Favorite
	for cur.Next(ctx) {
		var doc favoriteDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo: decode favorite: %w", err)
		}
		out = append(out, doc.toFavorite())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo: iterate favorites: %w", err)
	}
	return out, nil
}

var _ repository.FavoriteRepository = (*FavoriteStore)(nil)
