package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// UserStore implementa repository.UserRepository sobre la colección "users".
// El email se persiste en minúsculas, así email-index sirve para lookups
// case-insensitive sin collation especial.
type UserStore struct {
	coll *mongo.Collection
}

func (s *UserStore) Save(ctx context.Context, user *repository.User) (*repository.User, error) {
	doc := toUserDoc(user)
	doc.Email = strings.ToLower(doc.Email)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("mongo: save user: %w", err)
	}
	saved := *user
	saved.Email = doc.Email
	return &saved, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*repository.User, error) {
	var doc userDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find user: %w", err)
	}
	u := doc.toUser()
	return &u, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	// Usa email-index.
	var doc userDoc
	err := s.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: find user by email: %w", err)
	}
	u := doc.toUser()
	return &u, nil
}

func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.FindByEmail(ctx, email)
	if repository.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *UserStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("mongo: delete user: %w", err)
	}
	return res.DeletedCount > 0, nil
}

var _ repository.UserRepository = (*UserStore)(nil)
