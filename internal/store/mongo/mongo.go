// Package mongo implementa los repositorios de dominio sobre MongoDB.
//
// Cada entidad vive en su propia colección, con el ID de dominio como _id y
// un índice secundario nombrado por cada foreign key consultable:
//
//	products   → owner-index   (ownerId)
//	users      → email-index   (email)
//	orders     → user-index    (userId)
//	favorites  → user-index    (userId), product-index (productId)
//
// Search/Count hacen full scan de la colección más filtrado en proceso:
// aceptable para catálogos chicos, explícitamente NO escalable. Los lookups
// compuestos (userId+productId) consultan el índice del FK primario y
// filtran el segundo predicado en proceso; no se crean índices compuestos.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collProducts  = "products"
	collUsers     = "users"
	collOrders    = "orders"
	collFavorites = "favorites"

	ownerIndex   = "owner-index"
	userIndex    = "user-index"
	productIndex = "product-index"
	emailIndex   = "email-index"
)

const connectTimeout = 10 * time.Second

// Store agrupa las colecciones y expone los repositorios concretos.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre la conexión, verifica con un ping y asegura los índices
// secundarios. El timeout operacional queda en el driver (policy del
// backend, no del dominio).
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	s := &Store{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Ping verifica que el cluster responda. Lo usa el health check.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close cierra la conexión al cluster.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Products retorna el repositorio de productos.
func (s *Store) Products() *ProductStore {
	return &ProductStore{coll: s.db.Collection(collProducts)}
}

// Users retorna el repositorio de usuarios.
func (s *Store) Users() *UserStore {
	return &UserStore{coll: s.db.Collection(collUsers)}
}

// Orders retorna el repositorio de órdenes.
func (s *Store) Orders() *OrderStore {
	return &OrderStore{coll: s.db.Collection(collOrders)}
}

// Favorites retorna el repositorio de favoritos.
func (s *Store) Favorites() *FavoriteStore {
	return &FavoriteStore{coll: s.db.Collection(collFavorites)}
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		coll  string
		field string
		name  string
	}
	indexes := []idx{
		{collProducts, "ownerId", ownerIndex},
		{collUsers, "email", emailIndex},
		{collOrders, "userId", userIndex},
		{collFavorites, "userId", userIndex},
		{collFavorites, "productId", productIndex},
	}
	for _, ix := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: ix.field, Value: 1}},
			Options: options.Index().SetName(ix.name),
		}
		if _, err := s.db.Collection(ix.coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("mongo: ensure index %s.%s: %w", ix.coll, ix.name, err)
		}
	}
	return nil
}
