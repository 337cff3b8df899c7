package repository

import (
	"context"
	"time"
)

// Favorite marca un producto como favorito de un usuario.
// Invariante: a lo sumo un Favorite por par (UserID, ProductID). Se chequea
// con lookup-before-insert en el service; ver FavoriteService.AddFavorite.
type Favorite struct {
	ID        string
	UserID    string
	ProductID string
	CreatedAt time.Time
}

// FavoriteRepository define operaciones de persistencia sobre favoritos.
type FavoriteRepository interface {
	// Save guarda un favorito (upsert por ID, last-write-wins).
	Save(ctx context.Context, favorite *Favorite) (*Favorite, error)

	// FindByID busca un favorito por ID.
	// Retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id string) (*Favorite, error)

	// FindByUserID retorna los favoritos de un usuario.
	FindByUserID(ctx context.Context, userID string) ([]Favorite, error)

	// FindByUserIDAndProductID busca el favorito de un par (user, product).
	// Retorna ErrNotFound si no existe.
	FindByUserIDAndProductID(ctx context.Context, userID, productID string) (*Favorite, error)

	// DeleteByID borra un favorito. Retorna false si no existía.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// DeleteByUserIDAndProductID borra el favorito de un par (user, product).
	// Retorna false si no existía.
	DeleteByUserIDAndProductID(ctx context.Context, userID, productID string) (bool, error)

	// DeleteByProductID borra todos los favoritos de un producto y retorna
	// cuántos. Usado por el cascade de borrado de productos/usuarios.
	DeleteByProductID(ctx context.Context, productID string) (int, error)
}
