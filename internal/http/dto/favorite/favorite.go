// Package favorite contiene los DTOs de favoritos.
package favorite

import (
	"time"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// AddFavoriteRequest es el body de POST /api/favorites.
type AddFavoriteRequest struct {
	ProductID string `json:"productId"`
}

// FavoriteResponse es la vista pública de un favorito.
type FavoriteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatusResponse es la respuesta del chequeo de estado de favorito.
type StatusResponse struct {
	ProductID string `json:"productId"`
	Favorited bool   `json:"favorited"`
}

// FromFavorite mapea la entidad de dominio a la vista pública.
func FromFavorite(f *repository.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		ProductID: f.ProductID,
		CreatedAt: f.CreatedAt,
	}
}

// FromFavorites mapea un slice de entidades a la vista pública.
func FromFavorites(favorites []repository.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, FromFavorite(&favorites[i]))
	}
	return out
}
