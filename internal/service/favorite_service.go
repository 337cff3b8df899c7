package service

import (
	"context"
	"errors"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
)

// Resultados de negocio de favoritos.
var (
	ErrAlreadyFavorited = errors.New("already favorited")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteDeps contiene las dependencias del FavoriteService.
type FavoriteDeps struct {
	Favorites repository.FavoriteRepository
	Products  repository.ProductRepository
	ID        IDFunc
	Now       NowFunc
}

// FavoriteService marca y desmarca productos favoritos.
type FavoriteService struct {
	favorites repository.FavoriteRepository
	products  repository.ProductRepository
	id        IDFunc
	now       NowFunc
}

// NewFavoriteService crea un FavoriteService.
func NewFavoriteService(deps FavoriteDeps) *FavoriteService {
	return &FavoriteService{
		favorites: deps.Favorites,
		products:  deps.Products,
		id:        defaultID(deps.ID),
		now:       defaultNow(deps.Now),
	}
}

// AddFavorite chequea que el producto exista y que el par (user, product) no
// esté ya marcado. El chequeo-e-inserción no es atómico entre requests
// concurrentes del mismo usuario: dos AddFavorite simultáneos pueden crear
// duplicados. Race conocido y aceptado; el backend de documentos no ofrece
// un write condicional por este access pattern y no se inventa acá una
// garantía más fuerte que la del contrato.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, productID string) (*repository.Favorite, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("favorite"), logger.Op("AddFavorite"))

	_, err := s.products.FindByID(ctx, productID)
	if repository.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	_, err = s.favorites.FindByUserIDAndProductID(ctx, userID, productID)
	if err == nil {
		return nil, ErrAlreadyFavorited
	}
	if !repository.IsNotFound(err) {
		return nil, err
	}

	favorite := &repository.Favorite{
		ID:        s.id(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: s.now(),
	}

	saved, err := s.favorites.Save(ctx, favorite)
	if err != nil {
		return nil, err
	}
	log.Info("favorite added", logger.UserID(userID), logger.ProductID(productID))
	return saved, nil
}

// RemoveFavorite borra el favorito del par (user, product).
// Retorna ErrFavoriteNotFound si no existía.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, productID string) error {
	deleted, err := s.favorites.DeleteByUserIDAndProductID(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFavoriteNotFound
	}
	return nil
}

// FindByUserID lista los favoritos de un usuario.
func (s *FavoriteService) FindByUserID(ctx context.Context, userID string) ([]repository.Favorite, error) {
	return s.favorites.FindByUserID(ctx, userID)
}

// IsFavorited indica si el usuario ya marcó el producto.
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, productID string) (bool, error) {
	_, err := s.favorites.FindByUserIDAndProductID(ctx, userID, productID)
	if repository.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteByProductID borra todos los favoritos que referencian un producto.
// Lo invoca el cascade de borrado de cuenta; cero borrados no es error.
func (s *FavoriteService) DeleteByProductID(ctx context.Context, productID string) (int, error) {
	return s.favorites.DeleteByProductID(ctx, productID)
}
