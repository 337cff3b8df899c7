// Package favorite contiene los controllers de favoritos.
package favorite

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	dto "github.com/dropDatabas3/webshop/internal/http/dto/favorite"
	httperrors "github.com/dropDatabas3/webshop/internal/http/errors"
	"github.com/dropDatabas3/webshop/internal/http/helpers"
	"github.com/dropDatabas3/webshop/internal/http/middlewares"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
	"github.com/dropDatabas3/webshop/internal/service"
)

const maxFavoriteBodySize = 4 * 1024 // 4KB

// Controller maneja las rutas de favoritos. Todas requieren auth.
type Controller struct {
	favorites *service.FavoriteService
}

// NewController crea un controller de favoritos.
func NewController(favorites *service.FavoriteService) *Controller {
	return &Controller{favorites: favorites}
}

// Add maneja POST /api/favorites.
func (c *Controller) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("FavoriteController.Add"))

	var req dto.AddFavoriteRequest
	if !helpers.ReadJSON(w, r, maxFavoriteBodySize, &req) {
		return
	}
	if req.ProductID == "" {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("productId is required"))
		return
	}

	favorite, err := c.favorites.AddFavorite(ctx, middlewares.GetUserID(ctx), req.ProductID)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, dto.FromFavorite(favorite))
}

// Remove maneja DELETE /api/favorites/{productId}.
func (c *Controller) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("FavoriteController.Remove"))

	err := c.favorites.RemoveFavorite(ctx, middlewares.GetUserID(ctx), chi.URLParam(r, "productId"))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List maneja GET /api/favorites.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("FavoriteController.List"))

	favorites, err := c.favorites.FindByUserID(ctx, middlewares.GetUserID(ctx))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromFavorites(favorites))
}

// Status maneja GET /api/favorites/{productId}. Responde si el producto está
// marcado por el requester; nunca 404 para no filtrar existencia de marcas.
func (c *Controller) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("FavoriteController.Status"))

	productID := chi.URLParam(r, "productId")
	favorited, err := c.favorites.IsFavorited(ctx, middlewares.GetUserID(ctx), productID)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.StatusResponse{ProductID: productID, Favorited: favorited})
}

// handleError mapea errores del service a respuestas HTTP.
func (c *Controller) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		httperrors.WriteError(w, httperrors.ErrProductNotFound)
	case errors.Is(err, service.ErrAlreadyFavorited):
		httperrors.WriteError(w, httperrors.ErrAlreadyFavorited)
	case errors.Is(err, service.ErrFavoriteNotFound):
		httperrors.WriteError(w, httperrors.ErrFavoriteNotFound)
	default:
		log.Error("unhandled favorite error", logger.Err(err))
		httperrors.WriteError(w, err)
	}
}
