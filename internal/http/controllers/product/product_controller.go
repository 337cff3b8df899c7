// Package product contiene los controllers del catálogo.
package product

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
	dto "github.com/dropDatabas3/webshop/internal/http/dto/product"
	httperrors "github.com/dropDatabas3/webshop/internal/http/errors"
	"github.com/dropDatabas3/webshop/internal/http/helpers"
	"github.com/dropDatabas3/webshop/internal/http/middlewares"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
	"github.com/dropDatabas3/webshop/internal/service"
)

// Las imágenes viajan ya codificadas dentro del JSON; el límite de body
// las cubre con margen (3 imágenes de 100KB).
const maxProductBodySize = 512 * 1024

// Controller maneja las rutas del catálogo de productos.
type Controller struct {
	products *service.ProductService
}

// NewController crea un controller de productos.
func NewController(products *service.ProductService) *Controller {
	return &Controller{products: products}
}

// List maneja GET /api/products. Acepta q, category, limit y offset, y
// responde items más metadata de paginación.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("ProductController.List"))

	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))

	var category repository.Category
	if raw := strings.TrimSpace(q.Get("category")); raw != "" {
		parsed, ok := repository.ParseCategory(raw)
		if !ok {
			httperrors.WriteError(w, httperrors.ErrInvalidParameter.WithDetail("unknown category: "+raw))
			return
		}
		category = parsed
	}

	limit, ok := intParam(w, q.Get("limit"), service.DefaultSearchLimit)
	if !ok {
		return
	}
	offset, ok := intParam(w, q.Get("offset"), 0)
	if !ok {
		return
	}
	if limit <= 0 {
		limit = service.DefaultSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := c.products.Search(ctx, query, category, limit, offset)
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	total, err := c.products.Count(ctx, query, category)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.ListResponse{
		Items:  dto.FromProducts(items),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// Get maneja GET /api/products/{id}.
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("ProductController.Get"))

	product, err := c.products.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromProduct(product))
}

// ByOwner maneja GET /api/users/{id}/products.
func (c *Controller) ByOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("ProductController.ByOwner"))

	products, err := c.products.FindByOwnerID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromProducts(products))
}

// Create maneja POST /api/products. Requiere auth; el owner es el requester.
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("ProductController.Create"))

	var req dto.ProductRequest
	if !helpers.ReadJSON(w, r, maxProductBodySize, &req) {
		return
	}

	product, err := c.products.CreateProduct(ctx, middlewares.GetUserID(ctx), toInput(req))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, dto.FromProduct(product))
	log.Info("product created", logger.ProductID(product.ID))
}

// Update maneja PUT /api/products/{id}. Solo el owner puede actualizar.
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("ProductController.Update"))

	var req dto.ProductRequest
	if !helpers.ReadJSON(w, r, maxProductBodySize, &req) {
		return
	}

	product, err := c.products.UpdateProduct(ctx, chi.URLParam(r, "id"), middlewares.GetUserID(ctx), toInput(req))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromProduct(product))
}

// Delete maneja DELETE /api/products/{id}. Solo el owner puede borrar.
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("ProductController.Delete"))

	if err := c.products.DeleteProduct(ctx, chi.URLParam(r, "id"), middlewares.GetUserID(ctx)); err != nil {
		c.handleError(w, err, log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// toInput mapea el DTO al input del service. Una categoría desconocida se
// pasa tal cual para que el service la rechace con su regla de validación.
func toInput(req dto.ProductRequest) service.ProductInput {
	category := repository.Category(req.Category)
	if parsed, ok := repository.ParseCategory(req.Category); ok {
		category = parsed
	}
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    category,
		Images:      req.Images,
	}
}

// intParam parsea un query param numérico opcional. Devuelve false si ya
// escribió la respuesta de error.
func intParam(w http.ResponseWriter, raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		httperrors.WriteError(w, httperrors.ErrInvalidParameter.WithDetail("not a number: "+raw))
		return 0, false
	}
	return n, true
}

// handleError mapea errores del service a respuestas HTTP.
func (c *Controller) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrPriceRequired),
		errors.Is(err, service.ErrPriceMustBePositive),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrDescriptionTooLong),
		errors.Is(err, service.ErrTooManyImages),
		errors.Is(err, service.ErrImageTooLarge):
		httperrors.WriteError(w, httperrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, service.ErrProductNotFound):
		httperrors.WriteError(w, httperrors.ErrProductNotFound)
	case errors.Is(err, service.ErrNotOwner):
		httperrors.WriteError(w, httperrors.ErrNotOwner)
	default:
		log.Error("unhandled product error", logger.Err(err))
		httperrors.WriteError(w, err)
	}
}
