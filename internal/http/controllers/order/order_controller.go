// Package order contiene los controllers de órdenes de compra.
package order

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	dto "github.com/dropDatabas3/webshop/internal/http/dto/order"
	httperrors "github.com/dropDatabas3/webshop/internal/http/errors"
	"github.com/dropDatabas3/webshop/internal/http/helpers"
	"github.com/dropDatabas3/webshop/internal/http/middlewares"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
	"github.com/dropDatabas3/webshop/internal/service"
)

const maxOrderBodySize = 16 * 1024 // 16KB

// Controller maneja las rutas de órdenes.
type Controller struct {
	orders *service.OrderService
}

// NewController crea un controller de órdenes.
func NewController(orders *service.OrderService) *Controller {
	return &Controller{orders: orders}
}

// Create maneja POST /api/orders. La ruta acepta invitados: sin token, la
// orden se crea sin userID y no se puede administrar después.
func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("OrderController.Create"))

	var req dto.CreateOrderRequest
	if !helpers.ReadJSON(w, r, maxOrderBodySize, &req) {
		return
	}

	order, err := c.orders.CreateOrder(ctx, req.ProductID, req.Quantity, middlewares.GetUserID(ctx))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, dto.FromOrder(order))
	log.Info("order created", logger.OrderID(order.ID))
}

// List maneja GET /api/orders. Lista las órdenes del requester.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("OrderController.List"))

	orders, err := c.orders.FindByUserID(ctx, middlewares.GetUserID(ctx))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromOrders(orders))
}

// Get maneja GET /api/orders/{id}. Solo el dueño de la orden puede verla.
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("OrderController.Get"))

	order, err := c.orders.FindByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	if order.UserID != middlewares.GetUserID(ctx) {
		httperrors.WriteError(w, httperrors.ErrNotOwner)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromOrder(order))
}

// Delete maneja DELETE /api/orders/{id}. Solo el dueño puede borrar.
func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("OrderController.Delete"))

	if err := c.orders.DeleteOrder(ctx, chi.URLParam(r, "id"), middlewares.GetUserID(ctx)); err != nil {
		c.handleError(w, err, log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleError mapea errores del service a respuestas HTTP.
func (c *Controller) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, service.ErrProductIDRequired),
		errors.Is(err, service.ErrInvalidQuantity):
		httperrors.WriteError(w, httperrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, service.ErrProductNotFound):
		httperrors.WriteError(w, httperrors.ErrProductNotFound)
	case errors.Is(err, service.ErrOrderNotFound):
		httperrors.WriteError(w, httperrors.ErrOrderNotFound)
	case errors.Is(err, service.ErrNotOwner):
		httperrors.WriteError(w, httperrors.ErrNotOwner)
	default:
		log.Error("unhandled order error", logger.Err(err))
		httperrors.WriteError(w, err)
	}
}
