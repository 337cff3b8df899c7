package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
)

// Resultados de negocio de órdenes.
var (
	ErrProductIDRequired = errors.New("productId is required")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrOrderNotFound     = errors.New("order not found")
)

// OrderDeps contiene las dependencias del OrderService.
type OrderDeps struct {
	Orders   repository.OrderRepository
	Products repository.ProductRepository
	ID       IDFunc
	Now      NowFunc
}

// OrderService crea y administra órdenes de compra.
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	id       IDFunc
	now      NowFunc
}

// NewOrderService crea un OrderService.
func NewOrderService(deps OrderDeps) *OrderService {
	return &OrderService{
		orders:   deps.Orders,
		products: deps.Products,
		id:       defaultID(deps.ID),
		now:      defaultNow(deps.Now),
	}
}

// CreateOrder valida productID presente, quantity >= 1 y existencia del
// producto, en ese orden. TotalPrice se calcula una sola vez con el precio
// vigente del producto (snapshot): updates posteriores no afectan órdenes
// existentes. userID vacío crea una orden de invitado.
func (s *OrderService) CreateOrder(ctx context.Context, productID string, quantity int, userID string) (*repository.Order, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("order"), logger.Op("CreateOrder"))

	if productID == "" {
		return nil, ErrProductIDRequired
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, productID)
	if repository.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	order := &repository.Order{
		ID:         s.id(),
		ProductID:  product.ID,
		Quantity:   quantity,
		TotalPrice: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		UserID:     userID,
		CreatedAt:  s.now(),
	}

	saved, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}
	log.Info("order created", logger.OrderID(saved.ID), logger.ProductID(productID))
	return saved, nil
}

// FindByID retorna ErrOrderNotFound si no existe.
func (s *OrderService) FindByID(ctx context.Context, id string) (*repository.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// FindByUserID retorna las órdenes de un usuario.
func (s *OrderService) FindByUserID(ctx context.Context, userID string) ([]repository.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

// DeleteOrder chequea existencia y luego que el requester sea el dueño de
// la orden, en ese orden. Las órdenes de invitado (sin userID) no se pueden
// borrar por esta vía.
func (s *OrderService) DeleteOrder(ctx context.Context, id, requestingUserID string) error {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("order"), logger.Op("DeleteOrder"))

	order, err := s.orders.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	if order.UserID != requestingUserID {
		return ErrNotOwner
	}

	if _, err := s.orders.DeleteByID(ctx, id); err != nil {
		return err
	}
	log.Info("order deleted", logger.OrderID(id))
	return nil
}
