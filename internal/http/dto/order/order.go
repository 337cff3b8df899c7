// Package order contiene los DTOs de órdenes de compra.
package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// CreateOrderRequest es el body de POST /api/orders.
type CreateOrderRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse es la vista pública de una orden. UserID ausente indica
// orden de invitado.
type OrderResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	UserID     string          `json:"userId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// FromOrder mapea la entidad de dominio a la vista pública.
func FromOrder(o *repository.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt,
	}
}

// FromOrders mapea un slice de entidades a la vista pública.
func FromOrders(orders []repository.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromOrder(&orders[i]))
	}
	return out
}
