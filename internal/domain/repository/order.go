package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una compra de un producto.
// TotalPrice se calcula una sola vez al crear la orden (snapshot del precio
// del producto en ese momento); cambios posteriores de precio no la afectan.
type Order struct {
	ID         string
	ProductID  string
	Quantity   int
	TotalPrice decimal.Decimal
	UserID     string // vacío = orden de invitado
	CreatedAt  time.Time
}

// OrderRepository define operaciones de persistencia sobre órdenes.
type OrderRepository interface {
	// Save guarda una orden (upsert por ID, last-write-wins).
	Save(ctx context.Context, order *Order) (*Order, error)

	// FindByID busca una orden por ID.
	// Retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindAll retorna todas las órdenes, sin orden garantizado.
	FindAll(ctx context.Context) ([]Order, error)

	// FindByUserID retorna las órdenes de un usuario.
	FindByUserID(ctx context.Context, userID string) ([]Order, error)

	// DeleteByID borra una orden. Retorna false si no existía.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
