package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo publicado en el marketplace.
// Los valores son inmutables: updates reemplazan la entidad completa vía Save.
type Product struct {
	ID          string
	Name        string
	Description string // vacío = sin descripción
	Price       decimal.Decimal
	Category    Category
	OwnerID     string
	Images      []string // data-URLs codificadas, máximo 3
	CreatedAt   time.Time
}

// ProductRepository define operaciones de persistencia sobre productos.
type ProductRepository interface {
	// Save guarda un producto (upsert por ID, last-write-wins).
	Save(ctx context.Context, product *Product) (*Product, error)

	// FindByID busca un producto por ID.
	// Retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll retorna todos los productos, sin orden garantizado.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByOwnerID retorna los productos publicados por un usuario.
	FindByOwnerID(ctx context.Context, ownerID string) ([]Product, error)

	// Search filtra por substring case-insensitive sobre nombre/descripción
	// (query vacío = sin filtro) y por categoría exacta (vacía = sin filtro),
	// ordena por fecha de creación descendente y aplica offset/limit.
	// Un offset más allá del resultado retorna slice vacío, nunca error.
	Search(ctx context.Context, query string, category Category, limit, offset int) ([]Product, error)

	// Count retorna cuántos productos matchean los mismos filtros de Search.
	Count(ctx context.Context, query string, category Category) (int, error)

	// DeleteByID borra un producto. Retorna false si no existía.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// DeleteByOwnerID borra todos los productos de un owner y retorna cuántos.
	DeleteByOwnerID(ctx context.Context, ownerID string) (int, error)
}
