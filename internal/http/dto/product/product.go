// Package product contiene los DTOs del catálogo.
package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// ProductRequest es el body de creación y actualización de productos.
// Price en nil distingue "no enviado" de un precio inválido.
type ProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
	Images      []string         `json:"images,omitempty"`
}

// ProductResponse es la vista pública de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	CategoryName string          `json:"categoryName"`
	OwnerID      string          `json:"ownerId"`
	Images       []string        `json:"images,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ListResponse es la respuesta paginada de GET /api/products.
type ListResponse struct {
	Items  []ProductResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// FromProduct mapea la entidad de dominio a la vista pública.
func FromProduct(p *repository.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Category:     string(p.Category),
		CategoryName: p.Category.DisplayName(),
		OwnerID:      p.OwnerID,
		Images:       p.Images,
		CreatedAt:    p.CreatedAt,
	}
}

// FromProducts mapea un slice de entidades. Siempre retorna un slice no-nil
// para que el JSON sea [] y no null.
func FromProducts(products []repository.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, FromProduct(&products[i]))
	}
	return out
}
