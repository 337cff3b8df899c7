package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
)

// Límites de publicación.
const (
	MaxImageSizeBytes    = 100_000 // por imagen, ya codificada
	MaxImages            = 3
	MaxDescriptionLength = 2000
	DefaultSearchLimit   = 20
)

// Resultados de negocio de productos.
var (
	ErrNameRequired        = errors.New("name is required")
	ErrPriceRequired       = errors.New("price is required")
	ErrPriceMustBePositive = errors.New("price must be positive")
	ErrCategoryRequired    = errors.New("category is required")
	ErrDescriptionTooLong  = errors.New("description too long")
	ErrTooManyImages       = errors.New("too many images")
	ErrImageTooLarge       = errors.New("image too large")
	ErrProductNotFound     = errors.New("product not found")
	ErrNotOwner            = errors.New("not the owner")
)

// ProductInput son los campos editables de un producto. Price y Category en
// nil/vacío distinguen "no enviado" de un valor inválido.
type ProductInput struct {
	Name        string
	Description string
	Price       *decimal.Decimal
	Category    repository.Category
	Images      []string
}

// ProductDeps contiene las dependencias del ProductService.
type ProductDeps struct {
	Products repository.ProductRepository
	ID       IDFunc  // nil = uuid
	Now      NowFunc // nil = time.Now
}

// ProductService publica, actualiza, busca y borra productos.
type ProductService struct {
	products repository.ProductRepository
	id       IDFunc
	now      NowFunc
}

// NewProductService crea un ProductService.
func NewProductService(deps ProductDeps) *ProductService {
	return &ProductService{
		products: deps.Products,
		id:       defaultID(deps.ID),
		now:      defaultNow(deps.Now),
	}
}

// validate aplica las reglas de publicación en orden fijo:
// nombre → precio presente → precio positivo → categoría → largo de
// descripción → cantidad de imágenes → tamaño de imagen.
func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	if in.Price == nil {
		return ErrPriceRequired
	}
	if in.Price.Sign() <= 0 {
		return ErrPriceMustBePositive
	}
	if !in.Category.IsValid() {
		return ErrCategoryRequired
	}
	if len(in.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if len(in.Images) > MaxImages {
		return ErrTooManyImages
	}
	for _, img := range in.Images {
		if len(img) > MaxImageSizeBytes {
			return ErrImageTooLarge
		}
	}
	return nil
}

// CreateProduct valida y persiste un producto nuevo del owner dado.
// Descripciones en blanco se normalizan a ausentes.
func (s *ProductService) CreateProduct(ctx context.Context, ownerID string, in ProductInput) (*repository.Product, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("product"), logger.Op("CreateProduct"))

	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	product := &repository.Product{
		ID:          s.id(),
		Name:        in.Name,
		Description: normalizeDescription(in.Description),
		Price:       *in.Price,
		Category:    in.Category,
		OwnerID:     ownerID,
		Images:      in.Images,
		CreatedAt:   s.now(),
	}

	saved, err := s.products.Save(ctx, product)
	if err != nil {
		return nil, err
	}
	log.Info("product created", logger.ProductID(saved.ID), logger.UserID(ownerID))
	return saved, nil
}

// UpdateProduct re-valida las mismas reglas que CreateProduct, pero primero
// chequea existencia y ownership: un no-owner recibe ErrNotOwner sin
// importar qué tan inválidos sean los campos enviados.
func (s *ProductService) UpdateProduct(ctx context.Context, id, requestingUserID string, in ProductInput) (*repository.Product, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("product"), logger.Op("UpdateProduct"))

	existing, err := s.products.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != requestingUserID {
		return nil, ErrNotOwner
	}

	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	updated := &repository.Product{
		ID:          existing.ID,
		Name:        in.Name,
		Description: normalizeDescription(in.Description),
		Price:       *in.Price,
		Category:    in.Category,
		OwnerID:     existing.OwnerID,
		Images:      in.Images,
		CreatedAt:   existing.CreatedAt,
	}

	saved, err := s.products.Save(ctx, updated)
	if err != nil {
		return nil, err
	}
	log.Info("product updated", logger.ProductID(saved.ID))
	return saved, nil
}

// DeleteProduct chequea existencia y luego ownership, en ese orden.
func (s *ProductService) DeleteProduct(ctx context.Context, id, requestingUserID string) error {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Component("product"), logger.Op("DeleteProduct"))

	product, err := s.products.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	if product.OwnerID != requestingUserID {
		return ErrNotOwner
	}

	if _, err := s.products.DeleteByID(ctx, id); err != nil {
		return err
	}
	log.Info("product deleted", logger.ProductID(id))
	return nil
}

// FindByID retorna ErrProductNotFound si no existe.
func (s *ProductService) FindByID(ctx context.Context, id string) (*repository.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// FindAll retorna todos los productos.
func (s *ProductService) FindAll(ctx context.Context) ([]repository.Product, error) {
	return s.products.FindAll(ctx)
}

// FindByOwnerID retorna los productos de un owner.
func (s *ProductService) FindByOwnerID(ctx context.Context, ownerID string) ([]repository.Product, error) {
	return s.products.FindByOwnerID(ctx, ownerID)
}

// Search filtra y pagina el catálogo. limit <= 0 usa DefaultSearchLimit;
// offset negativo se trata como 0.
func (s *ProductService) Search(ctx context.Context, query string, category repository.Category, limit, offset int) ([]repository.Product, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.products.Search(ctx, query, category, limit, offset)
}

// Count cuenta los productos que matchean los filtros de Search.
func (s *ProductService) Count(ctx context.Context, query string, category repository.Category) (int, error) {
	return s.products.Count(ctx, query, category)
}

// DeleteByOwnerID borra todos los productos de un owner. Usado por el
// cascade de borrado de cuenta.
func (s *ProductService) DeleteByOwnerID(ctx context.Context, ownerID string) (int, error) {
	return s.products.DeleteByOwnerID(ctx, ownerID)
}

func normalizeDescription(d string) string {
	if strings.TrimSpace(d) == "" {
		return ""
	}
	return d
}
