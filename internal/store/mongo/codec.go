package mongo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

// Los documentos guardan precios como strings decimales planos ("149.90"):
// exactos, ordenables en proceso y sin redondeo binario. Los campos
// opcionales se omiten del documento, nunca se guardan como null.

type productDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	Price       string    `bson:"price"`
	Category    string    `bson:"category"`
	OwnerID     string    `bson:"ownerId"`
	Images      []string  `bson:"images,omitempty"`
	CreatedAt   time.Time `bson:"createdAt"`
}

// productRecord es la forma de lectura: Images queda crudo para poder
// aceptar tanto el formato legacy (string suelto) como el actual (array).
type productRecord struct {
	ID          string        `bson:"_id"`
	Name        string        `bson:"name"`
	Description string        `bson:"description,omitempty"`
	Price       string        `bson:"price"`
	Category    string        `bson:"category"`
	OwnerID     string        `bson:"ownerId"`
	Images      bson.RawValue `bson:"images,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	FirstName    string    `bson:"firstName"`
	LastName     string    `bson:"lastName"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
}

type orderDoc struct {
	ID         string    `bson:"_id"`
	ProductID  string    `bson:"productId"`
	Quantity   int       `bson:"quantity"`
	TotalPrice string    `bson:"totalPrice"`
	UserID     string    `bson:"userId,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
}

type favoriteDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	ProductID string    `bson:"productId"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toProductDoc(p *repository.Product) productDoc {
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Category:    string(p.Category),
		OwnerID:     p.OwnerID,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func (r productRecord) toProduct() (repository.Product, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return repository.Product{}, fmt.Errorf("mongo: product %s: bad price %q: %w", r.ID, r.Price, err)
	}
	category, ok := repository.ParseCategory(r.Category)
	if !ok {
		// Categorías retiradas en documentos viejos caen en OTHER.
		category = repository.CategoryOther
	}
	return repository.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Category:    category,
		OwnerID:     r.OwnerID,
		Images:      normalizeImages(r.Images),
		CreatedAt:   r.CreatedAt,
	}, nil
}

// normalizeImages acepta el campo images como array de strings o como string
// suelto (documentos previos al soporte multi-imagen) y lo normaliza a lista.
// El modelo de dominio nunca ve la forma legacy.
func normalizeImages(raw bson.RawValue) []string {
	switch raw.Type {
	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return nil
		}
		images := make([]string, 0, len(values))
		for _, v := range values {
			if s, ok := v.StringValueOK(); ok {
				images = append(images, s)
			}
		}
		if len(images) == 0 {
			return nil
		}
		return images
	case bsontype.String:
		if s := raw.StringValue(); s != "" {
			return []string{s}
		}
		return nil
	default:
		return nil
	}
}

func toUserDoc(u *repository.User) userDoc {
	return userDoc{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhoneNumber:  u.PhoneNumber,
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

func (d userDoc) toUser() repository.User {
	return repository.User{
		ID:           d.ID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		PhoneNumber:  d.PhoneNumber,
		CreatedAt:    d.CreatedAt,
	}
}

func toOrderDoc(o *repository.Order) orderDoc {
	return orderDoc{
		ID:         o.ID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice.String(),
		UserID:     o.UserID,
		CreatedAt:  o.CreatedAt.UTC(),
	}
}

func (d orderDoc) toOrder() (repository.Order, error) {
	total, err := decimal.NewFromString(d.TotalPrice)
	if err != nil {
		return repository.Order{}, fmt.Errorf("mongo: order %s: bad totalPrice %q: %w", d.ID, d.TotalPrice, err)
	}
	return repository.Order{
		ID:         d.ID,
		ProductID:  d.ProductID,
		Quantity:   d.Quantity,
		TotalPrice: total,
		UserID:     d.UserID,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func toFavoriteDoc(f *repository.Favorite) favoriteDoc {
	return favoriteDoc{
		ID:        f.ID,
		UserID:    f.UserID,
		ProductID: f.ProductID,
		CreatedAt: f.CreatedAt.UTC(),
	}
}

func (d favoriteDoc) toFavorite() repository.Favorite {
	return repository.Favorite{
		ID:        d.ID,
		UserID:    d.UserID,
		ProductID: d.ProductID,
		CreatedAt: d.CreatedAt,
	}
}
