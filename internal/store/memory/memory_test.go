package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
)

func product(id, owner, name string, created time.Time) *repository.Product {
	return &repository.Product{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString("10.00"),
		Category:  repository.CategoryCardio,
		OwnerID:   owner,
		CreatedAt: created,
	}
}

func TestProductStore_SaveIsUpsert(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	now := time.Now()
	_, err := s.Save(ctx, product("p1", "o1", "Cinta", now))
	require.NoError(t, err)

	// Mismo ID pisa el registro anterior (last-write-wins)
	updated := product("p1", "o1", "Cinta pro", now)
	_, err = s.Save(ctx, updated)
	require.NoError(t, err)

	got, err := s.FindByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Cinta pro", got.Name)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestProductStore_NotFoundAndIdempotentDelete(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	_, err := s.FindByID(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Borrar algo inexistente no es error, solo reporta false
	deleted, err := s.DeleteByID(ctx, "missing")
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = s.Save(ctx, product("p1", "o1", "Cinta", time.Now()))
	require.NoError(t, err)

	deleted, err = s.DeleteByID(ctx, "p1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteByID(ctx, "p1")
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestProductStore_SearchPagination(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		p := product(fmt.Sprintf("p%d", i), "o1", fmt.Sprintf("Producto %d", i), base.Add(time.Duration(i)*time.Minute))
		_, err := s.Save(ctx, p)
		require.NoError(t, err)
	}

	// Orden: más nuevo primero
	page, err := s.Search(ctx, "", "", 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "p4", page[0].ID)
	require.Equal(t, "p3", page[1].ID)

	page, err = s.Search(ctx, "", "", 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "p0", page[0].ID)

	// Offset fuera de rango es página vacía, no error
	page, err = s.Search(ctx, "", "", 2, 99)
	require.NoError(t, err)
	require.Empty(t, page)
}

func TestProductStore_SearchFilters(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	cardio := product("p1", "o1", "Cinta de correr", time.Now())
	cardio.Description = "para MARATONISTAS"
	_, err := s.Save(ctx, cardio)
	require.NoError(t, err)

	strength := product("p2", "o1", "Mancuernas", time.Now())
	strength.Category = repository.CategoryStrength
	_, err = s.Save(ctx, strength)
	require.NoError(t, err)

	// Substring case-insensitive sobre nombre
	hits, err := s.Search(ctx, "cinta", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	// También matchea sobre la descripción
	hits, err = s.Search(ctx, "maratonistas", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "p1", hits[0].ID)

	// Query y categoría se combinan con AND
	hits, err = s.Search(ctx, "cinta", repository.CategoryStrength, 10, 0)
	require.NoError(t, err)
	require.Empty(t, hits)

	count, err := s.Count(ctx, "", repository.CategoryStrength)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestProductStore_DeleteByOwnerID(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Save(ctx, product(fmt.Sprintf("a%d", i), "o1", "x", time.Now()))
		require.NoError(t, err)
	}
	_, err := s.Save(ctx, product("b1", "o2", "x", time.Now()))
	require.NoError(t, err)

	n, err := s.DeleteByOwnerID(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "b1", all[0].ID)
}

func TestUserStore_EmailIndex(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u := &repository.User{ID: "u1", Email: "ana@example.com", CreatedAt: time.Now()}
	_, err := s.Save(ctx, u)
	require.NoError(t, err)

	got, err := s.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)

	exists, err := s.ExistsByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.True(t, exists)

	// Cambiar el email invalida la clave vieja del índice
	u.Email = "ana.gomez@example.com"
	_, err = s.Save(ctx, u)
	require.NoError(t, err)

	_, err = s.FindByEmail(ctx, "ana@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)

	got, err = s.FindByEmail(ctx, "ana.gomez@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)

	// Borrar al usuario también limpia el índice
	deleted, err := s.DeleteByID(ctx, "u1")
	require.NoError(t, err)
	require.True(t, deleted)

	exists, err = s.ExistsByEmail(ctx, "ana.gomez@example.com")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFavoriteStore_CompoundOps(t *testing.T) {
	s := NewFavoriteStore()
	ctx := context.Background()

	save := func(id, user, prod string) {
		t.Helper()
		_, err := s.Save(ctx, &repository.Favorite{ID: id, UserID: user, ProductID: prod, CreatedAt: time.Now()})
		require.NoError(t, err)
	}
	save("f1", "u1", "p1")
	save("f2", "u1", "p2")
	save("f3", "u2", "p1")

	got, err := s.FindByUserIDAndProductID(ctx, "u1", "p2")
	require.NoError(t, err)
	require.Equal(t, "f2", got.ID)

	_, err = s.FindByUserIDAndProductID(ctx, "u2", "p2")
	require.ErrorIs(t, err, repository.ErrNotFound)

	deleted, err := s.DeleteByUserIDAndProductID(ctx, "u1", "p1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteByUserIDAndProductID(ctx, "u1", "p1")
	require.NoError(t, err)
	require.False(t, deleted)

	// Borrado por producto cruza usuarios
	save("f4", "u3", "p1")
	n, err := s.DeleteByProductID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	rest, err := s.FindByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, "p2", rest[0].ProductID)
}
