package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/webshop/internal/store/memory"
)

func TestCreateOrder_Validation(t *testing.T) {
	products := memory.NewProductStore()
	svc := NewOrderService(OrderDeps{Orders: memory.NewOrderStore(), Products: products})
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, "", 1, "user-1")
	require.ErrorIs(t, err, ErrProductIDRequired)

	_, err = svc.CreateOrder(ctx, "prod-1", 0, "user-1")
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.CreateOrder(ctx, "prod-1", -2, "user-1")
	require.ErrorIs(t, err, ErrInvalidQuantity)

	// El productID se chequea antes que la cantidad
	_, err = svc.CreateOrder(ctx, "", 0, "user-1")
	require.ErrorIs(t, err, ErrProductIDRequired)

	_, err = svc.CreateOrder(ctx, "missing", 1, "user-1")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateOrder_TotalIsSnapshot(t *testing.T) {
	store := memory.NewProductStore()
	products := NewProductService(ProductDeps{Products: store})
	orders := NewOrderService(OrderDeps{Orders: memory.NewOrderStore(), Products: store})
	ctx := context.Background()

	in := validInput(t)
	in.Price = dec(t, "19.99")
	p, err := products.CreateProduct(ctx, "owner-1", in)
	require.NoError(t, err)

	order, err := orders.CreateOrder(ctx, p.ID, 3, "user-1")
	require.NoError(t, err)
	require.True(t, order.TotalPrice.Equal(decimal.RequireFromString("59.97")),
		"got %s", order.TotalPrice)

	// Actualizar el precio no toca órdenes existentes
	in.Price = dec(t, "99.99")
	_, err = products.UpdateProduct(ctx, p.ID, "owner-1", in)
	require.NoError(t, err)

	got, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, got.TotalPrice.Equal(decimal.RequireFromString("59.97")))
}

func TestCreateOrder_Guest(t *testing.T) {
	store := memory.NewProductStore()
	products := NewProductService(ProductDeps{Products: store})
	orders := NewOrderService(OrderDeps{Orders: memory.NewOrderStore(), Products: store})
	ctx := context.Background()

	p, err := products.CreateProduct(ctx, "owner-1", validInput(t))
	require.NoError(t, err)

	order, err := orders.CreateOrder(ctx, p.ID, 1, "")
	require.NoError(t, err)
	require.Empty(t, order.UserID)

	// Las órdenes de invitado no se pueden borrar con una identidad ajena
	require.ErrorIs(t, orders.DeleteOrder(ctx, order.ID, "someone"), ErrNotOwner)
}

func TestDeleteOrder_Ownership(t *testing.T) {
	store := memory.NewProductStore()
	products := NewProductService(ProductDeps{Products: store})
	orders := NewOrderService(OrderDeps{Orders: memory.NewOrderStore(), Products: store})
	ctx := context.Background()

	p, err := products.CreateProduct(ctx, "owner-1", validInput(t))
	require.NoError(t, err)

	order, err := orders.CreateOrder(ctx, p.ID, 2, "user-1")
	require.NoError(t, err)

	require.ErrorIs(t, orders.DeleteOrder(ctx, "missing", "user-1"), ErrOrderNotFound)
	require.ErrorIs(t, orders.DeleteOrder(ctx, order.ID, "user-2"), ErrNotOwner)
	require.NoError(t, orders.DeleteOrder(ctx, order.ID, "user-1"))

	_, err = orders.FindByID(ctx, order.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestFindByUserID_OnlyOwnOrders(t *testing.T) {
	store := memory.NewProductStore()
	products := NewProductService(ProductDeps{Products: store})
	orders := NewOrderService(OrderDeps{Orders: memory.NewOrderStore(), Products: store})
	ctx := context.Background()

	p, err := products.CreateProduct(ctx, "owner-1", validInput(t))
	require.NoError(t, err)

	_, err = orders.CreateOrder(ctx, p.ID, 1, "user-1")
	require.NoError(t, err)
	_, err = orders.CreateOrder(ctx, p.ID, 2, "user-1")
	require.NoError(t, err)
	_, err = orders.CreateOrder(ctx, p.ID, 1, "user-2")
	require.NoError(t, err)

	mine, err := orders.FindByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
}
