package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	jwtx "github.com/dropDatabas3/webshop/internal/jwt"
	"github.com/dropDatabas3/webshop/internal/security/password"
	"github.com/dropDatabas3/webshop/internal/store/memory"
)

type authFixture struct {
	auth      *AuthService
	products  *ProductService
	favorites *FavoriteService
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()

	issuer, err := jwtx.NewIssuer("webshop-test", "test-secret", time.Hour)
	require.NoError(t, err)

	users := memory.NewUserStore()
	productStore := memory.NewProductStore()
	favoriteStore := memory.NewFavoriteStore()

	return authFixture{
		auth: NewAuthService(AuthDeps{
			Users:     users,
			Products:  productStore,
			Favorites: favoriteStore,
			Hasher:    password.NewHasher(),
			Issuer:    issuer,
		}),
		products:  NewProductService(ProductDeps{Products: productStore}),
		favorites: NewFavoriteService(FavoriteDeps{Favorites: favoriteStore, Products: productStore}),
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	result, err := fx.auth.Register(ctx, RegisterInput{
		Email:     "  Ana.Gomez@Example.COM ",
		Password:  "s3cret-pw",
		FirstName: "  Ana ",
		LastName:  " Gómez ",
	})
	require.NoError(t, err)
	require.Equal(t, "ana.gomez@example.com", result.User.Email)
	require.Equal(t, "Ana", result.User.FirstName)
	require.Equal(t, "Gómez", result.User.LastName)
	require.NotEmpty(t, result.Token)
	// El hash nunca es la contraseña en claro
	require.NotEqual(t, "s3cret-pw", result.User.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.auth.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "pw-123456"})
	require.NoError(t, err)

	// Mismo email con distinta capitalización también es duplicado
	_, err = fx.auth.Register(ctx, RegisterInput{Email: "ANA@example.com", Password: "other-pw"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin_UniformInvalidCredentials(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.auth.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "pw-123456"})
	require.NoError(t, err)

	// Email inexistente y contraseña incorrecta responden el mismo error
	_, err = fx.auth.Login(ctx, "nadie@example.com", "pw-123456")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = fx.auth.Login(ctx, "ana@example.com", "wrong-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Login correcto, con email sin normalizar
	result, err := fx.auth.Login(ctx, " ANA@example.com ", "pw-123456")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
}

func TestDeleteUser_Cascade(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	seller, err := fx.auth.Register(ctx, RegisterInput{Email: "seller@example.com", Password: "pw-123456"})
	require.NoError(t, err)
	buyer, err := fx.auth.Register(ctx, RegisterInput{Email: "buyer@example.com", Password: "pw-123456"})
	require.NoError(t, err)

	// El seller publica dos productos; el buyer marca uno como favorito
	p1, err := fx.products.CreateProduct(ctx, seller.User.ID, validInput(t))
	require.NoError(t, err)
	_, err = fx.products.CreateProduct(ctx, seller.User.ID, validInput(t))
	require.NoError(t, err)
	_, err = fx.favorites.AddFavorite(ctx, buyer.User.ID, p1.ID)
	require.NoError(t, err)

	require.NoError(t, fx.auth.DeleteUser(ctx, seller.User.ID))

	// Cuenta, productos y favoritos asociados desaparecen
	_, err = fx.auth.FindUserByID(ctx, seller.User.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	remaining, err := fx.products.FindByOwnerID(ctx, seller.User.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	favs, err := fx.favorites.FindByUserID(ctx, buyer.User.ID)
	require.NoError(t, err)
	require.Empty(t, favs)

	// Borrar de nuevo reporta NotFound
	require.ErrorIs(t, fx.auth.DeleteUser(ctx, seller.User.ID), ErrUserNotFound)
}
