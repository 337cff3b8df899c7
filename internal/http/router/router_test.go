package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	authctrl "github.com/dropDatabas3/webshop/internal/http/controllers/auth"
	favoritectrl "github.com/dropDatabas3/webshop/internal/http/controllers/favorite"
	healthctrl "github.com/dropDatabas3/webshop/internal/http/controllers/health"
	orderctrl "github.com/dropDatabas3/webshop/internal/http/controllers/order"
	productctrl "github.com/dropDatabas3/webshop/internal/http/controllers/product"
	"github.com/dropDatabas3/webshop/internal/http/router"
	jwtx "github.com/dropDatabas3/webshop/internal/jwt"
	"github.com/dropDatabas3/webshop/internal/security/password"
	"github.com/dropDatabas3/webshop/internal/service"
	"github.com/dropDatabas3/webshop/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	issuer, err := jwtx.NewIssuer("webshop-test", "test-secret", time.Hour)
	require.NoError(t, err)

	users := memory.NewUserStore()
	products := memory.NewProductStore()
	orders := memory.NewOrderStore()
	favorites := memory.NewFavoriteStore()

	productSvc := service.NewProductService(service.ProductDeps{Products: products})
	orderSvc := service.NewOrderService(service.OrderDeps{Orders: orders, Products: products})
	favoriteSvc := service.NewFavoriteService(service.FavoriteDeps{Favorites: favorites, Products: products})
	authSvc := service.NewAuthService(service.AuthDeps{
		Users:     users,
		Products:  products,
		Favorites: favorites,
		Hasher:    password.NewHasher(),
		Issuer:    issuer,
	})

	handler := router.New(router.Deps{
		Auth:      authctrl.NewController(authSvc),
		Products:  productctrl.NewController(productSvc),
		Orders:    orderctrl.NewController(orderSvc),
		Favorites: favoritectrl.NewController(favoriteSvc),
		Health:    healthctrl.NewController("memory", nil),
		Issuer:    issuer,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func register(t *testing.T, srv *httptest.Server, email string) (token, userID string) {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]any{
		"email":     email,
		"password":  "pw-123456",
		"firstName": "Test",
		"lastName":  "User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token = body["token"].(string)
	userID = body["user"].(map[string]any)["id"].(string)
	return token, userID
}

func createProduct(t *testing.T, srv *httptest.Server, token, name string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/products", token, map[string]any{
		"name":     name,
		"price":    "49.90",
		"category": "CARDIO",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ready", body["status"])
	require.Equal(t, "memory", body["driver"])
}

func TestAuthFlow(t *testing.T) {
	srv := newTestServer(t)

	token, _ := register(t, srv, "ana@example.com")

	// Email duplicado es conflicto
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]any{
		"email": "ANA@example.com", "password": "other-pw",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "EMAIL_ALREADY_IN_USE", body["code"])

	// Login con credenciales malas
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]any{
		"email": "ana@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "INVALID_CREDENTIALS", body["code"])

	// Perfil propio
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ana@example.com", body["email"])

	// Sin token no hay perfil
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "TOKEN_MISSING", body["code"])
}

func TestProductEndpoints(t *testing.T) {
	srv := newTestServer(t)
	token, userID := register(t, srv, "seller@example.com")

	// Crear sin token es 401
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/products", "", map[string]any{"name": "x"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	id := createProduct(t, srv, token, "Cinta de correr")

	// Input inválido es 422 con detalle
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/products", token, map[string]any{
		"name": "Banda", "price": "-5", "category": "CARDIO",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, "VALIDATION_FAILED", body["code"])

	// Listado con paginación
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/products?limit=10", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(1), body["total"])
	require.Len(t, body["items"], 1)

	// Categoría desconocida en el filtro es 400
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/products?category=GARDENING", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "INVALID_PARAMETER", body["code"])

	// Detalle público
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Cinta de correr", body["name"])
	require.Equal(t, userID, body["ownerId"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/products/nope", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "PRODUCT_NOT_FOUND", body["code"])

	// Catálogo por vendedor
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/users/"+userID+"/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Update de un no-owner es 403
	intruder, _ := register(t, srv, "intruder@example.com")
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/api/products/"+id, intruder, map[string]any{
		"name": "Hacked", "price": "1", "category": "CARDIO",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "NOT_OWNER", body["code"])

	// Delete por el owner
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/products/"+id, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestOrderAndFavoriteEndpoints(t *testing.T) {
	srv := newTestServer(t)
	seller, _ := register(t, srv, "seller@example.com")
	buyer, _ := register(t, srv, "buyer@example.com")
	productID := createProduct(t, srv, seller, "Kettlebell")

	// Orden de invitado, sin token
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/orders", "", map[string]any{
		"productId": productID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotContains(t, body, "userId")
	require.Equal(t, "99.8", body["totalPrice"])

	// Orden autenticada
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/orders", buyer, map[string]any{
		"productId": productID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := body["id"].(string)

	// Listado propio solo ve la orden del buyer
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/orders", buyer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Otro usuario no puede ver ni borrar la orden
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/orders/"+orderID, seller, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/orders/"+orderID, seller, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Favoritos
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/favorites", buyer, map[string]any{"productId": productID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/favorites", buyer, map[string]any{"productId": productID})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "ALREADY_FAVORITED", body["code"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/favorites/"+productID, buyer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["favorited"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/favorites/"+productID, buyer, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/favorites/"+productID, buyer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, false, body["favorited"])
}

func TestDeleteAccountCascade(t *testing.T) {
	srv := newTestServer(t)
	seller, sellerID := register(t, srv, "seller@example.com")
	buyer, _ := register(t, srv, "buyer@example.com")

	productID := createProduct(t, srv, seller, "Cinta")
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/favorites", buyer, map[string]any{"productId": productID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/me", seller, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Productos del vendedor desaparecen del catálogo
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/users/"+sellerID+"/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/products?limit=10", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(0), body["total"])

	// Y los favoritos del buyer que apuntaban a ellos también
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/favorites", buyer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// El token del vendedor sigue siendo válido criptográficamente, pero su
	// cuenta ya no existe
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/me", seller, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "USER_NOT_FOUND", body["code"])
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/nothing", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "ROUTE_NOT_FOUND", body["code"])
}
