// Package router arma el árbol de rutas del marketplace.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	authctrl "github.com/dropDatabas3/webshop/internal/http/controllers/auth"
	favoritectrl "github.com/dropDatabas3/webshop/internal/http/controllers/favorite"
	healthctrl "github.com/dropDatabas3/webshop/internal/http/controllers/health"
	orderctrl "github.com/dropDatabas3/webshop/internal/http/controllers/order"
	productctrl "github.com/dropDatabas3/webshop/internal/http/controllers/product"
	httperrors "github.com/dropDatabas3/webshop/internal/http/errors"
	mw "github.com/dropDatabas3/webshop/internal/http/middlewares"
	jwtx "github.com/dropDatabas3/webshop/internal/jwt"
)

// Deps contiene todas las dependencias del router.
type Deps struct {
	// Controllers
	Auth      *authctrl.Controller
	Products  *productctrl.Controller
	Orders    *orderctrl.Controller
	Favorites *favoritectrl.Controller
	Health    *healthctrl.Controller

	// Issuer para los middlewares de auth
	Issuer *jwtx.Issuer

	// Handler de /metrics (nil lo deshabilita)
	Metrics http.Handler

	// Middlewares globales, en orden de aplicación (request-id, logging, métricas)
	Global []mw.Middleware
}

// New construye el router HTTP completo.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	for _, m := range deps.Global {
		r.Use(m)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	r.Get("/healthz", deps.Health.Healthz)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	requireAuth := mw.RequireAuth(deps.Issuer)
	optionalAuth := mw.OptionalAuth(deps.Issuer)

	r.Route("/api", func(api chi.Router) {
		// Auth
		api.Post("/auth/register", deps.Auth.Register)
		api.Post("/auth/login", deps.Auth.Login)

		// Catálogo público
		api.Get("/products", deps.Products.List)
		api.Get("/products/{id}", deps.Products.Get)
		api.Get("/users/{id}/products", deps.Products.ByOwner)

		// Órdenes de invitado o autenticadas
		api.With(optionalAuth).Post("/orders", deps.Orders.Create)

		// Rutas autenticadas
		api.Group(func(priv chi.Router) {
			priv.Use(requireAuth)

			priv.Get("/me", deps.Auth.Me)
			priv.Delete("/me", deps.Auth.DeleteMe)

			priv.Post("/products", deps.Products.Create)
			priv.Put("/products/{id}", deps.Products.Update)
			priv.Delete("/products/{id}", deps.Products.Delete)

			priv.Get("/orders", deps.Orders.List)
			priv.Get("/orders/{id}", deps.Orders.Get)
			priv.Delete("/orders/{id}", deps.Orders.Delete)

			priv.Post("/favorites", deps.Favorites.Add)
			priv.Get("/favorites", deps.Favorites.List)
			priv.Get("/favorites/{productId}", deps.Favorites.Status)
			priv.Delete("/favorites/{productId}", deps.Favorites.Remove)
		})
	})

	return r
}
