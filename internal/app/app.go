// Package app arma y corre el servicio completo: config, logger, storage,
// services, HTTP.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/webshop/internal/config"
	authctrl "github.com/dropDatabas3/webshop/internal/http/controllers/auth"
	favoritectrl "github.com/dropDatabas3/webshop/internal/http/controllers/favorite"
	healthctrl "github.com/dropDatabas3/webshop/internal/http/controllers/health"
	orderctrl "github.com/dropDatabas3/webshop/internal/http/controllers/order"
	productctrl "github.com/dropDatabas3/webshop/internal/http/controllers/product"
	httpx "github.com/dropDatabas3/webshop/internal/http"
	mw "github.com/dropDatabas3/webshop/internal/http/middlewares"
	"github.com/dropDatabas3/webshop/internal/http/router"
	jwtx "github.com/dropDatabas3/webshop/internal/jwt"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
	"github.com/dropDatabas3/webshop/internal/security/password"
	"github.com/dropDatabas3/webshop/internal/service"
	"github.com/dropDatabas3/webshop/internal/store"
)

const shutdownTimeout = 10 * time.Second

// App es el servicio ya cableado, listo para correr.
type App struct {
	Handler http.Handler
	Addr    string

	cleanup store.CleanupFunc
}

// New construye el servicio completo a partir de la configuración.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.L().With(logger.Component("app"))

	storeCfg := store.Config{Driver: cfg.Storage.Driver}
	storeCfg.Mongo.URI = cfg.Storage.Mongo.URI
	storeCfg.Mongo.Database = cfg.Storage.Mongo.Database

	backend, err := store.Open(ctx, storeCfg)
	if err != nil {
		return nil, err
	}
	log.Info("storage ready", logger.Driver(backend.Driver))

	issuer, err := jwtx.NewIssuer(cfg.JWT.Issuer, cfg.JWT.Secret, cfg.JWTTTL())
	if err != nil {
		_ = backend.Close(ctx)
		return nil, err
	}

	// Services
	repos := backend.Repos
	productSvc := service.NewProductService(service.ProductDeps{Products: repos.Products})
	orderSvc := service.NewOrderService(service.OrderDeps{Orders: repos.Orders, Products: repos.Products})
	favoriteSvc := service.NewFavoriteService(service.FavoriteDeps{Favorites: repos.Favorites, Products: repos.Products})
	authSvc := service.NewAuthService(service.AuthDeps{
		Users:     repos.Users,
		Products:  repos.Products,
		Favorites: repos.Favorites,
		Hasher:    password.NewHasher(),
		Issuer:    issuer,
	})

	// Métricas
	metricsHandler, err := httpx.RegisterMetrics(nil)
	if err != nil {
		_ = backend.Close(ctx)
		return nil, err
	}

	handler := router.New(router.Deps{
		Auth:      authctrl.NewController(authSvc),
		Products:  productctrl.NewController(productSvc),
		Orders:    orderctrl.NewController(orderSvc),
		Favorites: favoritectrl.NewController(favoriteSvc),
		Health:    healthctrl.NewController(backend.Driver, backend.Ping),
		Issuer:    issuer,
		Metrics:   metricsHandler,
		Global: []mw.Middleware{
			mw.WithRequestID(),
			mw.WithLogging(),
			httpx.WithMetrics(),
		},
	})

	return &App{
		Handler: handler,
		Addr:    cfg.Server.Addr,
		cleanup: backend.Close,
	}, nil
}

// Run sirve HTTP hasta que el contexto se cancele y luego apaga el server
// de forma ordenada.
func (a *App) Run(ctx context.Context) error {
	log := logger.L().With(logger.Component("app"))

	srv := &http.Server{
		Addr:         a.Addr,
		Handler:      a.Handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", logger.String("addr", a.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return a.cleanup(shutdownCtx)
	})

	return g.Wait()
}
