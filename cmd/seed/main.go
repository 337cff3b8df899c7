// seed puebla el backend configurado con una cuenta demo y un catálogo
// chico, útil para desarrollo local y smoke tests manuales.
//
// Uso:
//
//	SEED_EMAIL=demo@webshop.local SEED_PASSWORD=demo1234 go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/dropDatabas3/webshop/internal/config"
	"github.com/dropDatabas3/webshop/internal/domain/repository"
	jwtx "github.com/dropDatabas3/webshop/internal/jwt"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
	"github.com/dropDatabas3/webshop/internal/security/password"
	"github.com/dropDatabas3/webshop/internal/service"
	"github.com/dropDatabas3/webshop/internal/store"
)

func strEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

type demoProduct struct {
	name        string
	description string
	price       string
	category    repository.Category
}

var catalog = []demoProduct{
	{"Cinta de correr plegable", "Motor 2.5HP, 12 programas.", "499.99", repository.CategoryCardio},
	{"Set de mancuernas 20kg", "Par de mancuernas ajustables con discos.", "89.90", repository.CategoryStrength},
	{"Banda elástica larga", "Resistencia media, látex natural.", "9.99", repository.CategoryMobility},
	{"Rodillo de espuma", "Foam roller 45cm para recuperación.", "19.50", repository.CategoryRecovery},
	{"Rack de sentadillas", "Rack ajustable con soportes de seguridad.", "329.00", repository.CategoryHomeGym},
	{"Cuerda para saltar", "Cable de acero recubierto, rodamientos.", "12.75", repository.CategoryAccessories},
	{"Cajón pliométrico 3 en 1", "Madera, 50/60/75cm.", "119.00", repository.CategoryPlyometrics},
	{"Rueda abdominal", "Doble rueda con tope de rodillas.", "15.25", repository.CategoryCore},
	{"Kettlebell 16kg", "Hierro fundido, base plana.", "45.00", repository.CategoryOutdoor},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(strEnv("CONFIG_PATH", ""))
	if err != nil {
		logger.L().Fatal("config load failed", logger.Err(err))
	}
	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, ServiceName: "webshop-seed"})
	defer func() { _ = logger.Sync() }()
	log := logger.L().With(logger.Component("seed"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storeCfg := store.Config{Driver: cfg.Storage.Driver}
	storeCfg.Mongo.URI = cfg.Storage.Mongo.URI
	storeCfg.Mongo.Database = cfg.Storage.Mongo.Database

	backend, err := store.Open(ctx, storeCfg)
	if err != nil {
		log.Fatal("store open failed", logger.Err(err))
	}
	defer func() { _ = backend.Close(ctx) }()
	log.Info("storage ready", logger.Driver(backend.Driver))

	issuer, err := jwtx.NewIssuer(cfg.JWT.Issuer, cfg.JWT.Secret, cfg.JWTTTL())
	if err != nil {
		log.Fatal("issuer init failed", logger.Err(err))
	}

	auth := service.NewAuthService(service.AuthDeps{
		Users:     backend.Repos.Users,
		Products:  backend.Repos.Products,
		Favorites: backend.Repos.Favorites,
		Hasher:    password.NewHasher(),
		Issuer:    issuer,
	})
	products := service.NewProductService(service.ProductDeps{Products: backend.Repos.Products})

	email := strEnv("SEED_EMAIL", "demo@webshop.local")
	result, err := auth.Register(ctx, service.RegisterInput{
		Email:     email,
		Password:  strEnv("SEED_PASSWORD", "demo1234"),
		FirstName: "Demo",
		LastName:  "Seller",
	})
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		log.Info("demo user already present, skipping catalog", logger.Email(email))
		return
	case err != nil:
		log.Fatal("register demo user failed", logger.Err(err))
	}
	log.Info("demo user created", logger.UserID(result.User.ID), logger.Email(email))

	created := 0
	for _, p := range catalog {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			log.Fatal("bad seed price", logger.String("product", p.name), logger.Err(err))
		}
		if _, err := products.CreateProduct(ctx, result.User.ID, service.ProductInput{
			Name:        p.name,
			Description: p.description,
			Price:       &price,
			Category:    p.category,
		}); err != nil {
			log.Fatal("seed product failed", logger.String("product", p.name), logger.Err(err))
		}
		created++
	}
	log.Info("catalog seeded", logger.Count(created))
}
