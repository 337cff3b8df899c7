// Package store selecciona e instancia el backend de persistencia.
//
// La elección es explícita y única por proceso: un flag de configuración
// (storage.driver) decide qué implementación concreta satisface cada
// interfaz de repositorio, y el wiring ocurre una sola vez al inicio.
// No hay re-binding en runtime ni singletons ambientales.
package store

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/webshop/internal/domain/repository"
	"github.com/dropDatabas3/webshop/internal/store/memory"
	mongostore "github.com/dropDatabas3/webshop/internal/store/mongo"
)

// Driver identifica un backend de persistencia soportado.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

// Config describe el backend a instanciar.
type Config struct {
	// Driver: "memory" o "mongo".
	Driver string

	// Mongo aplica solo cuando Driver == "mongo".
	Mongo struct {
		URI      string
		Database string
	}
}

// Repositories agrupa los cuatro repositorios de dominio ya ligados a un
// backend concreto.
type Repositories struct {
	Products  repository.ProductRepository
	Users     repository.UserRepository
	Orders    repository.OrderRepository
	Favorites repository.FavoriteRepository
}

// CleanupFunc libera los recursos del backend (conexiones, etc).
type CleanupFunc func(ctx context.Context) error

// Backend es el resultado de Open: repositorios ligados más los hooks de
// ciclo de vida del driver elegido.
type Backend struct {
	Driver string
	Repos  Repositories

	// Ping chequea la disponibilidad del backend. nil para memory.
	Ping func(ctx context.Context) error

	Close CleanupFunc
}

// Open construye los repositorios según cfg.Driver.
func Open(ctx context.Context, cfg Config) (*Backend, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return &Backend{
			Driver: DriverMemory,
			Repos: Repositories{
				Products:  memory.NewProductStore(),
				Users:     memory.NewUserStore(),
				Orders:    memory.NewOrderStore(),
				Favorites: memory.NewFavoriteStore(),
			},
			Close: func(context.Context) error { return nil },
		}, nil

	case DriverMongo:
		if cfg.Mongo.URI == "" {
			return nil, fmt.Errorf("store: mongo driver requires storage.mongo.uri")
		}
		db := cfg.Mongo.Database
		if db == "" {
			db = "webshop"
		}
		ms, err := mongostore.Connect(ctx, cfg.Mongo.URI, db)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver: DriverMongo,
			Repos: Repositories{
				Products:  ms.Products(),
				Users:     ms.Users(),
				Orders:    ms.Orders(),
				Favorites: ms.Favorites(),
			},
			Ping:  ms.Ping,
			Close: ms.Close,
		}, nil

	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
