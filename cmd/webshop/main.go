package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/webshop/internal/app"
	"github.com/dropDatabas3/webshop/internal/config"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "ruta al YAML de configuración (opcional)")
	flag.Parse()

	// .env es opcional: en prod la config llega por entorno real
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.L().Fatal("config load failed", logger.Err(err))
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.App.LogLevel,
		ServiceName: "webshop",
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.L().Fatal("wiring failed", logger.Err(err))
	}

	if err := a.Run(ctx); err != nil {
		logger.L().Fatal("server failed", logger.Err(err))
	}
}
