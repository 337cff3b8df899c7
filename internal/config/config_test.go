package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.App.Env)
	require.Equal(t, "info", cfg.App.LogLevel)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "memory", cfg.Storage.Driver)
	require.Equal(t, "webshop", cfg.Storage.Mongo.Database)
	require.Equal(t, "webshop", cfg.JWT.Issuer)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL())
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  env: prod
  log_level: warn
server:
  addr: ":9090"
storage:
  driver: mongo
  mongo:
    uri: mongodb://localhost:27017
    database: shop_test
jwt:
  issuer: shop
  secret: super-secret
  ttl: 2h
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.App.Env)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "mongo", cfg.Storage.Driver)
	require.Equal(t, "shop_test", cfg.Storage.Mongo.Database)
	require.Equal(t, 2*time.Hour, cfg.JWTTTL())
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o600))

	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("STORAGE_DRIVER", "mongo")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, "mongo", cfg.Storage.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)
}

func TestJWTTTL_InvalidFallsBack(t *testing.T) {
	cfg := &Config{}
	cfg.JWT.TTL = "soon"
	require.Equal(t, 24*time.Hour, cfg.JWTTTL())

	cfg.JWT.TTL = "-5m"
	require.Equal(t, 24*time.Hour, cfg.JWTTTL())
}
