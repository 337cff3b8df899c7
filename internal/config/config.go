// Package config carga la configuración del servicio desde YAML con
// overrides por variables de entorno.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del servicio.
type Config struct {
	App struct {
		// dev | prod
		Env      string `yaml:"env"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"app"`

	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Storage struct {
		// memory | mongo
		Driver string `yaml:"driver"`
		Mongo  struct {
			URI      string `yaml:"uri"`
			Database string `yaml:"database"`
		} `yaml:"mongo"`
	} `yaml:"storage"`

	JWT struct {
		Issuer string `yaml:"issuer"`
		Secret string `yaml:"secret"`
		TTL    string `yaml:"ttl"`
	} `yaml:"jwt"`
}

// Load lee el YAML en path (opcional: path vacío = solo defaults + env) y
// aplica overrides de entorno. Nunca retorna un Config a medio armar.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setIfEnv(&c.App.Env, "APP_ENV")
	setIfEnv(&c.App.LogLevel, "LOG_LEVEL")
	setIfEnv(&c.Server.Addr, "SERVER_ADDR")
	setIfEnv(&c.Storage.Driver, "STORAGE_DRIVER")
	setIfEnv(&c.Storage.Mongo.URI, "MONGO_URI")
	setIfEnv(&c.Storage.Mongo.Database, "MONGO_DATABASE")
	setIfEnv(&c.JWT.Issuer, "JWT_ISSUER")
	setIfEnv(&c.JWT.Secret, "JWT_SECRET")
	setIfEnv(&c.JWT.TTL, "JWT_TTL")
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.Storage.Mongo.Database == "" {
		c.Storage.Mongo.Database = "webshop"
	}
	if c.JWT.Issuer == "" {
		c.JWT.Issuer = "webshop"
	}
	if c.JWT.TTL == "" {
		c.JWT.TTL = "24h"
	}
}

// JWTTTL parsea JWT.TTL; valores inválidos caen en 24h.
func (c *Config) JWTTTL() time.Duration {
	d, err := time.ParseDuration(c.JWT.TTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

func setIfEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
