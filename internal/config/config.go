package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del proceso. Las variables de entorno mandan;
// un .env en el directorio de trabajo solo completa lo que falte.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URI            string
	ConnectTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

var ErrMissingEnv = errors.New("missing required environment variable")

// Load lee .env (si existe) y el entorno. DATABASE_URI y JWT_STRING son obligatorias.
func Load() (*Config, error) {
	// godotenv.Load no pisa variables ya definidas.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv arma la Config solo desde el entorno actual, sin tocar .env.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			URI:            strings.TrimSpace(os.Getenv("DATABASE_URI")),
			ConnectTimeout: getEnvAsDuration("DATABASE_CONNECT_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_STRING"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "animal-training-api"),
		},
	}

	if cfg.Database.URI == "" {
		return nil, fmt.Errorf("%w: DATABASE_URI", ErrMissingEnv)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_STRING", ErrMissingEnv)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil && d > 0 {
		return d
	}
	return fallback
}
