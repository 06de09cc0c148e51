package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = 3300
	DefaultMongoDatabase   = "animals"
	DefaultMongoCollection = "animalsofafricas"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config agrupa todo lo que se lee del entorno al arrancar.
type Config struct {
	Port int

	// DatabaseURL decide el backend: mongodb://, postgres://, sqlite:// o vacío (in-memory).
	DatabaseURL     string
	MongoDatabase   string
	MongoCollection string

	LogLevel  string
	LogFormat string
	AppName   string

	ShutdownTimeout time.Duration
}

// LoadDotEnv carga variables desde archivos .env (por defecto ./.env).
// Un archivo inexistente no es error; las variables ya definidas no se pisan.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load lee la configuración desde variables de entorno:
// - PORT (default 3300)
// - DATABASE_URL (opcional)
// - MONGO_DATABASE, MONGO_COLLECTION
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
// - SHUTDOWN_TIMEOUT (duración Go, default 10s)
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MongoDatabase:   getEnvDefault("MONGO_DATABASE", DefaultMongoDatabase),
		MongoCollection: getEnvDefault("MONGO_COLLECTION", DefaultMongoCollection),
		LogLevel:        getEnvDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvDefault("LOG_FORMAT", "text"),
		AppName:         getEnvDefault("APP_NAME", "african-animals"),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return Config{}, fmt.Errorf("PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("PORT: %d out of range 1-65535", port)
	}
	cfg.Port = port

	timeout, err := getEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", v)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", v)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}
