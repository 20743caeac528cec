package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backend selectors accepted in DATA_PROVIDER.
const (
	ProviderSQLite   = "sqlite"
	ProviderPostgres = "postgres"
	ProviderFile     = "file"
)

// Password scheme selectors accepted in PASSWORD_SCHEME.
const (
	PasswordSchemeBcrypt = "bcrypt"
	PasswordSchemeSHA256 = "sha256"
)

const (
	defaultDataDirName   = "data"
	defaultDBFileName    = "career_navigator.db"
	defaultStoreFileName = "career_store.json"
)

type Config struct {
	Env        string `env:"ENV" envDefault:"production"`
	ServerPort int    `env:"SERVER_PORT" envDefault:"8080"`

	// DataProvider selects the storage backend: sqlite, postgres or file.
	DataProvider string `env:"DATA_PROVIDER" envDefault:"sqlite"`

	// DBPath is the SQLite database file, auto-created if missing.
	// Defaults to data/career_navigator.db, falling back to
	// career_navigator.db in the working directory when data/ is absent.
	DBPath string `env:"DB_PATH"`

	// FileStorePath is the flat-file store location, same default rule
	// as DBPath with career_store.json.
	FileStorePath string `env:"FILE_STORE_PATH"`

	// DataDir holds the read-only catalog datasets (*.json).
	DataDir string `env:"DATA_DIR" envDefault:"data/datasets"`

	// JWTSecret signs session tokens. Required unless ENV=dev.
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"60"`

	// PasswordScheme selects the preferred credential hashing strategy.
	// sha256 is a degraded mode for runtimes without bcrypt support.
	PasswordScheme string `env:"PASSWORD_SCHEME" envDefault:"bcrypt"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"career"`
	Password string `env:"DB_PASSWORD" envDefault:"password"`
	DBName   string `env:"DB_NAME" envDefault:"career_db"`
	UseSSL   bool   `env:"DB_SSL" envDefault:"false"`
}

func LoadConfig() (Config, error) {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.DataProvider {
	case ProviderSQLite, ProviderPostgres, ProviderFile:
	default:
		// Unknown selector falls back to the persistent default.
		cfg.DataProvider = ProviderSQLite
	}

	switch cfg.PasswordScheme {
	case PasswordSchemeBcrypt, PasswordSchemeSHA256:
	default:
		cfg.PasswordScheme = PasswordSchemeBcrypt
	}

	if cfg.DBPath == "" {
		cfg.DBPath = defaultStatePath(defaultDBFileName)
	}
	if cfg.FileStorePath == "" {
		cfg.FileStorePath = defaultStatePath(defaultStoreFileName)
	}

	return cfg, nil
}

// DevMode reports whether the process runs in permissive development mode.
func (c Config) DevMode() bool {
	return c.Env == "dev"
}

// TokenTTL returns the session token lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// defaultStatePath resolves where mutable state lives when no explicit
// path is configured: under data/ when that directory exists, otherwise
// next to the working directory.
func defaultStatePath(name string) string {
	if info, err := os.Stat(defaultDataDirName); err == nil && info.IsDir() {
		return filepath.Join(defaultDataDirName, name)
	}
	return name
}
