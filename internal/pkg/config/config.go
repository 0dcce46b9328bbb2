package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string        `env:"PORT,      default=8080"`
	Env      string        `env:"ENV,       default=development"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	// JWTSecret has no default: the server refuses to start without it.
	JWTSecret string `env:"JWT_SECRET, required"`

	DB    DBConfig
	Mongo MongoConfig
	Redis RedisConfig
	Seed  SeedConfig
}

type DBConfig struct {
	Driver      string `env:"DB_DRIVER,       default=mysql"`
	DSN         string `env:"DB_DSN,          default=root:root@tcp(localhost:3306)/vehicles?parseTime=true"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vehicles"`
}

// RedisConfig enables the vehicle cache when Addr is set.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB,  default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL, default=5m"`
}

// SeedConfig describes the bootstrap administrator created on startup.
// Seeding is skipped when Email is empty.
type SeedConfig struct {
	Email    string `env:"SEED_ADMIN_EMAIL"`
	Password string `env:"SEED_ADMIN_PASSWORD"`
	Role     string `env:"SEED_ADMIN_ROLE, default=Adm"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

// IsDevelopment reports whether human-friendly log output should be used.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	switch c.DB.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Seed.Email != "" && c.Seed.Password == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is required when SEED_ADMIN_EMAIL is set")
	}
	return nil
}
