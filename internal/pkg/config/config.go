package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	LogFile  string `env:"LOG_FILE"`

	Auth  AuthConfig
	Store StoreConfig
	Redis RedisConfig
}

type AuthConfig struct {
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`
	AdminCode   string        `env:"ADMIN_CODE,   default=123456789"`
	EmailDomain string        `env:"EMAIL_DOMAIN, default=@gmail.com"`
}

type StoreConfig struct {
	Driver     string        `env:"STORE_DRIVER,  default=sqlite"`
	SQLitePath string        `env:"SQLITE_PATH,   default=usuarios.db"`
	MongoURI   string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	MongoDB    string        `env:"MONGO_DB,      default=storefront"`
	Timeout    time.Duration `env:"STORE_TIMEOUT, default=5s"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED,   default=false"`
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	DedupTTL time.Duration `env:"ORDER_DEDUP_TTL, default=24h"`
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file from the working directory when one exists, then
// fills the configuration from environment variables. Variables already set
// in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.JWTSecret == "" && !c.IsDevelopment() {
		return errors.New("config: JWT_SECRET is required outside development")
	}
	return nil
}
