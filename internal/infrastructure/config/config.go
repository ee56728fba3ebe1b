package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=15m"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	SyncWorkers int `env:"SYNC_WORKERS, default=4"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Swapi    SwapiConfig
	Throttle ThrottleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SwapiConfig struct {
	BaseURL string        `env:"SWAPI_BASE_URL, default=https://swapi.dev/api"`
	Timeout time.Duration `env:"SWAPI_TIMEOUT,  default=10s"`
}

type ThrottleConfig struct {
	Limit  int           `env:"LOGIN_THROTTLE_LIMIT,  default=10"`
	Window time.Duration `env:"LOGIN_THROTTLE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
