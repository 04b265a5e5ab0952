package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Store   StoreConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Notify  NotifyConfig
}

// StoreConfig selects the document store backend: the remote JSON store
// over HTTP, or an embedded MongoDB.
type StoreConfig struct {
	Backend string `env:"STORE_BACKEND,  default=rest"`
	BaseURL string `env:"STORE_BASE_URL, default=http://localhost:5005"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SessionConfig selects where session snapshots are persisted.
type SessionConfig struct {
	Backend string `env:"SESSION_BACKEND, default=file"`
	Dir     string `env:"SESSION_DIR,     default=.sessions"`
}

type NotifyConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
