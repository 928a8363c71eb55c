// Package config loads both binaries' settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	HTTP ServerConfig
	DB   DBConfig
	Bot  BotConfig
	Shop ShopConfig
}

// ServerConfig covers the API server.
type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	TimeoutRead  time.Duration `envconfig:"HTTP_TIMEOUT_READ" default:"5s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_TIMEOUT_WRITE" default:"10s"`

	// Secret guards the submission endpoints; empty means dev mode.
	Secret string `envconfig:"API_SECRET"`
}

type DBConfig struct {
	// DSN is optional: without it, submissions are stored in memory.
	DSN string `envconfig:"DB_DSN"`
}

// BotConfig covers the Telegram notification path.
type BotConfig struct {
	Token       string `envconfig:"BOT_TOKEN"`
	AdminChatID string `envconfig:"ADMIN_CHAT_ID"`
	GroupChatID string `envconfig:"GROUP_CHAT_ID"`
}

// ShopConfig covers the storefront client.
type ShopConfig struct {
	// BaseURL of the shop backend. Empty means bundled catalog and the
	// logging gateway fallback.
	BaseURL string `envconfig:"SHOP_BASE_URL"`
	Secret  string `envconfig:"SHOP_SECRET"`

	// CartPath is where the cart file lives; empty picks the user cache dir.
	CartPath string `envconfig:"CART_PATH"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
