// Package config loads service configuration in three layers: struct
// defaults, an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "CONFIG_PATH"

var DefaultPaths = []string{"config.yaml", "config.yml"}

type Config struct {
	Server      ServerConfig      `koanf:"server"`
	RadioGarden RadioGardenConfig `koanf:"radiogarden"`
	Database    DatabaseConfig    `koanf:"database"`
	Logging     LoggingConfig     `koanf:"logging"`
	Nearby      NearbyConfig      `koanf:"nearby"`
}

type ServerConfig struct {
	Port              string        `koanf:"port" validate:"required,numeric"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"gt=0"`
	ReadTimeout       time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout       time.Duration `koanf:"idle_timeout" validate:"gt=0"`
}

type RadioGardenConfig struct {
	BaseURL   string        `koanf:"base_url" validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"gte=0"`
	UserAgent string        `koanf:"user_agent"`
}

// DatabaseConfig selects the place store. URL (Postgres) wins over Path (SQLite).
type DatabaseConfig struct {
	URL      string `koanf:"url"`
	Path     string `koanf:"path"`
	SeedPath string `koanf:"seed_path"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

type NearbyConfig struct {
	Limit int `koanf:"limit" validate:"gte=1,lte=50"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8080",
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		RadioGarden: RadioGardenConfig{
			BaseURL:   "https://radio.garden/api",
			Timeout:   15 * time.Second,
			UserAgent: "radio-garden-client/1.0",
		},
		Database: DatabaseConfig{
			Path:     "data/app.db",
			SeedPath: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Nearby: NearbyConfig{
			Limit: 5,
		},
	}
}

// platformEnvKeys are generic names set by hosting platforms. They load
// before envKeys, so SERVER_PORT wins over PORT when both are set.
var platformEnvKeys = map[string]string{
	"PORT": "server.port",
}

// envKeys maps environment variable names to config keys. Unlisted
// variables are ignored.
var envKeys = map[string]string{
	"SERVER_PORT":            "server.port",
	"SERVER_WRITE_TIMEOUT":   "server.write_timeout",
	"RADIOGARDEN_BASE_URL":   "radiogarden.base_url",
	"RADIOGARDEN_TIMEOUT":    "radiogarden.timeout",
	"RADIOGARDEN_USER_AGENT": "radiogarden.user_agent",
	"DATABASE_URL":           "database.url",
	"DB_PATH":                "database.path",
	"SEED_PATH":              "database.seed_path",
	"LOG_LEVEL":              "logging.level",
	"LOG_FORMAT":             "logging.format",
	"NEARBY_LIMIT":           "nearby.limit",
	"SERVER_READ_TIMEOUT":    "server.read_timeout",
	"SERVER_IDLE_TIMEOUT":    "server.idle_timeout",
	"SERVER_HEADER_TIMEOUT":  "server.read_header_timeout",
}

func envKeyFrom(keys map[string]string) func(string) string {
	return func(name string) string {
		return keys[strings.ToUpper(name)]
	}
}

// Load builds the configuration: defaults < file < environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	for _, keys := range []map[string]string{platformEnvKeys, envKeys} {
		if err := k.Load(env.Provider("", ".", envKeyFrom(keys)), nil); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

func findFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Get returns the environment value of key or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
