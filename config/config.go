// Package config loads fincalc settings from defaults, a YAML config file,
// FINCALC_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "FINCALC"

// Backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

type Server struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RateLimit struct {
	Capacity int
	Window   time.Duration
}

type Cache struct {
	Backend   string
	RedisAddr string
	TTL       time.Duration
}

type History struct {
	Backend string
	Path    string
}

type Logging struct {
	Level  string
	Format string
}

type Config struct {
	Server    Server
	RateLimit RateLimit
	Cache     Cache
	History   History
	Logging   Logging
}

// Defaults registers the default value of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	v.SetDefault("ratelimit.capacity", 5)
	v.SetDefault("ratelimit.window", time.Minute)

	v.SetDefault("cache.backend", BackendMemory)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.ttl", 24*time.Hour)

	v.SetDefault("history.backend", BackendMemory)
	v.SetDefault("history.path", defaultHistoryPath())

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "fincalc.db")
	}
	return filepath.Join(home, ".local", "share", "fincalc", "history.db")
}

// Init sets defaults on v, reads cfgFile (or config.yaml from the standard
// locations when cfgFile is empty) and enables environment overrides. A
// missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	Defaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fincalc"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Load reads the settings from v and validates them.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:         v.GetString("server.addr"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		RateLimit: RateLimit{
			Capacity: v.GetInt("ratelimit.capacity"),
			Window:   v.GetDuration("ratelimit.window"),
		},
		Cache: Cache{
			Backend:   strings.ToLower(v.GetString("cache.backend")),
			RedisAddr: v.GetString("cache.redis_addr"),
			TTL:       v.GetDuration("cache.ttl"),
		},
		History: History{
			Backend: strings.ToLower(v.GetString("history.backend")),
			Path:    v.GetString("history.path"),
		},
		Logging: Logging{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("ratelimit.capacity must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit.window must be positive, got %s", c.RateLimit.Window)
	}
	switch c.Cache.Backend {
	case BackendMemory, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	switch c.History.Backend {
	case BackendMemory, BackendNone:
	case BackendSQLite:
		if c.History.Path == "" {
			return errors.New("history.path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown history.backend %q", c.History.Backend)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}
