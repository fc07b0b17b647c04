// Package config loads the CLI configuration from a YAML file and AWPAK_* environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing file is not an error.
const DefaultPath = "awpak.yaml"

// Store backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendLoam     = "loam"
)

type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Store StoreConfig `mapstructure:"store"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Codec CodecConfig `mapstructure:"codec"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

type StoreConfig struct {
	Backend  string         `mapstructure:"backend"`
	Dir      string         `mapstructure:"dir"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Loam     LoamConfig     `mapstructure:"loam"`
	// EncryptionKey is a hex encoded AES-256 key sealing provider API keys at rest.
	EncryptionKey string `mapstructure:"encryption_key"`
	// Redact lists context key patterns masked on save.
	Redact []string `mapstructure:"redact"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type LoamConfig struct {
	Dir string `mapstructure:"dir"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type CodecConfig struct {
	Strict bool `mapstructure:"strict"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Store: StoreConfig{
			Backend: BackendFile,
			Dir:     ".awpak/graphs",
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Loam:    LoamConfig{Dir: "."},
		},
		HTTP: HTTPConfig{Addr: ":8080"},
	}
}

// envKeys maps environment variables onto dotted configuration keys.
var envKeys = map[string]string{
	"AWPAK_LOG_LEVEL":            "log.level",
	"AWPAK_LOG_FORMAT":           "log.format",
	"AWPAK_STORE_BACKEND":        "store.backend",
	"AWPAK_STORE_DIR":            "store.dir",
	"AWPAK_STORE_ENCRYPTION_KEY": "store.encryption_key",
	"AWPAK_STORE_REDIS_ADDR":     "store.redis.addr",
	"AWPAK_STORE_REDIS_PASSWORD": "store.redis.password",
	"AWPAK_STORE_REDIS_DB":       "store.redis.db",
	"AWPAK_STORE_REDIS_PREFIX":   "store.redis.prefix",
	"AWPAK_STORE_REDIS_TTL":      "store.redis.ttl",
	"AWPAK_STORE_POSTGRES_DSN":   "store.postgres.dsn",
	"AWPAK_STORE_LOAM_DIR":       "store.loam.dir",
	"AWPAK_HTTP_ADDR":            "http.addr",
	"AWPAK_CODEC_STRICT":         "codec.strict",
}

// Load reads path (YAML), applies environment overrides and validates the result.
// A missing file at DefaultPath yields the defaults; any other missing file is an error.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case os.IsNotExist(err) && path == DefaultPath:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(raw, os.LookupEnv)
	return Decode(raw)
}

// Decode overlays raw onto Default. Strings are converted to durations,
// numbers and booleans where the target field requires it.
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be expressed through types.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid config: unknown log.format %q", c.Log.Format)
	}
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendLoam:
	case BackendPostgres:
		if c.Store.Postgres.DSN == "" {
			return fmt.Errorf("invalid config: store.postgres.dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("invalid config: unknown store.backend %q", c.Store.Backend)
	}
	if c.Store.EncryptionKey != "" {
		if _, err := c.Store.Key(); err != nil {
			return err
		}
	}
	return nil
}

// Key decodes EncryptionKey. It returns nil when encryption is disabled.
func (s StoreConfig) Key() ([]byte, error) {
	if s.EncryptionKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(s.EncryptionKey)
	if err != nil || len(key) != 32 {
		return nil, fmt.Errorf("invalid config: store.encryption_key must be 64 hex characters")
	}
	return key, nil
}

func applyEnv(raw map[string]any, lookup func(string) (string, bool)) {
	for env, key := range envKeys {
		if v, ok := lookup(env); ok && v != "" {
			set(raw, strings.Split(key, "."), v)
		}
	}
}

func set(m map[string]any, path []string, v any) {
	if len(path) == 1 {
		m[path[0]] = v
		return
	}
	sub, ok := m[path[0]].(map[string]any)
	if !ok {
		sub = map[string]any{}
		m[path[0]] = sub
	}
	set(sub, path[1:], v)
}
