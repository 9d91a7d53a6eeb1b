package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/gym/internal/kv"
)

// Config is the root configuration for gym, stored in ~/.gym/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Reset   ResetConfig   `json:"reset"`
	Log     LogConfig     `json:"log"`
}

// StorageConfig selects where workouts are kept.
type StorageConfig struct {
	// Backend is one of "file", "sqlite", "redis" or "memory".
	Backend string `json:"backend"`
	// Dir holds one JSON file per key for the file backend. Empty = ~/.gym/data.
	Dir string `json:"dir"`
	// SQLitePath is the database file for the sqlite backend. Empty = ~/.gym/gym.db.
	SQLitePath    string `json:"sqlite_path"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`
	RedisPrefix   string `json:"redis_prefix"`
}

// ResetConfig controls the daily clearing of checkmarks.
type ResetConfig struct {
	// PerDay keeps one reset marker per weekday instead of a single shared one.
	PerDay bool `json:"per_day"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
	JSON  bool   `json:"json"`
}

const (
	DefaultBackend     = kv.BackendFile
	DefaultLogLevel    = "warn"
	DefaultRedisAddr   = "localhost:6379"
	DefaultRedisPrefix = "gym:"
)

// Default returns a Config pre-filled with sensible defaults.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend:     DefaultBackend,
			RedisAddr:   DefaultRedisAddr,
			RedisPrefix: DefaultRedisPrefix,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// KVOptions converts the storage section for kv.Open.
func (c Config) KVOptions() kv.Options {
	return kv.Options{
		Backend:       c.Storage.Backend,
		Dir:           c.Storage.Dir,
		SQLitePath:    c.Storage.SQLitePath,
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
		RedisPrefix:   c.Storage.RedisPrefix,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing.
const configTemplate = `// gym configuration – ~/.gym/config.json
//
// All settings are optional; the defaults below keep everything in ~/.gym.
{
  "storage": {
    // Where workouts are kept: "file", "sqlite", "redis" or "memory".
    "backend": "file",

    // Directory for the file backend. Empty = ~/.gym/data
    "dir": "",

    // Database file for the sqlite backend. Empty = ~/.gym/gym.db
    "sqlite_path": "",

    // Connection settings for the redis backend.
    "redis_addr": "localhost:6379",
    "redis_password": "",
    "redis_db": 0,
    "redis_prefix": "gym:"
  },

  "reset": {
    // Checkmarks are cleared on the first visit of a new date.
    // false – one shared marker: only the first day opened that date is cleared
    // true  – every weekday is cleared on its own first visit that date
    "per_day": false
  },

  "log": {
    // One of trace, debug, info, warn, error.
    "level": "warn",
    // Write logs to this file (rotated) instead of stderr.
    "file": "",
    "json": false
  }
}
`

// FilePath returns the path to ~/.gym/config.json.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".gym", "config.json"), nil
}

// blankCommentLines empties every line that starts with // so the template's
// annotations parse as JSON. Line numbers are preserved for error messages.
// Trailing comments after a value are not supported.
func blankCommentLines(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			lines[i] = nil
		}
	}
	return bytes.Join(lines, []byte("\n"))
}

// Load reads the config at path (FilePath() when empty), creating it with
// annotated defaults on first run.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := FilePath()
		if err != nil {
			return Default(), err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := installTemplate(path); err != nil {
			logrus.WithField("path", path).Warnf("first run: config template not written: %v", err)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(blankCommentLines(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Blank strings in the file fall back to the built-in defaults.
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultBackend
	}
	if cfg.Storage.RedisAddr == "" {
		cfg.Storage.RedisAddr = DefaultRedisAddr
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	return cfg, nil
}

func installTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(configTemplate), 0o600)
}
