package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the root configuration for wht, stored in ~/.wht/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// Name is shown in report headers.
	Name string `json:"name"`
	// Currency is the symbol printed in front of money amounts.
	Currency string `json:"currency"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string        `json:"log_level"`
	Storage  StorageConfig `json:"storage"`
}

// StorageConfig selects where work logs are kept.
type StorageConfig struct {
	// Backend is "file" (one JSON file per month) or "sqlite".
	Backend string `json:"backend"`
	// SQLitePath is the database file; relative paths are resolved against
	// the data directory.
	SQLitePath string `json:"sqlite_path"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	DefaultCurrency   = "$"
	DefaultLogLevel   = "warn"
	DefaultSQLitePath = "wht.db"

	// HomeEnv overrides the data directory.
	HomeEnv = "WHT_HOME"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Currency: DefaultCurrency,
		LogLevel: DefaultLogLevel,
		Storage: StorageConfig{
			Backend:    BackendFile,
			SQLitePath: DefaultSQLitePath,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing.
const configTemplate = `// wht configuration – ~/.wht/config.json
//
// All settings are optional. Environment variables (or a .env file in the
// working directory) override them: WHT_NAME, WHT_CURRENCY, WHT_LOG_LEVEL,
// WHT_STORAGE_BACKEND, WHT_SQLITE_PATH.
{
  // Your name, printed in report headers.
  "name": "",

  // Symbol printed in front of income and rates.
  "currency": "$",

  // Diagnostics on stderr: debug, info, warn or error.
  "log_level": "warn",

  // ── Storage ─────────────────────────────────────────────────────────────
  "storage": {
    // "file"   – one JSON file per month under ~/.wht/data/ (default)
    // "sqlite" – a single SQLite database
    "backend": "file",

    // SQLite database file, relative to ~/.wht unless absolute.
    "sqlite_path": "wht.db"
  }
}
`

// BaseDir returns the data directory: $WHT_HOME if set, otherwise ~/.wht.
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".wht"), nil
}

// FilePath returns the path of the config file inside base.
func FilePath(base string) string {
	return filepath.Join(base, "config.json")
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// LoadEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment are not overwritten.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads <base>/config.json, creating it with annotated defaults on first
// run, and applies environment overrides. The returned Config is always
// usable, even together with an error.
func Load(base string) (Config, error) {
	cfg, err := loadFile(FilePath(base))
	applyEnv(&cfg)
	fillDefaults(&cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"WHT_NAME", &cfg.Name},
		{"WHT_CURRENCY", &cfg.Currency},
		{"WHT_LOG_LEVEL", &cfg.LogLevel},
		{"WHT_STORAGE_BACKEND", &cfg.Storage.Backend},
		{"WHT_SQLITE_PATH", &cfg.Storage.SQLitePath},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.dst = v
		}
	}
}

// fillDefaults fills zero-value fields with built-in defaults so callers
// always get a usable Config even if the user only partially fills in the file.
func fillDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = def.Storage.Backend
	}
	cfg.Storage.Backend = strings.ToLower(cfg.Storage.Backend)
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = def.Storage.SQLitePath
	}
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("invalid storage backend %q: must be %q or %q", c.Storage.Backend, BackendFile, BackendSQLite)
	}
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
