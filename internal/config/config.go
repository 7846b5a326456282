// Package config loads weakspot settings from defaults, an optional YAML
// file, a .env file and WEAKSPOT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/weakspot/internal/llm"
	"github.com/abhisek/weakspot/internal/logging"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "WEAKSPOT_"
	// PathEnvVar names the config file when --config is not given.
	PathEnvVar = "WEAKSPOT_CONFIG"
)

// Config is the fully resolved weakspot configuration.
type Config struct {
	// DBPath is the SQLite event store. Empty means store.DefaultDBPath().
	DBPath string `koanf:"db_path"`
	// ReferencePath is a CSV of historical training records. Empty means
	// the built-in sample dataset.
	ReferencePath string `koanf:"reference_path"`

	Log logging.Config `koanf:"log"`
	LLM llm.Config     `koanf:"llm"`
}

// Options controls where Load looks for files.
type Options struct {
	// Path is an explicit config file; it must exist when set.
	Path string
	// DotEnv is the .env file to read. Empty means ".env" in the working
	// directory; a missing file is ignored.
	DotEnv string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Log: logging.DefaultConfig(),
		LLM: llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/weakspot/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "weakspot", "config.yaml")
}

// Load resolves the configuration. When no LLM provider is configured the
// standard provider API key variables are checked.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path, err := resolvePath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	dotenv := opts.DotEnv
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotenv, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.LLM, _ = cfg.LLM.Discover()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and the LLM provider credentials.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func resolvePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s: %w", PathEnvVar, err)
		}
		return p, nil
	}
	if p := DefaultPath(); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// sections lists nested key prefixes, longest first, so
// LLM_ANTHROPIC_API_KEY maps to llm.anthropic.api_key.
var sections = []string{
	"llm_openrouter_",
	"llm_anthropic_",
	"llm_openai_",
	"llm_gemini_",
	"llm_retry_",
	"llm_",
	"log_",
}

// envKey maps WEAKSPOT_LLM_OPENAI_BASE_URL to llm.openai.base_url. The
// config file variable is not a setting and is skipped.
func envKey(s string) string {
	if s == PathEnvVar {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, sec := range sections {
		if rest, ok := strings.CutPrefix(key, sec); ok && rest != "" {
			return strings.ReplaceAll(sec, "_", ".") + rest
		}
	}
	return key
}
