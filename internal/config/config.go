// Package config loads orderbot settings from a YAML file and ORDERBOT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	menuhttp "github.com/aretw0/orderbot/pkg/adapters/http"
)

// DefaultPath is read when no --config flag is given. Its absence is not an error.
const DefaultPath = "orderbot.yaml"

// EnvPrefix prefixes every environment override, e.g. ORDERBOT_MENU_URL.
const EnvPrefix = "ORDERBOT_"

// Config holds every tunable of a run.
type Config struct {
	// Flow is the dialog variant: pizza or order.
	Flow string `mapstructure:"flow"`
	Menu Menu   `mapstructure:"menu"`
	// MaxAttempts bounds rejected answers per field. Zero keeps the retry loop unbounded.
	MaxAttempts int    `mapstructure:"max_attempts"`
	LogLevel    string `mapstructure:"log_level"`
	// MetricsAddr, when set, serves Prometheus metrics during a run.
	MetricsAddr string `mapstructure:"metrics_addr"`
	// JSON switches the console to NDJSON events.
	JSON bool `mapstructure:"json"`
}

// Menu configures the validation service.
type Menu struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// File serves a static YAML menu instead of calling URL.
	File string `mapstructure:"file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Flow:     "pizza",
		LogLevel: "info",
		Menu: Menu{
			URL:     menuhttp.DefaultMenuURL,
			Timeout: menuhttp.DefaultTimeout,
		},
	}
}

// envKeys maps environment suffixes to nested config keys.
var envKeys = map[string][]string{
	"FLOW":         {"flow"},
	"MENU_URL":     {"menu", "url"},
	"MENU_TIMEOUT": {"menu", "timeout"},
	"MENU_FILE":    {"menu", "file"},
	"MAX_ATTEMPTS": {"max_attempts"},
	"LOG_LEVEL":    {"log_level"},
	"METRICS_ADDR": {"metrics_addr"},
	"JSON":         {"json"},
}

// Load reads path (DefaultPath when empty), overlays the environment and
// decodes the result on top of Default.
// A missing DefaultPath is ignored; a missing explicit path is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	raw := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	overlayEnv(raw, os.Environ())
	return decode(raw)
}

func overlayEnv(raw map[string]any, environ []string) {
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		path, known := envKeys[strings.TrimPrefix(key, EnvPrefix)]
		if !known {
			continue
		}
		setPath(raw, path, val)
	}
}

func setPath(m map[string]any, path []string, val any) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = val
}

func decode(raw map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.MaxAttempts < 0 {
		return Config{}, fmt.Errorf("invalid config: max_attempts must not be negative, got %d", cfg.MaxAttempts)
	}
	return cfg, nil
}
