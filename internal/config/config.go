// Package config holds the runtime settings of the test server.
// Values come from defaults, an optional .env file and CUBESERVE_* variables;
// command line flags in cmd/cubeserve override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	DefaultPort     = 8080
	DefaultRoot     = "."
	DefaultFragment = "components/media-player/player/media-player.html"

	MatchExact     = "exact"
	MatchSubstring = "substring"
)

type Config struct {
	Port      int
	Root      string
	Fragment  string // relative to Root
	Match     string // MatchExact | MatchSubstring
	LogLevel  string
	LogFormat string // text | json
}

func Default() Config {
	return Config{
		Port:      DefaultPort,
		Root:      DefaultRoot,
		Fragment:  DefaultFragment,
		Match:     MatchExact,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads .env (if present) and the environment on top of Default.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := Default()
	cfg.Port = getEnvAsInt("CUBESERVE_PORT", cfg.Port)
	cfg.Root = getEnv("CUBESERVE_ROOT", cfg.Root)
	cfg.Fragment = getEnv("CUBESERVE_FRAGMENT", cfg.Fragment)
	cfg.Match = getEnv("CUBESERVE_MATCH", cfg.Match)
	cfg.LogLevel = getEnv("CUBESERVE_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("CUBESERVE_LOG_FORMAT", cfg.LogFormat)
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("%w: empty root", ErrInvalid)
	}
	if strings.TrimSpace(c.Fragment) == "" {
		return fmt.Errorf("%w: empty fragment path", ErrInvalid)
	}
	switch c.Match {
	case MatchExact, MatchSubstring:
	default:
		return fmt.Errorf("%w: match mode %q (want %s or %s)", ErrInvalid, c.Match, MatchExact, MatchSubstring)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Addr is the listen address on all interfaces.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return defaultValue
}
