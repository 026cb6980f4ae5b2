// Package config resolves runtime settings from an optional .env file and
// the environment. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/julianstephens/resurs/internal/constants"
)

// KeyringStore is the --config value that reads the PostgreSQL connection
// string from the OS keyring.
const KeyringStore = "keyring"

type Config struct {
	StorePath string
	Debug     bool

	APIKey string
	// APIKeySource is "env", "keyring" or empty when no key is configured
	APIKeySource string

	AffirmationModel   string
	AffirmationTimeout time.Duration
}

// LoadDotEnv reads .env files into the process environment. Missing files
// are ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load builds a Config from getenv. It touches nothing else, so tests can
// pass a map lookup.
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		StorePath:          constants.DefaultConfigPath,
		AffirmationModel:   constants.DefaultAffirmationModel,
		AffirmationTimeout: constants.DefaultAffirmationTimeout,
	}

	if v := strings.TrimSpace(getenv(constants.EnvConfigPath)); v != "" {
		cfg.StorePath = v
	} else if v := strings.TrimSpace(getenv(constants.EnvDBConnection)); v != "" {
		cfg.StorePath = v
	}

	if v := strings.TrimSpace(getenv(constants.EnvDebug)); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %q is not a boolean", constants.EnvDebug, v)
		}
		cfg.Debug = debug
	}

	for _, name := range []string{constants.EnvAPIKey, constants.EnvLegacyAPIKey} {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			cfg.APIKey = v
			cfg.APIKeySource = "env"
			break
		}
	}

	if v := strings.TrimSpace(getenv(constants.EnvAffirmationModel)); v != "" {
		cfg.AffirmationModel = v
	}

	if v := strings.TrimSpace(getenv(constants.EnvAffirmationTimeout)); v != "" {
		timeout, err := parseTimeout(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", constants.EnvAffirmationTimeout, err)
		}
		cfg.AffirmationTimeout = timeout
	}

	return cfg, nil
}

// parseTimeout accepts a Go duration ("5s") or a whole number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("timeout must be positive")
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive")
	}
	return d, nil
}

// FillAPIKey falls back to get (the keyring lookup) when the environment
// provided no key. Lookup failures leave the key empty.
func (c *Config) FillAPIKey(get func() (string, error)) {
	if c.APIKey != "" || get == nil {
		return
	}
	key, err := get()
	if err != nil || strings.TrimSpace(key) == "" {
		return
	}
	c.APIKey = strings.TrimSpace(key)
	c.APIKeySource = "keyring"
}

// ResolveStore maps the keyring placeholder onto the stored connection
// string and returns other paths unchanged.
func ResolveStore(path string, get func() (string, error)) (string, error) {
	if path != KeyringStore {
		return path, nil
	}
	connStr, err := get()
	if err != nil {
		return "", fmt.Errorf("failed to read connection string from keyring: %w", err)
	}
	return connStr, nil
}
