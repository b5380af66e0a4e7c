package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/enduro/internal/constants"
	"github.com/julianstephens/enduro/internal/logger"
	"github.com/julianstephens/enduro/internal/models"
	"github.com/julianstephens/enduro/internal/utils"
)

type Config struct {
	// storage
	DataPath string `toml:"data_path"`
	// logging
	LogDir string `toml:"log_dir"`
	Debug  bool   `toml:"debug"`
	// defaults applied by commands
	Timezone         string `toml:"timezone"`
	DefaultEventType string `toml:"default_event_type"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataPath:         constants.DefaultDataPath,
		LogDir:           filepath.Join(constants.DefaultConfigDir, constants.LogDirName),
		Timezone:         constants.DefaultTimezone,
		DefaultEventType: string(models.EventTypeUltra),
	}
}

// ResolvePath picks the config file: an explicit flag wins, then the
// ENDURO_CONFIG environment variable, then the default location.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(constants.ConfigEnvVar); env != "" {
		return env
	}
	return constants.DefaultConfigFile
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error. Paths in the result have ~ expanded.
func Load(path string) (*Config, error) {
	cfg := Default()

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	meta, err := toml.DecodeFile(expanded, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.expand()
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", expanded, err)
	}
	for _, key := range meta.Undecoded() {
		logger.Warn("Unknown config key", "key", key.String(), "file", expanded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", expanded, err)
	}
	return cfg.expand()
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("unknown timezone %q", c.Timezone)
	}
	if c.DefaultEventType != "" && !models.EventType(c.DefaultEventType).Valid() {
		return fmt.Errorf("unknown default_event_type %q", c.DefaultEventType)
	}
	return nil
}

func (c *Config) expand() (*Config, error) {
	var err error
	if c.DataPath, err = ExpandPath(c.DataPath); err != nil {
		return nil, err
	}
	if c.LogDir, err = ExpandPath(c.LogDir); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the configuration as TOML, creating the directory if needed.
func (c *Config) Save(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// EventType returns the configured default event type, falling back to Ultra.
func (c *Config) EventType() models.EventType {
	if t := models.EventType(c.DefaultEventType); t.Valid() {
		return t
	}
	return models.EventTypeUltra
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
