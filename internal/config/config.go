// Package config loads the TOML configuration shared by every command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/form"
	"github.com/kedare/wordsmith/internal/history"
	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/view"
)

const (
	// FileName is the config file inside the wordsmith config directory.
	FileName = "config.toml"
	// EnvServer overrides client.server.
	EnvServer = "WORDSMITH_SERVER"
	// DefaultServer is where the solver listens out of the box.
	DefaultServer = "http://127.0.0.1:5001"
)

// Config is the whole configuration file.
type Config struct {
	Client   ClientConfig   `toml:"client"`
	Defaults DefaultsConfig `toml:"defaults"`
	UI       UIConfig       `toml:"ui"`
	History  HistoryConfig  `toml:"history"`
	Server   ServerConfig   `toml:"server"`
}

// ClientConfig selects the solver the client talks to.
type ClientConfig struct {
	Server string `toml:"server"`
	Codec  string `toml:"codec"`
}

// DefaultsConfig seeds the option controls of the query form.
type DefaultsConfig struct {
	GroupBy          string `toml:"group_by"`
	SortGroups       string `toml:"sort_groups"`
	SortWithinGroups string `toml:"sort_within_groups"`
	ViewType         string `toml:"view_type"`
}

// UIConfig tunes the interactive view.
type UIConfig struct {
	CopyAckMS int `toml:"copy_ack_ms"`
}

// HistoryConfig controls the query history store.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	Limit   int    `toml:"limit"`
}

// ServerConfig configures `wordsmith serve`.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	Dictionary string `toml:"dictionary"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Client: ClientConfig{
			Server: DefaultServer,
			Codec:  "json",
		},
		Defaults: DefaultsConfig{
			GroupBy:          string(api.GroupByLength),
			SortGroups:       string(api.GroupOrderAsc),
			SortWithinGroups: string(api.WordOrderScore),
			ViewType:         string(api.ViewGrouped),
		},
		UI: UIConfig{
			CopyAckMS: int(view.CopyAckDuration / time.Millisecond),
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   20,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:5001",
		},
	}
}

// DefaultPath returns <user config dir>/wordsmith/config.toml, honouring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}

	return filepath.Join(dir, "wordsmith", FileName), nil
}

// Load reads the config at path, or at DefaultPath when path is empty. A
// missing default file yields the built-in defaults; a missing explicit file
// is an error. The environment is applied on top and the result validated.
// The returned string is the file actually read, or "".
func Load(path string) (*Config, string, error) {
	explicit := path != ""

	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			logger.Log.Warnf("Using built-in defaults: %v", err)

			return finish(Default(), "")
		}

		path = p
	}

	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			logger.Log.Debugf("No config at %s, using defaults", path)

			return finish(Default(), "")
		}

		return nil, "", fmt.Errorf("failed to load config %s: %w", path, err)
	}

	for _, key := range meta.Undecoded() {
		logger.Log.Warnf("Unknown config key %q in %s", key.String(), path)
	}

	logger.Log.Debugf("Loaded config from %s", path)

	return finish(cfg, path)
}

func finish(cfg *Config, path string) (*Config, string, error) {
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvServer)); v != "" {
		c.Client.Server = v
	}
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if _, err := api.CodecByName(c.Client.Codec); err != nil {
		return fmt.Errorf("client.codec: %w", err)
	}

	if _, err := c.FormDefaults(); err != nil {
		return err
	}

	if c.UI.CopyAckMS <= 0 {
		return fmt.Errorf("ui.copy_ack_ms must be positive (got %d)", c.UI.CopyAckMS)
	}

	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative (got %d)", c.History.Limit)
	}

	return nil
}

// FormDefaults converts [defaults] into form defaults.
func (c *Config) FormDefaults() (form.Defaults, error) {
	d := form.StandardDefaults()

	var err error

	if c.Defaults.GroupBy != "" {
		if d.GroupBy, err = api.ParseGroupBy(c.Defaults.GroupBy); err != nil {
			return d, fmt.Errorf("defaults.group_by: %w", err)
		}
	}

	if c.Defaults.SortGroups != "" {
		if d.SortGroups, err = api.ParseGroupOrder(c.Defaults.SortGroups); err != nil {
			return d, fmt.Errorf("defaults.sort_groups: %w", err)
		}
	}

	if c.Defaults.SortWithinGroups != "" {
		if d.SortWithinGroups, err = api.ParseWordOrder(c.Defaults.SortWithinGroups); err != nil {
			return d, fmt.Errorf("defaults.sort_within_groups: %w", err)
		}
	}

	if c.Defaults.ViewType != "" {
		if d.ViewType, err = api.ParseViewType(c.Defaults.ViewType); err != nil {
			return d, fmt.Errorf("defaults.view_type: %w", err)
		}
	}

	return d, nil
}

// Codec returns the configured wire codec.
func (c *Config) Codec() api.Codec {
	codec, err := api.CodecByName(c.Client.Codec)
	if err != nil {
		return api.CodecJSON
	}

	return codec
}

// CopyAck returns how long a copy control shows its acknowledgement.
func (c *Config) CopyAck() time.Duration {
	return time.Duration(c.UI.CopyAckMS) * time.Millisecond
}

// HistoryPath returns the configured history database, falling back to the default location.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}

	return history.DefaultPath()
}

// Save writes c to path as TOML, creating parent directories.
func Save(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
