package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/renamekit/renamekit/internal/rename"
)

// Config holds all renamekit configuration.
type Config struct {
	Log      LogConfig          `toml:"log"`
	Media    MediaConfig        `toml:"media"`
	Profiles map[string]Profile `toml:"profiles"`
}

// LogConfig controls the rename journal.
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty means alongside the config file
}

// MediaConfig tunes media mode.
type MediaConfig struct {
	// ExtraExtensions are accepted in media mode on top of the built-in
	// video and subtitle extension lists, e.g. ".iso".
	ExtraExtensions []string `toml:"extra_extensions"`
}

// Profile is a named transformation preset. Flags given on the command
// line override the profile's fields one by one.
type Profile struct {
	Find           string `toml:"find"`
	ReplaceWith    string `toml:"replace_with"`
	Pattern        string `toml:"pattern"`
	PatternReplace string `toml:"pattern_replace"`
	Transform      string `toml:"transform"`
	Prefix         string `toml:"prefix"`
	Suffix         string `toml:"suffix"`
	Case           string `toml:"case"`
	Template       string `toml:"template"`
}

// Rule converts the profile into a pipeline rule.
func (p Profile) Rule() rename.Rule {
	return rename.Rule{
		Find:           p.Find,
		ReplaceWith:    p.ReplaceWith,
		Pattern:        p.Pattern,
		PatternReplace: p.PatternReplace,
		Transform:      p.Transform,
		Prefix:         p.Prefix,
		Suffix:         p.Suffix,
		Case:           rename.CaseMode(p.Case),
		Template:       p.Template,
	}
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log:      LogConfig{Enabled: true},
		Media:    MediaConfig{},
		Profiles: map[string]Profile{},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "renamekit", "config.toml"), nil
}

// Load reads the configuration from disk, returning defaults when no
// config file exists yet. Missing fields are filled with defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	return cfg, nil
}

// Save writes the configuration to disk, creating the directory when
// needed.
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// JournalPath resolves where a new rename journal should live: the
// configured log directory, or the config directory when unset, with a
// timestamped filename so sessions never collide.
func (cfg *Config) JournalPath() (string, error) {
	dir := cfg.Log.Dir
	if dir == "" {
		configPath, err := ConfigPath()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(filepath.Dir(configPath), "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	name := fmt.Sprintf("renames_%s.log", time.Now().Format("20060102_150405"))
	return filepath.Join(dir, name), nil
}
