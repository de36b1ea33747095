package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/smpl/foundation/core/error"
	mdwlog "github.com/msto63/smpl/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "SMPL_CONFIG"

// Output formats accepted in [output] format
const (
	FormatTree   = "tree"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSource = "source"
)

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Scanner  ScannerConfig  `toml:"scanner" yaml:"scanner"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
	Explorer ExplorerConfig `toml:"explorer" yaml:"explorer"`
	Cache    CacheConfig    `toml:"cache" yaml:"cache"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ScannerConfig holds scanner settings
type ScannerConfig struct {
	LegacyEndPrefix bool `toml:"legacy_end_prefix" yaml:"legacy_end_prefix"`
	MaxSourceBytes  int  `toml:"max_source_bytes" yaml:"max_source_bytes"`
}

// OutputConfig holds settings for printed results
type OutputConfig struct {
	Format  string `toml:"format" yaml:"format"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
	Indent  int    `toml:"indent" yaml:"indent"`
}

// ExplorerConfig holds settings for the interactive explorer
type ExplorerConfig struct {
	ShowPositions bool `toml:"show_positions" yaml:"show_positions"`
}

// CacheConfig holds settings for the compile result cache
type CacheConfig struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"`
	MaxItems int      `toml:"max_items" yaml:"max_items"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// MarshalYAML formats the duration as a string scalar
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := newConfig()
	cfg.applyDefaults()
	return cfg
}

// newConfig presets the fields whose zero value is a valid setting. Files
// decode on top of it, so an explicit indent = 0 survives.
func newConfig() *Config {
	return &Config{Output: OutputConfig{Indent: 2}}
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load")
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := decode(path, data)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode parses YAML for .yaml and .yml files and TOML otherwise. Unknown
// keys are rejected in both formats.
func decode(path string, data []byte) (*Config, error) {
	cfg := newConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	}
	return cfg, nil
}

// DefaultPaths returns the locations searched when SMPL_CONFIG is unset
func DefaultPaths() []string {
	return []string{
		"./smpl.toml",
		"./smpl.yaml",
		"./configs/smpl.toml",
		filepath.Join(os.Getenv("HOME"), ".config/smpl/smpl.toml"),
	}
}

// LoadFromEnv loads configuration from the SMPL_CONFIG environment variable
// or the first existing default location
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		// Try default locations
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set SMPL_CONFIG or create smpl.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// LoadOrDefault loads path if given, else falls back to LoadFromEnv. A missing
// config file yields the defaults; any other failure is returned.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		if mdwerror.HasCode(err, mdwerror.CodeNotFound) && os.Getenv(EnvConfigPath) == "" {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "smpl"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "error"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Scanner
	if c.Scanner.MaxSourceBytes == 0 {
		c.Scanner.MaxSourceBytes = 1 << 20
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = FormatTree
	}

	// Cache
	if c.Cache.MaxItems == 0 {
		c.Cache.MaxItems = 256
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 10 * time.Minute
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return mdwerror.Newf(format, args...).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level: %v", err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format: %v", err)
	}
	if c.Scanner.MaxSourceBytes < 0 {
		return invalid("scanner.max_source_bytes must not be negative: %d", c.Scanner.MaxSourceBytes)
	}

	switch c.Output.Format {
	case FormatTree, FormatJSON, FormatYAML, FormatSource:
	default:
		return invalid("output.format must be one of tree, json, yaml, source: %q", c.Output.Format)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return invalid("output.indent must be between 0 and 8: %d", c.Output.Indent)
	}

	if c.Cache.MaxItems < 0 {
		return invalid("cache.max_items must not be negative: %d", c.Cache.MaxItems)
	}
	if c.Cache.TTL.Duration < 0 {
		return invalid("cache.ttl must not be negative: %s", c.Cache.TTL.Duration)
	}
	return nil
}

// Write encodes the configuration as TOML or YAML
func (c *Config) Write(w io.Writer, format string) error {
	switch format {
	case "toml", "":
		return toml.NewEncoder(w).Encode(c)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported config format: %s", format)
	}
}
