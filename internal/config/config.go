package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/vrt/internal/errors"
	"github.com/vango-dev/vrt/pkg/event"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vdomctl.json"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vrt"

	// DefaultIndent is the default indentation of JSON output.
	DefaultIndent = "  "
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete vdomctl.json configuration.
type Config struct {
	// Events lists the delegated event types, e.g. ["click", "input"].
	Events []string `json:"events,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Output contains CLI output configuration.
	Output OutputConfig `json:"output,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled prints the collected metrics after each command.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// OutputConfig contains CLI output settings.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `json:"format,omitempty"`

	// Indent is the indentation used for JSON output.
	Indent string `json:"indent,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Events:   []string{event.Click.Type},
		LogLevel: DefaultLogLevel,
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Output: OutputConfig{
			Format: FormatText,
			Indent: DefaultIndent,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for vdomctl.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No " + ConfigFileName + " found at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if len(c.Events) == 0 {
		c.Events = []string{event.Click.Type}
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Indent == "" {
		c.Output.Indent = DefaultIndent
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := c.Categories(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return errors.New("E122").
			WithDetail("output.format must be \"text\" or \"json\", got " + quote(c.Output.Format))
	}
	return nil
}

// Categories resolves Events to event categories.
func (c *Config) Categories() ([]event.Category, error) {
	out := make([]event.Category, 0, len(c.Events))
	for _, name := range c.Events {
		cat, ok := event.Lookup(strings.ToLower(name))
		if !ok {
			return nil, errors.New("E152").WithDetail("Unknown event type " + quote(name))
		}
		out = append(out, cat)
	}
	return out, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.New("E122").
			WithDetail("logLevel must be debug, info, warn or error, got " + quote(c.LogLevel))
	}
	return level, nil
}

func quote(s string) string {
	return "\"" + s + "\""
}

// Exists checks if a vdomctl.json exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// LoadOrDefault loads vdomctl.json from dir, or returns the defaults when
// the directory has none.
func LoadOrDefault(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}
