package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config is the top-level server configuration, corresponding to arvela.yml.
type Config struct {
	Listen         string   `yaml:"listen" koanf:"listen"`
	ProjectsSource string   `yaml:"projects_source" koanf:"projects_source"`
	SiteTitle      string   `yaml:"site_title" koanf:"site_title"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	AllowAllCORS   bool     `yaml:"allow_all_cors" koanf:"allow_all_cors"`
	MetricsEnabled bool     `yaml:"metrics_enabled" koanf:"metrics_enabled"`
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ARVELA_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: ARVELA_LISTEN -> listen, etc.
	if err := k.Load(env.Provider("ARVELA_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ARVELA_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.ProjectsSource == "" {
		return fmt.Errorf("projects_source is required")
	}
	if c.SiteTitle == "" {
		return fmt.Errorf("site_title is required")
	}
	return nil
}
