package config

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = "arvela.yml"

// DefaultConfig returns the configuration used when no file or
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Listen:         ":8080",
		ProjectsSource: "data/projects.json",
		SiteTitle:      "Portfolio",
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
	}
}
