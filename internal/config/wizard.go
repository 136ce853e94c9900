package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to arvela.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Let's set up your portfolio server.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title must not be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = strings.TrimSpace(title)

	// 2. Projects document location.
	sourcePrompt := promptui.Prompt{
		Label:   "Projects document (path or URL)",
		Default: cfg.ProjectsSource,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("projects source: %w", err)
	}
	cfg.ProjectsSource = strings.TrimSpace(source)

	// 3. Listen address.
	listenPrompt := promptui.Prompt{
		Label:   "Listen address",
		Default: cfg.Listen,
	}
	listen, err := listenPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("listen address: %w", err)
	}
	cfg.Listen = strings.TrimSpace(listen)

	// 4. Metrics.
	metricsPrompt := promptui.Select{
		Label: "Expose Prometheus metrics",
		Items: []string{"no", "yes"},
	}
	_, metrics, err := metricsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("metrics selection: %w", err)
	}
	cfg.MetricsEnabled = metrics == "yes"

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, err
	}

	fmt.Printf("\nSaved %s\n", DefaultConfigFile)
	return cfg, nil
}
