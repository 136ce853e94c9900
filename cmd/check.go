package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"arvela.dev/internal/config"
	"arvela.dev/internal/loader"
	"arvela.dev/internal/models"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the projects document once and report problems",
	Long: `Check performs one load of the configured projects document and
prints a warning for every descriptor with missing fields. Missing
fields never fail a load — they render as holes in the card — so this
is the place to see them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		l := loader.New(loader.SourceFor(cfg.ProjectsSource))
		projects, err := l.Load(cmd.Context())
		if err != nil {
			return err
		}

		warnings := 0
		for i, p := range projects {
			for _, w := range descriptorWarnings(p) {
				fmt.Printf("warning: project %d%s: %s\n", i, nameSuffix(p), w)
				warnings++
			}
		}

		fmt.Printf("%s: %d projects, %d warnings\n", cfg.ProjectsSource, len(projects), warnings)
		return nil
	},
}

// descriptorWarnings lists the holes one descriptor would render with.
func descriptorWarnings(p models.Project) []string {
	var warnings []string
	if p.Title == "" {
		warnings = append(warnings, "missing title")
	}
	if p.Description == "" {
		warnings = append(warnings, "missing description")
	}
	if p.Thumbnail == "" {
		warnings = append(warnings, "missing thumbnail")
	}
	if p.Link == "" {
		warnings = append(warnings, "missing link")
	}
	if len(p.Tags) == 0 {
		warnings = append(warnings, "no tags (default tag row will be used)")
	}
	return warnings
}

func nameSuffix(p models.Project) string {
	if p.Title == "" {
		return ""
	}
	return fmt.Sprintf(" (%q)", p.Title)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
