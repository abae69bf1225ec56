package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowstack-io/flowstack/internal/config"
	"github.com/flowstack-io/flowstack/internal/template"
	"github.com/flowstack-io/flowstack/internal/ui"
)

var renderCheck bool

// buildYamlCmd renders the topology documents from template and env file.
var buildYamlCmd = &cobra.Command{
	Use:     "build-yaml",
	Aliases: []string{"render"},
	Short:   "Render docker-compose.yml from the template and env file",
	Long: `Renders the topology template into docker-compose.yml by substituting
every ${VAR} placeholder from the env file plus the derived names (containers,
volumes, images, network).

Rendering fails, without writing anything, if any placeholder is undefined;
the error lists every missing variable. In dev mode the tools topology
(pgadmin, mongo-express) is rendered as well.

Rendering is deterministic: the same template and env file always produce the
same output, so re-running is always safe.

With --check, nothing is written: the templates' placeholders are checked
against the variable set and the result reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if renderCheck {
			return checkTopology(cfg)
		}

		if err := renderTopology(cfg); err != nil {
			return err
		}

		ui.Info("Mode: %s", cfg.Mode)
		return nil
	},
}

// checkTopology verifies every placeholder in the template(s) resolves,
// without rendering anything.
func checkTopology(cfg *config.Config) error {
	vars := cfg.TemplateVars()

	files := []string{cfg.TemplateFile()}
	if cfg.Mode.IncludesTools() {
		files = append(files, cfg.ToolsTemplateFile())
	}

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read template %s: %w", file, err)
		}

		names := template.Placeholders(string(raw))
		var missing []string
		for _, name := range names {
			if _, ok := vars[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%s: undefined variables: %s",
				filepath.Base(file), strings.Join(missing, ", "))
		}

		ui.Success("%s: all %d placeholders resolve", filepath.Base(file), len(names))
	}

	return nil
}

func init() {
	buildYamlCmd.Flags().BoolVar(&renderCheck, "check", false, "check placeholders without writing anything")

	rootCmd.AddCommand(buildYamlCmd)
}
