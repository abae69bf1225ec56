package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowstack-io/flowstack/internal/docker"
	"github.com/flowstack-io/flowstack/internal/fileutil"
	"github.com/flowstack-io/flowstack/internal/preflight"
	"github.com/flowstack-io/flowstack/internal/ui"
)

// doctorCmd runs pre-flight checks.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Pre-flight checks",
	Long:  "Run diagnostic checks for Docker, the compose plugin, and the deployment directory.",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ui.Header("Pre-flight checks")
	fmt.Println()

	failed := 0
	ctx := context.Background()

	// Check: required binaries
	if missing := preflight.CheckRequiredBinaries(); len(missing) == 0 {
		ui.Green.Println("  * Docker binary found")
	} else {
		for _, bin := range missing {
			ui.Red.Printf("  x %s not found. %s\n", bin.Name, bin.InstallHint)
		}
		failed += len(missing)
	}

	// Check: compose plugin
	if preflight.CheckComposePlugin(ctx) {
		ui.Green.Println("  * Docker Compose v2 plugin works")
	} else {
		ui.Red.Println("  x Docker Compose v2 plugin missing or broken")
		failed++
	}

	// Check: daemon reachable
	var client *docker.Client
	if c, err := docker.NewClient(); err == nil {
		if err := c.Ping(ctx); err == nil {
			ui.Green.Println("  * Docker daemon is reachable")
			client = c
			defer client.Close()
		} else {
			ui.Red.Println("  x Docker daemon is not reachable")
			failed++
			c.Close()
		}
	} else {
		ui.Red.Println("  x Docker daemon is not reachable")
		failed++
	}

	// Check: deployment directory
	if cfg, err := loadConfig(); err == nil {
		ui.Green.Printf("  * Env file loaded: %s (mode %s)\n", cfg.EnvFile, cfg.Mode)
		if fileutil.Exists(cfg.TemplateFile()) {
			ui.Green.Println("  * Topology template found")
		} else {
			ui.Yellow.Println("  ! Topology template not found (run 'flowstack init')")
		}

		// With a live daemon, report how much of this instance exists.
		if client != nil {
			containers := cfg.Resources().Containers
			present := 0
			for _, name := range containers {
				if exists, err := client.ContainerExists(ctx, name); err == nil && exists {
					present++
				}
			}
			ui.Blue.Printf("  i Stack containers present: %d of %d (postfix %q)\n",
				present, len(containers), cfg.Postfix)
		}
	} else {
		ui.Yellow.Printf("  ! %v\n", err)
		ui.Blue.Println("      Run 'flowstack init' or pass --env-file")
	}

	// Optional helpers
	for _, bin := range preflight.CheckOptionalBinaries() {
		ui.Yellow.Printf("  ! %s not found (optional). %s\n", bin.Name, bin.InstallHint)
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d pre-flight checks failed", failed)
	}

	ui.Success("All pre-flight checks passed")
	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
