package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowstack-io/flowstack/internal/config"
	"github.com/flowstack-io/flowstack/internal/docker"
	"github.com/flowstack-io/flowstack/internal/ui"
)

// buildCmd builds service images from their build contexts.
var buildCmd = &cobra.Command{
	Use:   "build [services...]",
	Short: "Build service images",
	Long: `Builds each service image from its context under build/<service>/,
tagged <IMG_PREFIX>/<service>:<IMG_POSTFIX>.

Redis is not buildable: it is pulled directly with the mode-resolved tag.
A failing build does not stop the batch; the command exits non-zero if any
build failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		services := config.BuildableServices
		if len(args) > 0 {
			if err := validateBuildable(args); err != nil {
				return err
			}
			services = args
		}

		ctx := context.Background()
		var failed []string
		for _, svc := range services {
			tag := config.ImageName(cfg.Prefix, svc, cfg.Postfix)
			ui.Info("Building %s...", tag)

			if err := docker.BuildImage(ctx, tag, cfg.BuildContext(svc), cfg.BuildArgs(svc)); err != nil {
				ui.Error("Build %s: %v", svc, err)
				failed = append(failed, svc)
				continue
			}
			ui.Success("Built %s", tag)
		}

		if len(failed) > 0 {
			return fmt.Errorf("%d of %d builds failed: %s",
				len(failed), len(services), strings.Join(failed, ", "))
		}

		ui.Success("All images built")
		return nil
	},
}

// validateBuildable rejects service names without a build context up front.
func validateBuildable(services []string) error {
	buildable := make(map[string]bool, len(config.BuildableServices))
	for _, svc := range config.BuildableServices {
		buildable[svc] = true
	}

	var unknown []string
	for _, svc := range services {
		if !buildable[svc] {
			unknown = append(unknown, svc)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("not buildable: %s. Buildable services: %s",
			strings.Join(unknown, ", "), strings.Join(config.BuildableServices, ", "))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
