package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowstack-io/flowstack/internal/docker"
	"github.com/flowstack-io/flowstack/internal/ui"
)

var clearYes bool

// clearCmd removes every engine-side resource derived from the current
// prefix/postfix pair.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove containers, volumes, images, network, build cache",
	Long: `Force-removes every resource derived from IMG_PREFIX/IMG_POSTFIX:
containers, data volumes, locally built images, and the bridge network, then
prunes dangling build cache.

Targets that are already gone are reported and skipped. The command fails
only if the engine faulted on a removal. Volumes hold all database state;
this cannot be undone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		res := cfg.Resources()

		if !clearYes {
			ui.Warning("This removes all %q containers, volumes, images, and the network.", cfg.Postfix)
			ok, err := promptYesNo("Continue?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		return withDockerClient(context.Background(), func(client *docker.Client) error {
			report := client.Clear(context.Background(), docker.ResourceSet{
				Containers: res.Containers,
				Volumes:    res.Volumes,
				Images:     res.Images,
				Network:    res.Network,
			})

			for _, step := range report {
				switch step.Outcome {
				case docker.Removed:
					ui.Success("Removed %s %s", step.Kind, step.Name)
				case docker.Absent:
					ui.Skip("%s %s already absent", step.Kind, step.Name)
				case docker.Failed:
					ui.Error("Remove %s %s: %v", step.Kind, step.Name, step.Err)
				}
			}

			if failures := report.Failures(); len(failures) > 0 {
				return fmt.Errorf("%d of %d removal steps failed", len(failures), len(report))
			}

			ui.Success("Stack cleared")
			return nil
		})
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(clearCmd)
}
