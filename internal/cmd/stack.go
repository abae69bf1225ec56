package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowstack-io/flowstack/internal/config"
	"github.com/flowstack-io/flowstack/internal/docker"
	"github.com/flowstack-io/flowstack/internal/ui"
)

// startStack renders as needed and runs compose up.
func startStack(detach bool, services []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if err := ensureRendered(cfg); err != nil {
		return err
	}
	if err := validateServices(cfg, services); err != nil {
		return err
	}

	// Engine-side validation before anything starts.
	compose := newComposeClient(cfg)
	if err := compose.ValidateConfig(ctx); err != nil {
		return fmt.Errorf("%w. Run 'docker compose config' to debug", err)
	}

	ui.Info("Starting stack (%s mode)...", cfg.Mode)
	if err := compose.Up(ctx, detach, services...); err != nil {
		return fmt.Errorf("compose up: %w", err)
	}

	if detach {
		ui.Success("Stack is up")
	}
	return nil
}

var upCmd = &cobra.Command{
	Use:   "up [services...]",
	Short: "Start the stack attached (docker compose up)",
	Long:  `Starts all services in the rendered topology, attached to the terminal. Renders first if the topology is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startStack(false, args)
	},
}

var updCmd = &cobra.Command{
	Use:   "upd [services...]",
	Short: "Start the stack detached (docker compose up -d)",
	Long:  `Starts all services in the rendered topology in the background. Renders first if the topology is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startStack(true, args)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop and remove stack services (docker compose down)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Only documents that are actually on disk participate: a dev-mode
		// down after a prod render must not fail on the missing tools file.
		files := existingComposeFiles(cfg)
		if len(files) == 0 {
			ui.Warning("No rendered topology at %s, nothing to take down", config.OutputFileName)
			return nil
		}

		compose := docker.NewComposeClient(cfg.EnvFile, files...)
		if err := compose.Down(context.Background()); err != nil {
			return fmt.Errorf("compose down: %w", err)
		}

		ui.Success("Stack is down")
		return nil
	},
}

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "Show service status (docker compose ps)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		compose := newComposeClient(cfg)
		output, err := compose.Ps(context.Background())
		if err != nil {
			return fmt.Errorf("compose ps: %w", err)
		}

		fmt.Print(output)
		return nil
	},
}

var logsFollow bool

var logsCmd = &cobra.Command{
	Use:   "logs [services...]",
	Short: "Show service logs (docker compose logs)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := validateServices(cfg, args); err != nil {
			return err
		}

		compose := newComposeClient(cfg)
		if err := compose.Logs(context.Background(), logsFollow, args...); err != nil {
			return fmt.Errorf("compose logs: %w", err)
		}

		return nil
	},
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(updCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(psCmd)
	rootCmd.AddCommand(logsCmd)
}
