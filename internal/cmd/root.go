// Package cmd provides the CLI commands for flowstack.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flowstack-io/flowstack/internal/ui"
)

const version = "0.1.0"

var (
	envFileFlag string
	modeFlag    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flowstack",
	Short: "Deployment harness for a Langflow RAG stack",
	Long: `flowstack - deployment harness for a Langflow RAG stack

Renders a parameterized Docker Compose topology (pgvector, postgres, redis,
mongo, langflow) from a dotenv environment file and sequences lifecycle
operations against the Docker engine.

SETUP
  init [dir]        Scaffold a deployment directory (.env, templates, initdb)
  doctor            Pre-flight checks

TOPOLOGY
  build-yaml        Render docker-compose.yml from the template and env file
  build [svc...]    Build service images (pgvector, postgres, mongo, langflow)

LIFECYCLE
  up [svc...]       Start the stack attached
  upd [svc...]      Start the stack detached
  down              Stop and remove stack services
  ps                Show service status
  logs [svc...]     Show service logs (-f to follow)

TEARDOWN
  clear             Remove containers, volumes, images, network, build cache

MAINTENANCE
  update            Update flowstack to the latest release

Resource names derive from IMG_PREFIX and IMG_POSTFIX in the env file, so
parallel instances (e.g. dev and prod postfixes) never collide.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Fatal("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", ".env", "dotenv file holding the deployment environment")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "environment mode (dev|prod), overrides ENV from the env file")

	// Errors come out through ui.Fatal in Execute, once.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.SetVersionTemplate("flowstack version {{.Version}}\n")
}
