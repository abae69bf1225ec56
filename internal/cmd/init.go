package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flowstack-io/flowstack/internal/scaffold"
	"github.com/flowstack-io/flowstack/internal/ui"
)

var (
	initYes     bool
	initForce   bool
	initPostfix string
)

// initCmd scaffolds a new deployment directory.
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a deployment directory",
	Long: `Initialize a deployment directory with everything the stack needs:

  .env                                Environment file (credentials included)
  docker-compose.template.yml         Topology template
  docker-compose.tools.template.yml   Dev tools topology template
  initdb/pgvector/01-schema.sql       Vector store bootstrap schema
  initdb/mongo/01-init.js             Document store bootstrap script
  build/<service>/Dockerfile          Per-service build contexts

If no directory is specified, the current directory is used. Existing files
are never overwritten unless --force is given.

Credentials are prompted for interactively; blank answers (or --yes) generate
random values. Use --yes in non-TTY environments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	mode := modeFlag
	if mode == "" {
		mode = "dev"
	}

	var creds scaffold.Credentials
	if !initYes && isTerminal() {
		creds, err = promptCredentials()
		if err != nil {
			return err
		}
	}

	ui.Info("Scaffolding deployment in %s...", absDir)

	result, err := scaffold.Run(scaffold.Options{
		Dir:     absDir,
		Mode:    mode,
		Postfix: initPostfix,
		Creds:   creds,
		Force:   initForce,
	})
	if err != nil {
		return err
	}

	for _, rel := range result.Written {
		ui.Success("Created %s", rel)
	}
	for _, rel := range result.Skipped {
		ui.Warning("%s already exists, skipping", rel)
	}

	fmt.Println()
	ui.Info("Next steps:")
	ui.Step(1, "Review %s", filepath.Join(targetDir, ".env"))
	ui.Step(2, "flowstack build-yaml")
	ui.Step(3, "flowstack build")
	ui.Step(4, "flowstack upd")

	return nil
}

// promptCredentials asks for each secret; blank answers are generated later.
func promptCredentials() (scaffold.Credentials, error) {
	var creds scaffold.Credentials

	prompts := []struct {
		label string
		dest  *string
	}{
		{"pgvector password", &creds.PgvectorPassword},
		{"postgres password", &creds.PostgresPassword},
		{"mongo root password", &creds.MongoRootPassword},
		{"mongo app password", &creds.MongoAppPassword},
		{"langflow secret key", &creds.LangflowSecretKey},
	}

	for _, p := range prompts {
		value, err := promptSecret(p.label)
		if err != nil {
			return scaffold.Credentials{}, err
		}
		*p.dest = value
	}

	return creds, nil
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "skip prompts, generate all credentials")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	initCmd.Flags().StringVar(&initPostfix, "postfix", "dev", "IMG_POSTFIX written to the env file")

	rootCmd.AddCommand(initCmd)
}
