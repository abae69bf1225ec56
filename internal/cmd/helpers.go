package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/flowstack-io/flowstack/internal/config"
	"github.com/flowstack-io/flowstack/internal/docker"
	"github.com/flowstack-io/flowstack/internal/fileutil"
	"github.com/flowstack-io/flowstack/internal/template"
	"github.com/flowstack-io/flowstack/internal/ui"
)

// loadConfig resolves the configuration for this invocation from the global
// flags. Every command goes through here so mode resolution happens exactly
// once per run.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFileFlag, modeFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// withDockerClient executes a function with a Docker client, handling connection and cleanup.
func withDockerClient(ctx context.Context, fn func(*docker.Client) error) error {
	client, err := docker.NewClient()
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	defer client.Close()

	return fn(client)
}

// renderTopology renders the main topology document, and the tools document
// when the mode includes them. Rendering is deterministic, so overwriting an
// up-to-date output is harmless.
func renderTopology(cfg *config.Config) error {
	vars := cfg.TemplateVars()

	if err := template.RenderFile(cfg.TemplateFile(), cfg.OutputFile(), vars); err != nil {
		return err
	}
	ui.Success("Rendered %s", filepath.Base(cfg.OutputFile()))

	if cfg.Mode.IncludesTools() {
		if err := template.RenderFile(cfg.ToolsTemplateFile(), cfg.ToolsOutputFile(), vars); err != nil {
			return err
		}
		ui.Success("Rendered %s", filepath.Base(cfg.ToolsOutputFile()))
	}

	return nil
}

// ensureRendered renders the topology if any rendered document is missing.
func ensureRendered(cfg *config.Config) error {
	for _, file := range cfg.ComposeFiles() {
		if !fileutil.Exists(file) {
			ui.Info("Rendered topology missing, rendering first...")
			return renderTopology(cfg)
		}
	}
	return nil
}

// validateServices checks the given names against the services defined in the
// rendered documents.
func validateServices(cfg *config.Config, services []string) error {
	if len(services) == 0 {
		return nil
	}

	valid := make(map[string]bool)
	var validList []string
	for _, file := range cfg.ComposeFiles() {
		names, err := template.ServiceNames(file)
		if err != nil {
			return err
		}
		for _, name := range names {
			if !valid[name] {
				valid[name] = true
				validList = append(validList, name)
			}
		}
	}

	var unknown []string
	for _, svc := range services {
		if !valid[svc] {
			unknown = append(unknown, svc)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown services: %s. Valid services: %s",
			strings.Join(unknown, ", "), strings.Join(validList, ", "))
	}

	return nil
}

// newComposeClient builds the compose client for this invocation's rendered
// documents.
func newComposeClient(cfg *config.Config) *docker.ComposeClient {
	return docker.NewComposeClient(cfg.EnvFile, cfg.ComposeFiles()...)
}

// existingComposeFiles returns the rendered documents that are actually on
// disk, in compose order.
func existingComposeFiles(cfg *config.Config) []string {
	var files []string
	for _, file := range cfg.ComposeFiles() {
		if fileutil.Exists(file) {
			files = append(files, file)
		}
	}
	return files
}

// isTerminal checks if stdin is a TTY.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptYesNo asks the user a yes/no question.
// Returns error if stdin is not a TTY and cannot read input.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, fmt.Errorf("cannot prompt for input: stdin is not a TTY. Use --yes to skip interactive prompts")
	}

	fmt.Printf("%s [y/N] ", question)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read user input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// promptSecret reads a secret without echoing it. An empty answer means the
// caller should generate a value.
func promptSecret(label string) (string, error) {
	fmt.Printf("%s (empty = generate): ", label)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read secret input: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}
