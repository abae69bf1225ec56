package docker

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// ComposeClient handles docker compose operations against one or more
// rendered topology documents. Every call is a single blocking invocation of
// the compose CLI; concurrency, retries, and health handling stay with the
// engine.
type ComposeClient struct {
	files   []string
	envFile string
}

// NewComposeClient creates a compose client for the given rendered files and
// env file. Files are passed to compose in order.
func NewComposeClient(envFile string, files ...string) *ComposeClient {
	return &ComposeClient{files: files, envFile: envFile}
}

// args builds the common docker compose argument prefix.
func (c *ComposeClient) args(verb string, extra ...string) []string {
	args := []string{"compose"}
	for _, f := range c.files {
		args = append(args, "-f", f)
	}
	if c.envFile != "" {
		args = append(args, "--env-file", c.envFile)
	}
	args = append(args, verb)
	return append(args, extra...)
}

// Up creates and starts all services, attached or detached.
func (c *ComposeClient) Up(ctx context.Context, detach bool, services ...string) error {
	var extra []string
	if detach {
		extra = append(extra, "-d")
	}
	extra = append(extra, services...)

	cmd := exec.CommandContext(ctx, "docker", c.args("up", extra...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose up: %w", err)
	}

	return nil
}

// Down stops and removes the services defined in the rendered topology.
func (c *ComposeClient) Down(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "docker", c.args("down")...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("docker compose down: %w\n%s", err, output)
	}

	return nil
}

// Ps returns the raw docker compose ps output.
func (c *ComposeClient) Ps(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "docker", c.args("ps")...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("docker compose ps: %w\n%s", err, output)
	}

	return string(output), nil
}

// Logs streams service logs to stdout, optionally following.
func (c *ComposeClient) Logs(ctx context.Context, follow bool, services ...string) error {
	var extra []string
	if follow {
		extra = append(extra, "-f")
	}
	extra = append(extra, services...)

	cmd := exec.CommandContext(ctx, "docker", c.args("logs", extra...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose logs: %w", err)
	}

	return nil
}

// ValidateConfig runs docker compose config --quiet to check that the
// rendered documents are acceptable to the engine.
func (c *ComposeClient) ValidateConfig(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "docker", c.args("config", "--quiet")...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("invalid compose file: %s", msg)
	}

	return nil
}
