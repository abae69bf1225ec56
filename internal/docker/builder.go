package docker

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
)

// BuildImage builds an image from a build context directory, tagging it with
// the given reference. Build args are passed in sorted order so the invocation
// is reproducible. Output streams through so build progress is visible.
func BuildImage(ctx context.Context, tag, contextDir string, buildArgs map[string]string) error {
	if _, err := os.Stat(contextDir); err != nil {
		return fmt.Errorf("build context %s: %w", contextDir, err)
	}

	args := []string{"build", "-t", tag}
	for _, key := range sortedKeys(buildArgs) {
		args = append(args, "--build-arg", fmt.Sprintf("%s=%s", key, buildArgs[key]))
	}
	args = append(args, contextDir)

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker build %s: %w", tag, err)
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
