package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-connections/nat"
	"gopkg.in/yaml.v3"

	"github.com/flowstack-io/flowstack/internal/envfile"
	"github.com/flowstack-io/flowstack/internal/fileutil"
)

// composeDoc is the subset of a compose document needed for validation.
type composeDoc struct {
	Services map[string]struct {
		Ports []string `yaml:"ports"`
	} `yaml:"services"`
}

// RenderFile reads the template at src, substitutes every placeholder from
// vars, validates the result as a compose topology, and writes it to dst,
// overwriting any previous rendering. The write is atomic and stat-verified
// afterwards so success means the document is actually on disk.
func RenderFile(src, dst string, vars envfile.Vars) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read template %s: %w", src, err)
	}

	rendered, err := Interpolate(string(raw), vars)
	if err != nil {
		return fmt.Errorf("render %s: %w", src, err)
	}

	if err := ValidateCompose([]byte(rendered)); err != nil {
		return fmt.Errorf("rendered %s: %w", src, err)
	}

	if err := fileutil.WriteFileAtomic(dst, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}

	if !fileutil.Exists(dst) {
		return fmt.Errorf("rendered document %s missing after write", dst)
	}

	return nil
}

// ValidateCompose checks that a rendered document is still a usable topology:
// valid YAML, at least one service, and every port mapping parseable. An
// empty substitution can yield YAML that the engine accepts but that maps no
// ports; this catches that class before anything is started.
func ValidateCompose(doc []byte) error {
	var compose composeDoc
	if err := yaml.Unmarshal(doc, &compose); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	if len(compose.Services) == 0 {
		return fmt.Errorf("no services defined")
	}

	for name, svc := range compose.Services {
		for _, spec := range svc.Ports {
			// An empty segment (":6379") is legal to the engine but always
			// means a substitution produced an empty value here.
			for _, part := range strings.Split(spec, ":") {
				if part == "" {
					return fmt.Errorf("service %s: invalid port mapping %q: empty segment", name, spec)
				}
			}
			if _, err := nat.ParsePortSpec(spec); err != nil {
				return fmt.Errorf("service %s: invalid port mapping %q: %w", name, spec, err)
			}
		}
	}

	return nil
}

// ServiceNames extracts the service keys from a rendered compose file.
// Used to validate service arguments before delegating to the engine.
func ServiceNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read compose file: %w", err)
	}

	var compose struct {
		Services map[string]any `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return nil, fmt.Errorf("parse compose file: %w", err)
	}

	names := make([]string, 0, len(compose.Services))
	for name := range compose.Services {
		names = append(names, name)
	}
	return names, nil
}
