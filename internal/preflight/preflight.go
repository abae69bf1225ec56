// Package preflight provides pre-flight validation for required binaries and system checks.
package preflight

import (
	"context"
	"os/exec"
	"time"
)

// BinaryCheck represents a required binary and its purpose.
type BinaryCheck struct {
	Name        string
	Required    bool   // false = warning only
	InstallHint string // e.g., "brew install mongosh" or "https://..."
}

// requiredBinaries defines binaries that must be present for flowstack to function.
var requiredBinaries = []BinaryCheck{
	{
		Name:        "docker",
		Required:    true,
		InstallHint: "Install Docker: https://docs.docker.com/get-docker/",
	},
}

// optionalBinaries defines binaries that help when poking at the stack by hand
// but are not needed by any command.
var optionalBinaries = []BinaryCheck{
	{
		Name:        "psql",
		Required:    false,
		InstallHint: "Install psql: https://www.postgresql.org/download/",
	},
	{
		Name:        "mongosh",
		Required:    false,
		InstallHint: "Install mongosh: https://www.mongodb.com/docs/mongodb-shell/install/",
	},
}

// CheckRequiredBinaries validates only required binaries are available.
// Returns list of missing required binaries.
func CheckRequiredBinaries() []BinaryCheck {
	var missing []BinaryCheck

	for _, bin := range requiredBinaries {
		if _, err := exec.LookPath(bin.Name); err != nil {
			missing = append(missing, bin)
		}
	}

	return missing
}

// CheckOptionalBinaries validates optional binaries and returns missing ones.
func CheckOptionalBinaries() []BinaryCheck {
	var missing []BinaryCheck

	for _, bin := range optionalBinaries {
		if _, err := exec.LookPath(bin.Name); err != nil {
			missing = append(missing, bin)
		}
	}

	return missing
}

// CheckComposePlugin verifies the docker compose plugin responds. The plugin
// ships separately from the engine on some distros, so a present docker binary
// does not imply compose works.
func CheckComposePlugin(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "compose", "version", "--short")
	return cmd.Run() == nil
}
