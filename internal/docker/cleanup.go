package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
)

// ResourceSet names the engine-side resources one clear invocation targets.
type ResourceSet struct {
	Containers []string
	Volumes    []string
	Images     []string
	Network    string
}

// Outcome classifies the result of one removal step. A target that was
// already gone is not a failure; the distinction stays observable in the
// report instead of being masked.
type Outcome int

const (
	// Removed means the resource existed and was deleted.
	Removed Outcome = iota

	// Absent means the resource did not exist.
	Absent

	// Failed means the engine faulted while removing the resource.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case Absent:
		return "absent"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult records the outcome of removing one resource.
type StepResult struct {
	Kind    string
	Name    string
	Outcome Outcome
	Err     error
}

// CleanReport aggregates the step results of one clear invocation.
type CleanReport []StepResult

// Failures returns the steps where the engine itself faulted.
func (r CleanReport) Failures() []StepResult {
	var failed []StepResult
	for _, step := range r {
		if step.Outcome == Failed {
			failed = append(failed, step)
		}
	}
	return failed
}

// Clear stops and force-removes every resource in the set, then prunes
// dangling build cache. Steps run independently: one failure never stops the
// remaining removals, and absent targets are recorded, not errored.
func (c *Client) Clear(ctx context.Context, res ResourceSet) CleanReport {
	var report CleanReport

	for _, name := range res.Containers {
		err := c.api.ContainerRemove(ctx, name, container.RemoveOptions{Force: true})
		report = append(report, stepResult("container", name, err))
	}

	for _, name := range res.Volumes {
		err := c.api.VolumeRemove(ctx, name, true)
		report = append(report, stepResult("volume", name, err))
	}

	for _, name := range res.Images {
		_, err := c.api.ImageRemove(ctx, name, image.RemoveOptions{Force: true})
		report = append(report, stepResult("image", name, err))
	}

	if res.Network != "" {
		err := c.api.NetworkRemove(ctx, res.Network)
		report = append(report, stepResult("network", res.Network, err))
	}

	if _, err := c.api.BuildCachePrune(ctx, types.BuildCachePruneOptions{}); err != nil {
		report = append(report, StepResult{
			Kind:    "build cache",
			Name:    "dangling",
			Outcome: Failed,
			Err:     fmt.Errorf("prune build cache: %w", err),
		})
	} else {
		report = append(report, StepResult{Kind: "build cache", Name: "dangling", Outcome: Removed})
	}

	return report
}

// stepResult maps a removal error to an outcome. Not-found is Absent.
func stepResult(kind, name string, err error) StepResult {
	result := StepResult{Kind: kind, Name: name}

	switch {
	case err == nil:
		result.Outcome = Removed
	case client.IsErrNotFound(err):
		result.Outcome = Absent
	default:
		result.Outcome = Failed
		result.Err = err
	}

	return result
}
