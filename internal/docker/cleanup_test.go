package docker

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devResourceSet() ResourceSet {
	return ResourceSet{
		Containers: []string{"pgvector-dev", "redis-dev"},
		Volumes:    []string{"fs-pgvector-data-dev", "fs-redis-data-dev"},
		Images:     []string{"fs/pgvector:dev"},
		Network:    "fs-net-dev",
	}
}

func TestClear_AllRemoved(t *testing.T) {
	mock := NewMockDockerAPI()
	c := NewClientWithAPI(mock)

	report := c.Clear(context.Background(), devResourceSet())

	// 2 containers + 2 volumes + 1 image + 1 network + build cache
	require.Len(t, report, 7)
	for _, step := range report {
		assert.Equal(t, Removed, step.Outcome, "step %s %s", step.Kind, step.Name)
	}
	assert.Empty(t, report.Failures())

	assert.Equal(t, []string{"pgvector-dev", "redis-dev"}, mock.RemovedContainers)
	assert.Equal(t, []string{"fs-net-dev"}, mock.RemovedNetworks)
	assert.Equal(t, 1, mock.BuildCachePruneCalls)
}

// clear must succeed when nothing exists: every absent target is recorded
// informationally, never as a failure.
func TestClear_AllAbsent(t *testing.T) {
	mock := NewMockDockerAPI()
	mock.ContainerRemoveFunc = func(_ context.Context, id string, _ container.RemoveOptions) error {
		return notFound("container", id)
	}
	mock.VolumeRemoveFunc = func(_ context.Context, id string, _ bool) error {
		return notFound("volume", id)
	}
	mock.NetworkRemoveFunc = func(_ context.Context, id string) error {
		return notFound("network", id)
	}
	mock.ImageRemoveFunc = func(_ context.Context, id string, _ image.RemoveOptions) ([]image.DeleteResponse, error) {
		return nil, notFound("image", id)
	}
	c := NewClientWithAPI(mock)

	report := c.Clear(context.Background(), devResourceSet())

	assert.Empty(t, report.Failures())
	for _, step := range report {
		if step.Kind == "build cache" {
			continue
		}
		assert.Equal(t, Absent, step.Outcome, "step %s %s", step.Kind, step.Name)
		assert.NoError(t, step.Err)
	}
}

func TestClear_FailureDoesNotStopRemaining(t *testing.T) {
	mock := NewMockDockerAPI()
	mock.VolumeRemoveFunc = func(_ context.Context, id string, _ bool) error {
		return errors.New("volume is in use")
	}
	c := NewClientWithAPI(mock)

	report := c.Clear(context.Background(), devResourceSet())

	failures := report.Failures()
	require.Len(t, failures, 2)
	for _, step := range failures {
		assert.Equal(t, "volume", step.Kind)
		assert.Error(t, step.Err)
	}

	// Later steps still ran
	assert.Equal(t, 1, mock.ImageRemoveCalls)
	assert.Equal(t, 1, mock.NetworkRemoveCalls)
	assert.Equal(t, 1, mock.BuildCachePruneCalls)
}

func TestClear_BuildCachePruneFailure(t *testing.T) {
	mock := NewMockDockerAPI()
	mock.BuildCachePruneFunc = func(context.Context, types.BuildCachePruneOptions) (*types.BuildCachePruneReport, error) {
		return nil, errors.New("daemon unavailable")
	}
	c := NewClientWithAPI(mock)

	report := c.Clear(context.Background(), devResourceSet())

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "build cache", failures[0].Kind)
}

func TestClear_NoNetwork(t *testing.T) {
	mock := NewMockDockerAPI()
	c := NewClientWithAPI(mock)

	res := devResourceSet()
	res.Network = ""
	c.Clear(context.Background(), res)

	assert.Zero(t, mock.NetworkRemoveCalls)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "absent", Absent.String())
	assert.Equal(t, "failed", Failed.String())
}
