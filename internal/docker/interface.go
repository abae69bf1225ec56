package docker

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
)

// DockerAPI defines the Docker SDK operations flowstack uses.
// This interface enables mocking for unit tests without a running daemon.
type DockerAPI interface {
	// Ping tests the connection to the Docker daemon.
	Ping(ctx context.Context) (types.Ping, error)

	// ContainerList returns a list of containers.
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)

	// ContainerRemove removes a container.
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error

	// VolumeRemove removes a named volume.
	VolumeRemove(ctx context.Context, volumeID string, force bool) error

	// NetworkRemove removes a network.
	NetworkRemove(ctx context.Context, networkID string) error

	// ImageRemove removes an image.
	ImageRemove(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error)

	// BuildCachePrune removes unused build cache entries.
	BuildCachePrune(ctx context.Context, opts types.BuildCachePruneOptions) (*types.BuildCachePruneReport, error)

	// Close closes the client connection.
	Close() error
}
