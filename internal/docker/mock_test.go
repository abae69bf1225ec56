package docker

import (
	"context"
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
)

// MockDockerAPI is a mock implementation of DockerAPI for testing.
type MockDockerAPI struct {
	// Function overrides for each method
	PingFunc            func(ctx context.Context) (types.Ping, error)
	ContainerListFunc   func(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	ContainerRemoveFunc func(ctx context.Context, containerID string, options container.RemoveOptions) error
	VolumeRemoveFunc    func(ctx context.Context, volumeID string, force bool) error
	NetworkRemoveFunc   func(ctx context.Context, networkID string) error
	ImageRemoveFunc     func(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error)
	BuildCachePruneFunc func(ctx context.Context, opts types.BuildCachePruneOptions) (*types.BuildCachePruneReport, error)
	CloseFunc           func() error

	// Call tracking
	PingCalls            int
	ContainerListCalls   int
	ContainerRemoveCalls int
	VolumeRemoveCalls    int
	NetworkRemoveCalls   int
	ImageRemoveCalls     int
	BuildCachePruneCalls int
	CloseCalls           int

	// Removed records the names passed to removal methods, in call order.
	RemovedContainers []string
	RemovedVolumes    []string
	RemovedNetworks   []string
	RemovedImages     []string
}

// NewMockDockerAPI creates a new mock with default no-op implementations.
func NewMockDockerAPI() *MockDockerAPI {
	return &MockDockerAPI{}
}

// notFound builds an error that the SDK's not-found check recognizes.
func notFound(kind, name string) error {
	return fmt.Errorf("no such %s: %s: %w", kind, name, cerrdefs.ErrNotFound)
}

// Ping implements DockerAPI.
func (m *MockDockerAPI) Ping(ctx context.Context) (types.Ping, error) {
	m.PingCalls++
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return types.Ping{APIVersion: "1.45"}, nil
}

// ContainerList implements DockerAPI.
func (m *MockDockerAPI) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	m.ContainerListCalls++
	if m.ContainerListFunc != nil {
		return m.ContainerListFunc(ctx, options)
	}
	return []container.Summary{}, nil
}

// ContainerRemove implements DockerAPI.
func (m *MockDockerAPI) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	m.ContainerRemoveCalls++
	m.RemovedContainers = append(m.RemovedContainers, containerID)
	if m.ContainerRemoveFunc != nil {
		return m.ContainerRemoveFunc(ctx, containerID, options)
	}
	return nil
}

// VolumeRemove implements DockerAPI.
func (m *MockDockerAPI) VolumeRemove(ctx context.Context, volumeID string, force bool) error {
	m.VolumeRemoveCalls++
	m.RemovedVolumes = append(m.RemovedVolumes, volumeID)
	if m.VolumeRemoveFunc != nil {
		return m.VolumeRemoveFunc(ctx, volumeID, force)
	}
	return nil
}

// NetworkRemove implements DockerAPI.
func (m *MockDockerAPI) NetworkRemove(ctx context.Context, networkID string) error {
	m.NetworkRemoveCalls++
	m.RemovedNetworks = append(m.RemovedNetworks, networkID)
	if m.NetworkRemoveFunc != nil {
		return m.NetworkRemoveFunc(ctx, networkID)
	}
	return nil
}

// ImageRemove implements DockerAPI.
func (m *MockDockerAPI) ImageRemove(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error) {
	m.ImageRemoveCalls++
	m.RemovedImages = append(m.RemovedImages, imageID)
	if m.ImageRemoveFunc != nil {
		return m.ImageRemoveFunc(ctx, imageID, options)
	}
	return []image.DeleteResponse{{Deleted: imageID}}, nil
}

// BuildCachePrune implements DockerAPI.
func (m *MockDockerAPI) BuildCachePrune(ctx context.Context, opts types.BuildCachePruneOptions) (*types.BuildCachePruneReport, error) {
	m.BuildCachePruneCalls++
	if m.BuildCachePruneFunc != nil {
		return m.BuildCachePruneFunc(ctx, opts)
	}
	return &types.BuildCachePruneReport{}, nil
}

// Close implements DockerAPI.
func (m *MockDockerAPI) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// makeTestContainer creates a container summary for list results.
func makeTestContainer(id, name, state string) container.Summary {
	return container.Summary{
		ID:    id + "0000000000000000",
		Names: []string{"/" + name},
		State: state,
	}
}

// Verify MockDockerAPI implements DockerAPI.
var _ DockerAPI = (*MockDockerAPI)(nil)
