// Package docker wraps the two ways flowstack talks to the container engine:
// the compose CLI for lifecycle operations on the rendered topology, and the
// Docker SDK for targeted resource removal during clear.
package docker
