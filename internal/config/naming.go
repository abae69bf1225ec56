package config

import "fmt"

// Service names. These are the compose service keys and the stems for all
// derived resource names.
const (
	ServicePgvector     = "pgvector"
	ServicePostgres     = "postgres"
	ServiceRedis        = "redis"
	ServiceMongo        = "mongo"
	ServiceLangflow     = "langflow"
	ServicePgAdmin      = "pgadmin"
	ServiceMongoExpress = "mongo-express"
)

// CoreServices lists the five stack services in topology order.
var CoreServices = []string{
	ServicePgvector,
	ServicePostgres,
	ServiceRedis,
	ServiceMongo,
	ServiceLangflow,
}

// BuildableServices lists services with their own build context under build/.
// Redis is pulled directly with a mode-resolved tag and has no context.
var BuildableServices = []string{
	ServicePgvector,
	ServicePostgres,
	ServiceMongo,
	ServiceLangflow,
}

// Resources is the set of engine-side names derived from one prefix/postfix
// pair. It is computed on demand and never persisted.
type Resources struct {
	Containers []string
	Volumes    []string
	Images     []string
	Network    string
}

// ContainerName derives the container name for a service instance.
func ContainerName(service, postfix string) string {
	return fmt.Sprintf("%s-%s", service, postfix)
}

// VolumeName derives the named volume for a service instance.
func VolumeName(prefix, service, postfix string) string {
	return fmt.Sprintf("%s-%s-data-%s", prefix, service, postfix)
}

// ImageName derives the locally built image reference for a service instance.
func ImageName(prefix, service, postfix string) string {
	return fmt.Sprintf("%s/%s:%s", prefix, service, postfix)
}

// NetworkName derives the bridge network name for a deployment instance.
func NetworkName(prefix, postfix string) string {
	return fmt.Sprintf("%s-net-%s", prefix, postfix)
}

// ResourceNames derives the full named resource set for one deployment
// instance. Mode decides whether the dev tool containers participate.
func ResourceNames(prefix, postfix string, mode Mode) Resources {
	res := Resources{Network: NetworkName(prefix, postfix)}

	for _, svc := range CoreServices {
		res.Containers = append(res.Containers, ContainerName(svc, postfix))
		res.Volumes = append(res.Volumes, VolumeName(prefix, svc, postfix))
	}
	for _, svc := range mode.ToolServices() {
		res.Containers = append(res.Containers, ContainerName(svc, postfix))
	}
	for _, svc := range BuildableServices {
		res.Images = append(res.Images, ImageName(prefix, svc, postfix))
	}

	return res
}
