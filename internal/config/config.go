// Package config resolves the deployment configuration for one invocation.
//
// Every command loads the env file once into an explicit Config and passes it
// down; nothing reads the ambient process environment. The mode selector may
// change between runs, so nothing here is cached across invocations.
package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flowstack-io/flowstack/internal/envfile"
)

// File names resolved relative to the deployment directory (the directory
// containing the env file).
const (
	TemplateFileName      = "docker-compose.template.yml"
	ToolsTemplateFileName = "docker-compose.tools.template.yml"
	OutputFileName        = "docker-compose.yml"
	ToolsOutputFileName   = "docker-compose.tools.yml"
	BuildDirName          = "build"
	InitDBDirName         = "initdb"
)

// varDefaults backfills optional variables so a minimal env file renders.
// Credentials have no defaults; the renderer rejects a template that
// references an unset one.
var varDefaults = envfile.Vars{
	"IMG_PREFIX":         "flowstack",
	"SUBNET":             "172.28.0.0/16",
	"PGVECTOR_VERSION":   "pg16",
	"PGVECTOR_PORT":      "5433",
	"PGVECTOR_USER":      "langflow",
	"PGVECTOR_DB":        "vectorstore",
	"POSTGRES_VERSION":   "16",
	"POSTGRES_PORT":      "5432",
	"POSTGRES_USER":      "langflow",
	"POSTGRES_DB":        "langflow",
	"REDIS_VERSION":      "7.2",
	"REDIS_PORT":         "6379",
	"MONGO_VERSION":      "7",
	"MONGO_PORT":         "27017",
	"MONGO_ROOT_USER":    "root",
	"MONGO_DB":           "flowdocs",
	"MONGO_APP_USER":     "langflow",
	"LANGFLOW_VERSION":   "latest",
	"LANGFLOW_PORT":      "7860",
	"PGADMIN_PORT":       "5050",
	"MONGO_EXPRESS_PORT": "8081",
}

// Config holds everything one orchestrator invocation needs.
type Config struct {
	// Dir is the deployment directory; all paths below live inside it.
	Dir string

	// EnvFile is the dotenv file this config was loaded from.
	EnvFile string

	// Mode is the resolved environment mode for this invocation.
	Mode Mode

	// Prefix and Postfix disambiguate parallel deployment instances.
	Prefix  string
	Postfix string

	// Subnet is the internal bridge network CIDR.
	Subnet string

	// Vars is the merged variable set (defaults overlaid by the env file).
	Vars envfile.Vars
}

// Load reads the env file and resolves the configuration. modeOverride, when
// non-empty, wins over the ENV key. Fails before any external call on an
// unreadable env file or invalid values.
func Load(envFile, modeOverride string) (*Config, error) {
	raw, err := envfile.Load(envFile)
	if err != nil {
		return nil, err
	}

	vars := envfile.Merge(varDefaults, raw)

	modeStr := modeOverride
	if modeStr == "" {
		modeStr = vars.GetDefault("ENV", string(ModeDev))
	}
	mode, err := ParseMode(modeStr)
	if err != nil {
		return nil, err
	}

	postfix, err := vars.Get("IMG_POSTFIX")
	if err != nil {
		return nil, err
	}
	prefix := vars.GetDefault("IMG_PREFIX", "flowstack")

	subnet := vars["SUBNET"]
	if _, _, err := net.ParseCIDR(subnet); err != nil {
		return nil, fmt.Errorf("invalid SUBNET %q: %w", subnet, err)
	}

	if err := validatePorts(vars); err != nil {
		return nil, err
	}

	absEnv, err := filepath.Abs(envFile)
	if err != nil {
		return nil, fmt.Errorf("resolve env file path: %w", err)
	}

	return &Config{
		Dir:     filepath.Dir(absEnv),
		EnvFile: absEnv,
		Mode:    mode,
		Prefix:  prefix,
		Postfix: postfix,
		Subnet:  subnet,
		Vars:    vars,
	}, nil
}

// validatePorts rejects non-numeric *_PORT values before they can produce a
// broken port mapping in the rendered topology.
func validatePorts(vars envfile.Vars) error {
	for _, key := range vars.Keys() {
		if !strings.HasSuffix(key, "_PORT") {
			continue
		}
		port, err := strconv.Atoi(vars[key])
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("invalid %s %q: expected a port number", key, vars[key])
		}
	}
	return nil
}

// TemplateVars returns the full substitution set for rendering: the loaded
// variables plus every derived name. Derived values are recomputed on each
// call from the current prefix/postfix/mode.
func (c *Config) TemplateVars() envfile.Vars {
	derived := envfile.Vars{
		"NETWORK_NAME": NetworkName(c.Prefix, c.Postfix),
		"REDIS_IMAGE":  c.Mode.RedisImage(c.Vars["REDIS_VERSION"]),
	}

	for _, svc := range CoreServices {
		derived[varKey(svc, "CONTAINER")] = ContainerName(svc, c.Postfix)
		derived[varKey(svc, "VOLUME")] = VolumeName(c.Prefix, svc, c.Postfix)
	}
	for _, svc := range BuildableServices {
		derived[varKey(svc, "IMAGE")] = ImageName(c.Prefix, svc, c.Postfix)
	}
	for _, svc := range []string{ServicePgAdmin, ServiceMongoExpress} {
		derived[varKey(svc, "CONTAINER")] = ContainerName(svc, c.Postfix)
	}

	return envfile.Merge(c.Vars, derived)
}

// varKey builds a substitution key like PGVECTOR_CONTAINER or MONGO_EXPRESS_IMAGE.
func varKey(service, suffix string) string {
	stem := strings.ToUpper(strings.ReplaceAll(service, "-", "_"))
	return stem + "_" + suffix
}

// Resources returns the named resource set for this deployment instance.
func (c *Config) Resources() Resources {
	return ResourceNames(c.Prefix, c.Postfix, c.Mode)
}

// TemplateFile returns the path to the main topology template.
func (c *Config) TemplateFile() string {
	return filepath.Join(c.Dir, TemplateFileName)
}

// ToolsTemplateFile returns the path to the dev tools topology template.
func (c *Config) ToolsTemplateFile() string {
	return filepath.Join(c.Dir, ToolsTemplateFileName)
}

// OutputFile returns the path of the rendered main topology document.
func (c *Config) OutputFile() string {
	return filepath.Join(c.Dir, OutputFileName)
}

// ToolsOutputFile returns the path of the rendered tools topology document.
func (c *Config) ToolsOutputFile() string {
	return filepath.Join(c.Dir, ToolsOutputFileName)
}

// ComposeFiles returns the rendered documents this invocation's compose calls
// operate on: the main document always, the tools document in dev mode.
func (c *Config) ComposeFiles() []string {
	files := []string{c.OutputFile()}
	if c.Mode.IncludesTools() {
		files = append(files, c.ToolsOutputFile())
	}
	return files
}

// BuildContext returns the image build context directory for a service.
func (c *Config) BuildContext(service string) string {
	return filepath.Join(c.Dir, BuildDirName, service)
}

// BuildArgs returns the docker build arguments for a service's context. The
// Dockerfiles pin their base image through a version build arg.
func (c *Config) BuildArgs(service string) map[string]string {
	key := varKey(service, "VERSION")
	if v, ok := c.Vars[key]; ok && v != "" {
		return map[string]string{key: v}
	}
	return nil
}
