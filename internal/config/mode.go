package config

import (
	"fmt"
)

// Mode selects which deployment variant an invocation targets.
type Mode string

const (
	// ModeDev is the local development variant: alpine cache tier plus
	// the pgadmin/mongo-express convenience containers.
	ModeDev Mode = "dev"

	// ModeProd is the production variant: full redis image, no dev tools.
	ModeProd Mode = "prod"
)

// modeSpec maps a mode to its concrete behavior. Branching on mode happens
// through this table, not ad hoc conditionals in commands.
type modeSpec struct {
	// redisImageFormat is the image reference for the cache/queue tier,
	// parameterized by REDIS_VERSION.
	redisImageFormat string

	// toolServices lists auxiliary services rendered and cleared in this mode.
	toolServices []string
}

var modeSpecs = map[Mode]modeSpec{
	ModeDev: {
		redisImageFormat: "redis:%s-alpine",
		toolServices:     []string{ServicePgAdmin, ServiceMongoExpress},
	},
	ModeProd: {
		redisImageFormat: "redis:%s",
		toolServices:     nil,
	},
}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDev, ModeProd:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected dev or prod)", s)
	}
}

// RedisImage returns the mode-resolved image reference for the cache tier.
func (m Mode) RedisImage(version string) string {
	return fmt.Sprintf(modeSpecs[m].redisImageFormat, version)
}

// ToolServices returns the auxiliary service names active in this mode.
func (m Mode) ToolServices() []string {
	return modeSpecs[m].toolServices
}

// IncludesTools reports whether this mode renders the tools topology.
func (m Mode) IncludesTools() bool {
	return len(modeSpecs[m].toolServices) > 0
}

func (m Mode) String() string {
	return string(m)
}
