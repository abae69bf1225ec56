// Package envfile loads dotenv-style environment files into variable sets.
package envfile

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Vars is a mapping from variable name to value.
type Vars map[string]string

// Load parses a dotenv-format file into a Vars map.
// The process environment is never consulted or mutated; callers receive an
// explicit set and pass it on.
func Load(path string) (Vars, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file %s: %w", path, err)
	}
	defer f.Close()

	envMap, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w", path, err)
	}

	out := make(Vars, len(envMap))
	for k, v := range envMap {
		out[k] = v
	}
	return out, nil
}

// Merge merges several Vars maps into one, later maps overriding earlier keys.
func Merge(sets ...Vars) Vars {
	out := make(Vars)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// Get returns the value for key, or an error naming the key if undefined or empty.
func (v Vars) Get(key string) (string, error) {
	val, ok := v[key]
	if !ok || val == "" {
		return "", fmt.Errorf("required variable %s is not set", key)
	}
	return val, nil
}

// GetDefault returns the value for key, or def when undefined or empty.
func (v Vars) GetDefault(key, def string) string {
	if val, ok := v[key]; ok && val != "" {
		return val
	}
	return def
}

// Keys returns the variable names in sorted order.
func (v Vars) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
