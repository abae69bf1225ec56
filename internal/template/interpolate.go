// Package template renders parameterized topology documents.
package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flowstack-io/flowstack/internal/envfile"
)

// varPattern matches ${VARNAME} placeholders.
var varPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Interpolate replaces ${VAR} placeholders with values from the variable set.
// Every referenced variable must be defined; all missing names are collected
// and reported in one error, so a broken env file surfaces completely on the
// first run instead of one variable at a time. Substitution is purely
// textual, which keeps rendering deterministic: identical inputs yield a
// byte-identical result.
func Interpolate(doc string, vars envfile.Vars) (string, error) {
	var missing []string
	seen := make(map[string]bool)

	result := varPattern.ReplaceAllStringFunc(doc, func(match string) string {
		key := varPattern.FindStringSubmatch(match)[1]

		value, ok := vars[key]
		if !ok {
			if !seen[key] {
				seen[key] = true
				missing = append(missing, key)
			}
			return match
		}

		return value
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("undefined variables: ${%s}", strings.Join(missing, "}, ${"))
	}

	return result, nil
}

// Placeholders returns the distinct variable names referenced by a document,
// in order of first appearance.
func Placeholders(doc string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range varPattern.FindAllStringSubmatch(doc, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
