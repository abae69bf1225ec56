// Package scaffold writes a new deployment directory: env file, topology
// templates, database bootstrap scripts, and per-service build contexts.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/flowstack-io/flowstack/internal/fileutil"
)

//go:embed all:templates
var assets embed.FS

const assetRoot = "templates"

// envTemplateName is the one embedded asset rendered through text/template;
// everything else is written verbatim.
const envTemplateName = "env.tmpl"

// Credentials are the secret values written into the scaffolded env file.
// Empty fields are filled with generated random values at render time.
type Credentials struct {
	PgvectorPassword  string
	PostgresPassword  string
	MongoRootPassword string
	MongoAppPassword  string
	LangflowSecretKey string
}

// Options controls one scaffold run.
type Options struct {
	// Dir is the deployment directory to populate. Created if missing.
	Dir string

	// Mode is the ENV value written to the env file.
	Mode string

	// Postfix is the IMG_POSTFIX value written to the env file.
	Postfix string

	// Creds seeds the env file secrets.
	Creds Credentials

	// Force overwrites files that already exist. Off by default so a re-run
	// never clobbers an edited env file.
	Force bool
}

// Result lists what one scaffold run did, relative to the target directory.
type Result struct {
	Written []string
	Skipped []string
}

// envData is the substitution set for the env file template.
type envData struct {
	Credentials
	Mode    string
	Postfix string
}

// Run populates the deployment directory from the embedded assets. Existing
// files are skipped unless Force is set.
func Run(opts Options) (*Result, error) {
	if opts.Mode == "" {
		opts.Mode = "dev"
	}
	if opts.Postfix == "" {
		opts.Postfix = "dev"
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create deployment directory: %w", err)
	}

	result := &Result{}

	err := fs.WalkDir(assets, assetRoot, func(assetPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(assetPath, assetRoot+"/")
		dest, perm := destFor(rel)
		destPath := filepath.Join(opts.Dir, filepath.FromSlash(dest))

		data, err := assets.ReadFile(assetPath)
		if err != nil {
			return fmt.Errorf("read embedded asset %s: %w", assetPath, err)
		}

		if path.Base(assetPath) == envTemplateName {
			data, err = renderEnv(data, envData{
				Credentials: opts.Creds,
				Mode:        opts.Mode,
				Postfix:     opts.Postfix,
			})
			if err != nil {
				return err
			}
		}

		if opts.Force {
			if err := fileutil.WriteFileAtomic(destPath, data, perm); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			result.Written = append(result.Written, dest)
			return nil
		}

		wrote, err := fileutil.WriteFileIfNotExists(destPath, data, perm)
		if err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		if !wrote {
			result.Skipped = append(result.Skipped, dest)
			return nil
		}

		result.Written = append(result.Written, dest)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// destFor maps an embedded asset path to its destination and mode. The env
// file holds credentials and is not world readable.
func destFor(rel string) (string, os.FileMode) {
	if rel == envTemplateName {
		return ".env", 0o600
	}
	return rel, 0o644
}

// renderEnv runs the env file template. Sprig supplies randAlphaNum so blank
// credentials come out as generated random values.
func renderEnv(src []byte, data envData) ([]byte, error) {
	tmpl, err := template.New(envTemplateName).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse env template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render env file: %w", err)
	}

	return buf.Bytes(), nil
}
