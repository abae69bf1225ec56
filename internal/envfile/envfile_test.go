package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeEnvFile(t, `
# deployment instance
ENV=dev
IMG_POSTFIX=dev
PGVECTOR_PORT=5433
REDIS_PORT=6380
MONGO_ROOT_PASSWORD="s3cret"
`)

	vars, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", vars["ENV"])
	assert.Equal(t, "5433", vars["PGVECTOR_PORT"])
	assert.Equal(t, "6380", vars["REDIS_PORT"])
	assert.Equal(t, "s3cret", vars["MONGO_ROOT_PASSWORD"])
	_, hasComment := vars["# deployment instance"]
	assert.False(t, hasComment)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open env file")
}

func TestMerge(t *testing.T) {
	base := Vars{"A": "1", "B": "2"}
	override := Vars{"B": "3", "C": "4"}

	merged := Merge(base, override)
	assert.Equal(t, Vars{"A": "1", "B": "3", "C": "4"}, merged)

	// Inputs are not mutated
	assert.Equal(t, "2", base["B"])
}

func TestGet(t *testing.T) {
	vars := Vars{"IMG_POSTFIX": "dev", "EMPTY": ""}

	val, err := vars.Get("IMG_POSTFIX")
	require.NoError(t, err)
	assert.Equal(t, "dev", val)

	_, err = vars.Get("EMPTY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMPTY")

	_, err = vars.Get("MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING")
}

func TestGetDefault(t *testing.T) {
	vars := Vars{"IMG_PREFIX": "fs"}

	assert.Equal(t, "fs", vars.GetDefault("IMG_PREFIX", "flowstack"))
	assert.Equal(t, "flowstack", vars.GetDefault("MISSING", "flowstack"))
}

func TestKeys_Sorted(t *testing.T) {
	vars := Vars{"C": "3", "A": "1", "B": "2"}
	assert.Equal(t, []string{"A", "B", "C"}, vars.Keys())
}
