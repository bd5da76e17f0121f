package program

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "p.yml", `
name: pets
steps:
  - speak: {kind: cat, name: Tom}
`)

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pets", p.Name)
	require.Len(t, p.Steps, 1)
	assert.Equal(t, &SpeakStep{Kind: "cat", Name: "Tom"}, p.Steps[0].Speak)
}

func TestLoadFile_CUEMatchesDefault(t *testing.T) {
	p, err := LoadFile(filepath.Join("testdata", "default.cue"))
	require.NoError(t, err)

	want := Default()
	want.Description = ""
	assert.Equal(t, want, p)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "p.toml", `name = "x"`)

	_, err := LoadFile(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeUnsupported, loadErr.Code)
}

func TestLoadFile_BadYAML(t *testing.T) {
	path := writeFile(t, "p.yaml", "steps: [oops")

	_, err := LoadFile(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
}

func TestParseCUE_MissingProgram(t *testing.T) {
	_, err := ParseCUE("p.cue", []byte(`other: 1`))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeMissingField, loadErr.Code)
}

func TestParseCUE_SyntaxError(t *testing.T) {
	_, err := ParseCUE("p.cue", []byte(`program: {`))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeInvalidSyntax, loadErr.Code)
}

func TestParseCUE_NotConcrete(t *testing.T) {
	_, err := ParseCUE("p.cue", []byte(`
program: {
	name: string
	steps: []
}
`))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
}
