package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coursesched/internal/core/domain"
)

func noEnv(string) (string, bool) { return "", false }

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNewLoader_DefaultPath(t *testing.T) {
	l := NewLoader("")
	assert.Equal(t, DefaultPath, l.Path())
}

func TestLoader_Load_DefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	l := NewLoader("", WithLookup(noEnv), WithEnvFile(filepath.Join(dir, ".env")))
	l.path = filepath.Join(dir, DefaultPath)

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_ExplicitPathMustExist(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.toml"), WithLookup(noEnv), WithEnvFile(""))

	_, err := l.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.toml", `
[input]
dir = "pages"
encoding = "windows-1256"

[table]
container_id = "main"

[filter]
course_codes = ["4628101485", "4628101490"]

[output]
path = "out/week"
formats = ["html", "text"]

[render]
unit_label = "units"
`)

	cfg, err := NewLoader(path, WithLookup(noEnv), WithEnvFile("")).Load()
	require.NoError(t, err)

	assert.Equal(t, "pages", cfg.Input.Dir)
	assert.Equal(t, ".html", cfg.Input.Extension, "unset keys keep defaults")
	assert.Equal(t, "windows-1256", cfg.Input.Encoding)
	assert.Equal(t, "scrollable", cfg.Table.ID)
	assert.Equal(t, "main", cfg.Table.ContainerID)
	assert.Equal(t, []string{"4628101485", "4628101490"}, cfg.Filter.CourseCodes)
	assert.Equal(t, "out/week", cfg.Output.Path)
	assert.Equal(t, []string{"html", "text"}, cfg.Output.Formats)
	assert.Equal(t, "units", cfg.Render.UnitLabel)
	assert.Equal(t, "-", cfg.Render.FilterDelimiter)
}

func TestLoader_Load_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: "[input\ndir = "},
		{name: "unknown key", content: "[input]\ndirectory = \"x\"\n"},
		{name: "wrong type", content: "[output]\nformats = \"html\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "c.toml", tt.content)

			_, err := NewLoader(path, WithLookup(noEnv), WithEnvFile("")).Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.toml", "[input]\nfiles = [\"a.html\"]\n[output]\npath = \"from-file\"\n")

	env := envOf(map[string]string{
		EnvInputDir:    "env-pages",
		EnvOutput:      "from-env",
		EnvFormats:     "text, csv",
		EnvCourseCodes: "1, 2 ,,3",
		EnvTableID:     "grid",
		EnvContainerID: "wrap",
		EnvEncoding:    "windows-1256",
	})

	cfg, err := NewLoader(path, WithLookup(env), WithEnvFile("")).Load()
	require.NoError(t, err)

	assert.Equal(t, "env-pages", cfg.Input.Dir)
	assert.Empty(t, cfg.Input.Files, "an input dir from the environment replaces the file list")
	assert.Equal(t, "from-env", cfg.Output.Path)
	assert.Equal(t, []string{"text", "csv"}, cfg.Output.Formats)
	assert.Equal(t, []string{"1", "2", "3"}, cfg.Filter.CourseCodes)
	assert.Equal(t, "grid", cfg.Table.ID)
	assert.Equal(t, "wrap", cfg.Table.ContainerID)
	assert.Equal(t, "windows-1256", cfg.Input.Encoding)
}

func TestLoader_Load_EmptyFormatsKeepsConfigured(t *testing.T) {
	cfg, err := NewLoader("", WithLookup(envOf(map[string]string{EnvFormats: " , "})), WithEnvFile("")).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"html"}, cfg.Output.Formats)
}

func TestLoader_Load_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", EnvOutput+"=dotenv-out\n"+EnvTableID+"=dotenv-table\n")

	process := envOf(map[string]string{EnvTableID: "process-table"})
	l := NewLoader("", WithLookup(process), WithEnvFile(envFile))
	l.path = filepath.Join(dir, DefaultPath)

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "dotenv-out", cfg.Output.Path)
	assert.Equal(t, "process-table", cfg.Table.ID, "process environment wins over .env")
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,b,"))
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coursesched.toml")
	require.NoError(t, WriteDefault(path))

	cfg, err := NewLoader(path, WithLookup(noEnv), WithEnvFile("")).Load()
	require.NoError(t, err)

	want := domain.DefaultConfig()
	assert.Equal(t, want.Input.Dir, cfg.Input.Dir)
	assert.Equal(t, want.Table, cfg.Table)
	assert.Equal(t, want.Output, cfg.Output)
	assert.Equal(t, want.Render, cfg.Render)
	assert.Empty(t, cfg.Filter.CourseCodes)

	err = WriteDefault(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
