package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/modelconf/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fakeEnv(vars map[string]string) model.Lookup {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func noEnv(string) (string, bool) { return "", false }

func TestParse_TOML(t *testing.T) {
	path := writeFile(t, "model.toml", `
model = "claude-3-opus"
temperature = 0.4
max_tokens = 2048
toolshim = true
toolshim_model = "llama3.2"
`)

	f, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "claude-3-opus", f.Model)
	require.NotNil(t, f.Temperature)
	assert.Equal(t, 0.4, *f.Temperature)
	require.NotNil(t, f.MaxTokens)
	assert.Equal(t, 2048, *f.MaxTokens)
	require.NotNil(t, f.Toolshim)
	assert.True(t, *f.Toolshim)
	require.NotNil(t, f.ToolshimModel)
	assert.Equal(t, "llama3.2", *f.ToolshimModel)
}

func TestParse_YAML(t *testing.T) {
	path := writeFile(t, "model.yaml", `
model: gpt-4o
context_limit: 64000
`)

	f, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", f.Model)
	require.NotNil(t, f.ContextLimit)
	assert.Equal(t, 64000, *f.ContextLimit)
	assert.Nil(t, f.Temperature)
	assert.Nil(t, f.Toolshim)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "model.json", `{"model": "gpt-4o"}`)

	_, err := Parse(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_Malformed(t *testing.T) {
	path := writeFile(t, "model.toml", `model = [broken`)

	_, err := Parse(path)
	assert.Error(t, err)
}

func TestResolve_MissingModel(t *testing.T) {
	_, err := File{}.ResolveWithLookup(noEnv)
	assert.ErrorIs(t, err, ErrMissingModel)
}

func TestResolve_FileLimitWinsOverEnvironment(t *testing.T) {
	limit := 64_000
	f := File{Model: "gpt-4o", ContextLimit: &limit}

	cfg, err := f.ResolveWithLookup(fakeEnv(map[string]string{
		model.EnvContextLimit: "250000",
	}))
	require.NoError(t, err)
	assert.Equal(t, 64_000, cfg.EffectiveContextLimit())
}

func TestResolve_UnspecifiedFieldsUseEnvironment(t *testing.T) {
	f := File{Model: "unknown-model"}

	cfg, err := f.ResolveWithLookup(fakeEnv(map[string]string{
		model.EnvContextLimit:  "99000",
		model.EnvToolshim:      "true",
		model.EnvToolshimModel: "mistral-nemo",
		model.EnvTemperature:   "0.1",
	}))
	require.NoError(t, err)

	assert.Equal(t, 99_000, cfg.EffectiveContextLimit())
	assert.True(t, cfg.Toolshim)
	require.NotNil(t, cfg.ToolshimModel)
	assert.Equal(t, "mistral-nemo", *cfg.ToolshimModel)
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, 0.1, *cfg.Temperature)
}

func TestResolve_FileOverridesEnvironment(t *testing.T) {
	shim := false
	f := File{Model: "unknown-model", Toolshim: &shim}

	cfg, err := f.ResolveWithLookup(fakeEnv(map[string]string{
		model.EnvToolshim: "true",
	}))
	require.NoError(t, err)
	assert.False(t, cfg.Toolshim)
}

func TestResolve_ContextEnvVar(t *testing.T) {
	f := File{Model: "unknown-model", ContextEnvVar: "MYAPP_LEAD_CONTEXT_LIMIT"}

	cfg, err := f.ResolveWithLookup(fakeEnv(map[string]string{
		"MYAPP_LEAD_CONTEXT_LIMIT": "300000",
		model.EnvContextLimit:      "250000",
	}))
	require.NoError(t, err)
	assert.Equal(t, 300_000, cfg.EffectiveContextLimit())
}

func TestLoad(t *testing.T) {
	t.Setenv(model.EnvContextLimit, "")
	t.Setenv(model.EnvToolshim, "")
	t.Setenv(model.EnvToolshimModel, "")
	t.Setenv(model.EnvTemperature, "")

	path := writeFile(t, "model.toml", `
model = "claude-sonnet-4"
temperature = 0.2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "claude-sonnet-4", cfg.ModelName)
	assert.Equal(t, 200_000, cfg.EffectiveContextLimit())
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, 0.2, *cfg.Temperature)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
