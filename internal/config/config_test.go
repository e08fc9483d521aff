package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.False(t, cfg.Render.ExtraSpace)
	assert.Zero(t, cfg.Render.Workers)
	assert.False(t, cfg.Render.Dedupe)
	assert.Equal(t, "menu", cfg.Output.Format)
	assert.True(t, cfg.Output.Snippets)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestDefaultYAMLIsACopy(t *testing.T) {
	a := DefaultYAML()
	require.NotEmpty(t, a)
	a[0] = 'X'
	assert.NotEqual(t, byte('X'), DefaultYAML()[0])
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cxcomplete.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  extraSpace: true\noutput:\n  format: lsp\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Render.ExtraSpace)
	assert.Equal(t, "lsp", cfg.Output.Format)
	assert.True(t, cfg.Output.Snippets, "keys missing from the file keep their default")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEmptyPathAndEmptyFile(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, def, cfg)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# nothing here\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unknown key", body: "render:\n  colour: red\n", wantErr: "colour"},
		{name: "bad format", body: "output:\n  format: html\n", wantErr: "output.format"},
		{name: "negative workers", body: "render:\n  workers: -2\n", wantErr: "render.workers"},
		{name: "bad level", body: "log:\n  level: loud\n", wantErr: "log.level"},
		{name: "bad log format", body: "log:\n  format: xml\n", wantErr: "log.format"},
		{name: "not yaml", body: "render: [\n", wantErr: "decode config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, int8(-1), Config{Log: LogConfig{Level: "debug"}}.LogLevel())
	assert.Equal(t, int8(0), Config{Log: LogConfig{Level: "nonsense"}}.LogLevel())
}

func TestYAMLRoundTripsThroughMerge(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	def.Render.Workers = 3

	out, err := def.YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "extraSpace: false")
	assert.Contains(t, out, "workers: 3")

	back, err := Merge(Config{}, []byte(out))
	require.NoError(t, err)
	assert.Equal(t, def, back)
}

func TestMergeColors(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, ColorsConfig{}, def.Output.Colors)

	cfg, err := Merge(def, []byte("output:\n  colors:\n    kind: \"5\"\n    separator: \"#444444\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "5", cfg.Output.Colors.Kind)
	assert.Equal(t, "#444444", cfg.Output.Colors.Separator)
	assert.Empty(t, cfg.Output.Colors.Label)
	assert.Equal(t, "menu", cfg.Output.Format)
}
