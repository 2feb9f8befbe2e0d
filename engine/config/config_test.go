package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverridesOnlyNamedFields(t *testing.T) {
	cfg, err := Parse([]byte(`
max_fps: 30
window:
  title: picking
camera:
  position: [0, 5, 20]
`))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.MaxFps)
	assert.Equal(t, "picking", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, [3]float32{0, 5, 20}, cfg.Camera.Position)
	assert.Equal(t, float32(45), cfg.Camera.FovDegrees)
	assert.True(t, cfg.DepthTest)
}

func TestParseExplicitZeroFps(t *testing.T) {
	cfg, err := Parse([]byte("max_fps: 0\ncull_face: false\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.MaxFps)
	assert.False(t, cfg.CullFace)
}

func TestParseZeroSizesFallBack(t *testing.T) {
	cfg, err := Parse([]byte("window: {width: 0, height: 0}\n"))
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"negative fps", "max_fps: -1", "max_fps"},
		{"inverted clip planes", "camera: {near: 10, far: 1}", "near < far"},
		{"fov out of range", "camera: {fov_degrees: 200}", "fov_degrees"},
		{"eye on target", "camera: {position: [0, 0, 0]}", "must differ"},
		{"malformed", "max_fps: [", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clear_color: [0.1, 0.2, 0.3, 1]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.ClearColor)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}
