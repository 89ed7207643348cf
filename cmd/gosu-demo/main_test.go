package main

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestConfigFromFlags(t *testing.T) {
	cmd := newCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--driver", "glfw", "--width", "320", "--interval", "5ms", "-f"}))

	cfg, err := config(cmd)
	require.NoError(t, err)
	assert.Equal(t, "glfw", cfg.Driver)
	assert.Equal(t, std.XY[int]{X: 320, Y: 480}, cfg.Size)
	assert.Equal(t, 5*time.Millisecond, cfg.UpdateInterval)
	assert.True(t, cfg.Fullscreen)
	assert.Equal(t, "gosu demo", cfg.Caption)
}

func TestConfigFileWithOverrides(t *testing.T) {
	cmd := newCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", "window.yaml", "--height", "700"}))

	cfg, err := config(cmd)
	require.NoError(t, err)
	assert.Equal(t, "sdl2", cfg.Driver)
	assert.Equal(t, std.XY[int]{X: 800, Y: 700}, cfg.Size)
	assert.Equal(t, 16*time.Millisecond, cfg.UpdateInterval)
	assert.False(t, cfg.Fullscreen)
}

func TestUnknownDriver(t *testing.T) {
	_, err := driver("vulkan")
	assert.Error(t, err)

	d, err := driver("glfw")
	require.NoError(t, err)
	assert.NotNil(t, d)
}
