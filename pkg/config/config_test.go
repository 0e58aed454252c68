package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 40, cfg.Spawn.MaxBodies)
	assert.Equal(t, 10.0, cfg.Spawn.MinRadius)
	assert.Equal(t, 40.0, cfg.Spawn.MaxRadius)
	assert.Equal(t, 0.0, cfg.Engine.Gravity.Scale)
	assert.Equal(t, IterationsConfig{Velocity: 4, Position: 6, Constraint: 2}, cfg.Engine.Iterations)
	assert.Equal(t, color.RGBA{A: 0xff}, cfg.FillColor())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "overlay keeps defaults",
			data: "engine:\n  gravity:\n    scale: 0.001\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0.001, cfg.Engine.Gravity.Scale)
				assert.Equal(t, -5.0, cfg.Engine.Gravity.Y)
				assert.Equal(t, 40, cfg.Spawn.MaxBodies)
			},
		},
		{
			name: "iterations are not range checked",
			data: "engine:\n  iterations:\n    velocity: -3\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, -3, cfg.Engine.Iterations.Velocity)
			},
		},
		{
			name: "long hex fill",
			data: "spawn:\n  fill_style: \"#ff0066\"\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, color.RGBA{R: 0xff, G: 0x00, B: 0x66, A: 0xff}, cfg.FillColor())
			},
		},
		{
			name:    "empty radius range",
			data:    "spawn:\n  min_radius: 40\n  max_radius: 40\n",
			wantErr: true,
		},
		{
			name:    "bad fill",
			data:    "spawn:\n  fill_style: black\n",
			wantErr: true,
		},
		{
			name:    "zero window",
			data:    "window:\n  width: 0\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			data:    "engine: [",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballpit.yaml")
	cfg := DefaultConfig()
	cfg.Spawn.MaxBodies = 12
	data, err := cfg.Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
