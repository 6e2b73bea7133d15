// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassfire/gridgraph"
	"github.com/katalvlaran/grassfire/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grassfire.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.Rows)
	assert.Equal(t, 8, cfg.Cols)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, cfg.Start())
	assert.Equal(t, gridgraph.Coord{Row: 7, Col: 7}, cfg.Goal())
}

func TestLoad_Overlay(t *testing.T) {
	path := writeFile(t, `
rows                 = 20
cols                 = 30
goal_row             = 19
goal_col             = 29
seed                 = 7
exclude_start_column = true
renderer             = "text"
listen               = ":8080"
log_format           = "json"
`)
	cfg, err := config.Load(path, config.Default())
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 30, cfg.Cols)
	assert.Equal(t, gridgraph.Coord{Row: 19, Col: 29}, cfg.Goal())
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.ExcludeStartColumn)
	assert.Equal(t, config.RendererText, cfg.Renderer)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "json", cfg.LogFormat)

	// untouched attributes keep their defaults
	assert.Equal(t, 20, cfg.Density)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.hcl"), config.Default())
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, `rows = `), config.Default())
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = config.Load(writeFile(t, `colour = "red"`), config.Default())
	assert.ErrorContains(t, err, "failed to decode HCL file")

	_, err = config.Load(writeFile(t, `rows = "many"`), config.Default())
	assert.ErrorContains(t, err, "failed to decode HCL file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero rows", func(c *config.Config) { c.Rows = 0 }},
		{"start outside", func(c *config.Config) { c.StartCol = 8 }},
		{"goal outside", func(c *config.Config) { c.GoalRow = -1 }},
		{"density high", func(c *config.Config) { c.Density = 101 }},
		{"density low", func(c *config.Config) { c.Density = -1 }},
		{"negative fps", func(c *config.Config) { c.FPS = -1 }},
		{"renderer", func(c *config.Config) { c.Renderer = "opengl" }},
		{"log level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"log format", func(c *config.Config) { c.LogFormat = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
