package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdconv/pkg/config"
)

func TestNewConfig(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	assert.Empty(t, cfg.OutDir)
	assert.False(t, cfg.Collect)
	assert.Zero(t, cfg.MaxDepth)
}

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			Extensions: []string{".md"},
			Exclude:    []string{"vendor/**"},
		}

		clone := original.Clone()
		require.NotNil(t, clone)

		clone.Extensions[0] = ".txt"
		clone.Exclude[0] = "changed"
		assert.Equal(t, ".md", original.Extensions[0])
		assert.Equal(t, "vendor/**", original.Exclude[0])
	})

	t.Run("preserves all fields", func(t *testing.T) {
		original := &config.Config{
			OutDir:         "build",
			Extensions:     []string{".md"},
			Exclude:        []string{"drafts/**"},
			Collect:        true,
			MaxDepth:       16,
			FollowSymlinks: true,
			Jobs:           4,
			CheckOnly:      true,
			Stdout:         true,
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	original := &config.Config{
		OutDir:     "public",
		Extensions: []string{".md", ".mdown"},
		Exclude:    []string{"node_modules/**"},
		Collect:    true,
		MaxDepth:   32,
	}

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, original, parsed)
}

func TestFromYAML(t *testing.T) {
	t.Run("parses known fields", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("out_dir: site\ncollect: true\nmax_depth: 8\n"))
		require.NoError(t, err)

		assert.Equal(t, "site", cfg.OutDir)
		assert.True(t, cfg.Collect)
		assert.Equal(t, 8, cfg.MaxDepth)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := config.FromYAML([]byte("out_dir: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("CLI-only fields are not loaded", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("jobs: 9\nstdout: true\n"))
		require.NoError(t, err)

		assert.Zero(t, cfg.Jobs)
		assert.False(t, cfg.Stdout)
	})
}
