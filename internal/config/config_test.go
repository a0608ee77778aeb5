package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "overrides merge over defaults",
			yaml: "style: plain\nnames: [World, Compose]\nlabels:\n  less: Less\n",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "plain", c.Style)
				assert.Equal(t, []string{"World", "Compose"}, c.Names)
				assert.Equal(t, "Show more", c.Labels.More)
				assert.Equal(t, "Less", c.Labels.Less)
				assert.Equal(t, 1000, c.Rows())
			},
		},
		{
			name: "zero rows is kept",
			yaml: "count: 0\n",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 0, c.Rows())
			},
		},
		{
			name:    "negative count fails validation",
			yaml:    "count: -3\n",
			wantErr: "count must not be negative, got -3",
		},
		{
			name: "animate can be switched off",
			yaml: "animate: false\n",
			check: func(t *testing.T, c *Config) {
				assert.False(t, c.AnimationEnabled())
			},
		},
		{
			name:    "unknown style fails validation",
			yaml:    "style: fancy\n",
			wantErr: "config validation failed",
		},
		{
			name:    "negative padding fails validation",
			yaml:    "padding:\n  collapsed: -1\n  expanded: 2\n",
			wantErr: "padding must not be negative",
		},
		{
			name:    "invalid yaml syntax",
			yaml:    "invalid: [yaml: content",
			wantErr: "failed to unmarshal config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "greetings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestWriteThenLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sub", "greetings.yaml")
	want := Default()
	want.Theme = "neon"
	want.State.Backend = "sqlite"
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatePath(t *testing.T) {
	t.Parallel()
	c := Default()
	assert.Equal(t, "state.json", filepath.Base(c.StatePath()))
	c.State.Backend = "sqlite"
	assert.Equal(t, "state.sqlite", filepath.Base(c.StatePath()))
	c.State.Path = "/tmp/x.db"
	assert.Equal(t, "/tmp/x.db", c.StatePath())
}

func TestWriteThenLoad_ZeroRows(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "greetings.yaml")
	want := Default()
	zero := 0
	want.Count = &zero
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Rows())
}
