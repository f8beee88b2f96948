package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kedare/wordsmith/internal/api"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultServer, cfg.Client.Server)
	assert.Equal(t, 2*time.Second, cfg.CopyAck())
	assert.Equal(t, api.CodecJSON, cfg.Codec())
	assert.True(t, cfg.History.Enabled)
}

func TestLoadMissingDefaultFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvServer, "")

	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvServer, "")

	want := filepath.Join(dir, "wordsmith", FileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(want), 0o700))
	require.NoError(t, os.WriteFile(want, []byte("[ui]\ncopy_ack_ms = 500\n"), 0o600))

	cfg, path, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Equal(t, 500*time.Millisecond, cfg.CopyAck())
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv(EnvServer, "")

	path := writeConfig(t, `
[client]
server = "http://solver.internal:8080"
codec = "msgpack"

[defaults]
group_by = "first-letter"
view_type = "flat"

[history]
enabled = false
`)

	cfg, got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "http://solver.internal:8080", cfg.Client.Server)
	assert.Equal(t, api.CodecMsgpack, cfg.Codec())
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 20, cfg.History.Limit)

	d, err := cfg.FormDefaults()
	require.NoError(t, err)
	assert.Equal(t, api.GroupByFirstLetter, d.GroupBy)
	assert.Equal(t, api.ViewFlat, d.ViewType)
	assert.Equal(t, api.GroupOrderAsc, d.SortGroups)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv(EnvServer, "https://words.example.com")

	cfg, _, err := Load(writeConfig(t, "[client]\nserver = \"http://ignored\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "https://words.example.com", cfg.Client.Server)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"codec", "[client]\ncodec = \"xml\"\n"},
		{"group_by", "[defaults]\ngroup_by = \"vowels\"\n"},
		{"sort_groups", "[defaults]\nsort_groups = \"sideways\"\n"},
		{"sort_within_groups", "[defaults]\nsort_within_groups = \"random\"\n"},
		{"view_type", "[defaults]\nview_type = \"tiles\"\n"},
		{"copy_ack_ms", "[ui]\ncopy_ack_ms = 0\n"},
		{"history limit", "[history]\nlimit = -1\n"},
		{"syntax", "[client\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvServer, "")

	cfg := Default()
	cfg.Server.Dictionary = "/usr/share/dict/words"

	path := filepath.Join(t.TempDir(), "sub", FileName)
	require.NoError(t, Save(cfg, path))

	loaded, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestHistoryPath(t *testing.T) {
	cfg := Default()
	cfg.History.Path = "/tmp/custom.db"

	path, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", path)

	cfg.History.Path = ""
	path, err = cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "history.db", filepath.Base(path))
}
