package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func pointAtMissingConfig(t *testing.T) {
	t.Helper()
	t.Setenv("FORMPAD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
}

func TestLoadDefaults(t *testing.T) {
	pointAtMissingConfig(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, filepath.IsAbs(cfg.Database.Path))
	require.Equal(t, filepath.Join("formpad", "formpad.db"), filepath.Join(filepath.Base(filepath.Dir(cfg.Database.Path)), filepath.Base(cfg.Database.Path)))
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "profile", cfg.UI.StartForm)
	require.Equal(t, 5, cfg.UI.SubmissionLimit)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[database]\npath = \"/tmp/pad.db\"\n\n[ui]\nsubmission_limit = 9\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("FORMPAD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "/tmp/pad.db", cfg.Database.Path)
	require.Equal(t, 9, cfg.UI.SubmissionLimit)
	// untouched keys keep their defaults
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "profile", cfg.UI.StartForm)
}

func TestEnvOverride(t *testing.T) {
	pointAtMissingConfig(t)
	t.Setenv("FORMPAD_UI_START_FORM", "feedback")
	t.Setenv("FORMPAD_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "feedback", cfg.UI.StartForm)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("FORMPAD_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/roundtrip.db"},
		Log:      LogConfig{Path: "/tmp/roundtrip.log", Level: "warn"},
		UI:       UIConfig{StartForm: "shipping", SubmissionLimit: 3},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
