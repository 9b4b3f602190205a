package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SMARTATTEND_CONFIG", "")
	for _, k := range []string{
		"SMARTATTEND_STORE_BACKEND", "SMARTATTEND_UI_START_ROUTE", "SMARTATTEND_UI_TOAST_DURATION",
		"SMARTATTEND_ATTENDANCE_SUCCESS_PROBABILITY", "SMARTATTEND_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Store.Backend)
	require.Equal(t, filepath.Join(home, ".local", "share", "smartattend", "smartattend.db"), cfg.Database.Path)
	require.Equal(t, time.Second, cfg.UI.ClockInterval)
	require.Equal(t, 2*time.Second, cfg.UI.ToastDuration)
	require.InDelta(t, 0.8, cfg.Attendance.SuccessProbability, 1e-9)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[store]
backend = "file"

[ui]
start_route = "/admin"
toast_duration = "5s"

[attendance]
success_probability = 0.5
seed = 7
`), 0o600))
	t.Setenv("SMARTATTEND_CONFIG", path)
	t.Setenv("SMARTATTEND_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "file", cfg.Store.Backend)
	require.Equal(t, "/admin", cfg.UI.StartRoute)
	require.Equal(t, 5*time.Second, cfg.UI.ToastDuration)
	require.InDelta(t, 0.5, cfg.Attendance.SuccessProbability, 1e-9)
	require.Equal(t, uint64(7), cfg.Attendance.Seed)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	isolate(t)
	t.Setenv("SMARTATTEND_STORE_BACKEND", "redis")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SMARTATTEND_STORE_BACKEND", "memory")
	t.Setenv("SMARTATTEND_ATTENDANCE_SUCCESS_PROBABILITY", "1.5")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadBrokenFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store\nbackend ="), 0o600))
	t.Setenv("SMARTATTEND_CONFIG", path)
	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("SMARTATTEND_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Store.Backend = "memory"
	cfg.UI.StartRoute = "/student"
	cfg.UI.ClockInterval = 3 * time.Second
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
