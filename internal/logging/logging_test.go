package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/hrdesk/internal/config"
)

// setupTest points the state directory at a temp dir and reloads config.
func setupTest(t *testing.T, env map[string]string) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv(config.EnvPrefix+"ENV_FILE", filepath.Join(tmp, "missing.env"))
	t.Setenv(config.EnvPrefix+"CONFIG_PATH", "")
	for _, key := range []string{"LOGGING_ENABLED", "LOGGING_LEVEL", "LOGGING_MAX_FILES", "DEBUG", "STATE_DIR"} {
		t.Setenv(config.EnvPrefix+key, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+key))
	}
	for k, v := range env {
		t.Setenv(config.EnvPrefix+k, v)
	}
	config.Load()
	t.Cleanup(func() { ShutdownGlobal() })
	return tmp
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestFromGlobalConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		enabled  bool
		level    string
		maxFiles int
	}{
		{"defaults", nil, false, "info", 10},
		{"configured", map[string]string{"LOGGING_ENABLED": "true", "LOGGING_LEVEL": "warn", "LOGGING_MAX_FILES": "3"}, true, "warn", 3},
		{"debug wins", map[string]string{"LOGGING_LEVEL": "error", "DEBUG": "true"}, false, "debug", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTest(t, tt.env)
			cfg := FromGlobalConfig()
			assert.Equal(t, tt.enabled, cfg.Enabled)
			assert.Equal(t, tt.level, cfg.Level)
			assert.Equal(t, tt.maxFiles, cfg.MaxFiles)
			assert.Equal(t, os.Getpid(), cfg.PID)
		})
	}
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t, nil)

	dir, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "hrdesk", "logs"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLogDirFallsBackToTempDir(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	setupTest(t, map[string]string{"STATE_DIR": blocker})

	dir, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.TempDir(), "hrdesk", "logs"), dir)
}

func TestInitDisabled(t *testing.T) {
	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, noopLogger{}, l)
	l.Info("ignored")
	assert.NotPanics(t, func() { l.With("a", 1).Error("ignored") })
	assert.NoError(t, l.Shutdown())
}

func TestInitWritesJSONWithRedaction(t *testing.T) {
	setupTest(t, nil)
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Command = "sync"

	l, err := Init(cfg)
	require.NoError(t, err)
	path := l.(*fileLogger).path
	assert.True(t, strings.HasPrefix(filepath.Base(path), "hrdesk_"))
	assert.True(t, strings.HasSuffix(path, "_sync.log"))

	l.With("kind", "employees").Info("synced", "count", 25, "api_token", "abc123")
	l.Debug("request", "apiToken", "xyz", "url", "http://h/api")
	require.NoError(t, l.Shutdown())

	entries := readEntries(t, path)
	require.Len(t, entries, 2)
	assert.Equal(t, "synced", entries[0]["msg"])
	assert.Equal(t, "employees", entries[0]["kind"])
	assert.Equal(t, float64(25), entries[0]["count"])
	assert.Equal(t, "[REDACTED]", entries[0]["api_token"])
	assert.Equal(t, "sync", entries[0]["command"])
	assert.Equal(t, "[REDACTED]", entries[1]["apiToken"])
	assert.Equal(t, "http://h/api", entries[1]["url"])
}

func TestLevelFiltering(t *testing.T) {
	setupTest(t, nil)
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "warn"

	l, err := Init(cfg)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown")
	require.NoError(t, l.Shutdown())

	entries := readEntries(t, l.(*fileLogger).path)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "shown", e["msg"])
	}
}

func TestLogAfterShutdownIsDropped(t *testing.T) {
	setupTest(t, nil)
	cfg := DefaultConfig()
	cfg.Enabled = true
	l, err := Init(cfg)
	require.NoError(t, err)
	require.NoError(t, l.Shutdown())
	assert.NotPanics(t, func() { l.Info("late") })
	assert.NoError(t, l.Shutdown())
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		name := filepath.Join(dir, fmt.Sprintf("hrdesk_20250101_12000%d_PID1_sync.log", i))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0600))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(name, mod, mod))
	}
	other := filepath.Join(dir, "notes.log")
	require.NoError(t, os.WriteFile(other, nil, 0600))

	require.NoError(t, rotate(dir, 2))

	names, err := filepath.Glob(filepath.Join(dir, "hrdesk_*.log"))
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "hrdesk_20250101_120003_PID1_sync.log", filepath.Base(names[0]))
	assert.FileExists(t, other)
}

func TestRotateDisabled(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("hrdesk_%d.log", i)), nil, 0600))
	}
	require.NoError(t, rotate(dir, 0))
	names, _ := filepath.Glob(filepath.Join(dir, "hrdesk_*.log"))
	assert.Len(t, names, 3)
}

func TestRedactor(t *testing.T) {
	r := newRedactor()
	tests := []struct {
		key       string
		sensitive bool
	}{
		{"api_token", true},
		{"apiToken", true},
		{"Authorization", true},
		{"db-password", true},
		{"monkey", false},
		{"tokenizer", false},
		{"kind", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, r.isSensitive(tt.key))
		})
	}

	in := []any{"api_token", "abc", "count", 1, 42, "odd"}
	out := r.redact(in)
	assert.Equal(t, []any{"api_token", "[REDACTED]", "count", 1, 42, "odd"}, out)
	assert.Equal(t, "abc", in[1])
}

func TestInitGlobal(t *testing.T) {
	setupTest(t, map[string]string{"LOGGING_ENABLED": "true"})

	require.NoError(t, InitGlobal("list"))
	path := CurrentLogFile()
	require.NotEmpty(t, path)
	assert.True(t, strings.HasSuffix(path, "_list.log"))

	Info("listed", "kind", "departments")
	require.NoError(t, ShutdownGlobal())
	assert.Empty(t, CurrentLogFile())

	var found bool
	for _, e := range readEntries(t, path) {
		if e["msg"] == "listed" {
			found = true
			assert.Equal(t, "departments", e["kind"])
		}
	}
	assert.True(t, found)
}

func TestInitGlobalDisabled(t *testing.T) {
	setupTest(t, nil)
	require.NoError(t, InitGlobal("list"))
	assert.Empty(t, CurrentLogFile())
	assert.IsType(t, noopLogger{}, GetGlobal())
}
