package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftMarket_Go/internal/catalog"
	"github.com/osse101/CraftMarket_Go/internal/config"
	"github.com/osse101/CraftMarket_Go/internal/notify"
	"github.com/osse101/CraftMarket_Go/internal/testing/leaktest"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	sort.Strings(logs)

	require.Len(t, logs, LogFileRetentionCount)
	assert.Equal(t, "session_2026-01-04_00-00-00.log", logs[0], "the oldest files go first")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger(t *testing.T) {
	cfg := &config.Config{LogDir: filepath.Join(t.TempDir(), "logs"), LogLevel: "debug", LogFormat: "json", Environment: "test"}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.FileExists(t, f.Name())
}

func TestNewReloadNotifier(t *testing.T) {
	n, err := NewReloadNotifier(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, n, "no webhook means no notifier")

	n, err = NewReloadNotifier(&config.Config{DiscordWebhookURL: "https://discord.com/api/webhooks/123/abc"})
	require.NoError(t, err)
	assert.IsType(t, &notify.Discord{}, n)

	_, err = NewReloadNotifier(&config.Config{DiscordWebhookURL: "https://example.com/hook"})
	assert.Error(t, err)
}

func TestBackground_StopReleasesGoroutines(t *testing.T) {
	defer leaktest.Goroutines(t, 0)()

	bg := StartBackground(catalog.New(nil), nil, time.Hour)
	bg.Stop()
}
