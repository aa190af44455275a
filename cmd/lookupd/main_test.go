package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"anagram/internal/app"
)

func TestFlagsReachConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{
		"--http-addr", "127.0.0.1:0",
		"--dictionary-backend", "memory",
		"--http-cors-allowed-origins", "http://a.test,http://b.test",
		"--metrics-enabled",
	}))
	bindRunFlags(cmd)

	cfg, err := app.ReadConfig()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:0", cfg.HTTP.Addr)
	require.Equal(t, "memory", cfg.Dictionary.Backend)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSAllowedOrigins)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "/usr/share/dict/words", cfg.Dictionary.Path)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte("cat\n"), 0o644))

	cfg := app.DefaultConfig()
	cfg.Log.Level = "none"
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.Dictionary.Backend = "memory"
	cfg.Dictionary.Path = path

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, run(ctx, cfg))
}

func TestRunMissingWordList(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Log.Level = "none"
	cfg.Dictionary.Path = filepath.Join(t.TempDir(), "nope")
	require.ErrorIs(t, run(context.Background(), cfg), os.ErrNotExist)
}
