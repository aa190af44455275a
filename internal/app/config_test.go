package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"anagram/internal/app"
	"anagram/internal/cliutil"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := app.DefaultConfig()
	require.NoError(t, cfg.Verify())
	require.Equal(t, "127.0.0.1:2525", cfg.HTTP.Addr)
	require.Equal(t, app.LookupStub, cfg.Lookup.Mode)
	require.Equal(t, 10, cfg.Permutations.MaxSymbols)
	require.True(t, cfg.Input.DisableAfterSubmit)
	require.Zero(t, cfg.Lookup.Timeout)
}

func TestVerify(t *testing.T) {
	tests := map[string]struct {
		mutate func(*app.Config)
		want   string
	}{
		"log format":    {func(c *app.Config) { c.Log.Format = "xml" }, "log.format"},
		"log level":     {func(c *app.Config) { c.Log.Level = "trace" }, "log.level"},
		"backend":       {func(c *app.Config) { c.Dictionary.Backend = "sqlite" }, "dictionary.backend"},
		"path":          {func(c *app.Config) { c.Dictionary.Path = "" }, "dictionary.path"},
		"mode":          {func(c *app.Config) { c.Lookup.Mode = "oracle" }, "lookup.mode"},
		"url":           {func(c *app.Config) { c.Lookup.Mode, c.Lookup.URL = app.LookupHTTP, "" }, "lookup.url"},
		"retries":       {func(c *app.Config) { c.Lookup.Retries = -1 }, "lookup.retries"},
		"timeout":       {func(c *app.Config) { c.Lookup.Timeout = -time.Second }, "lookup.timeout"},
		"max symbols":   {func(c *app.Config) { c.Permutations.MaxSymbols = -1 }, "permutations.maxSymbols"},
		"sample ratio":  {func(c *app.Config) { c.Trace.SampleRatio = 2 }, "trace.sampleRatio"},
		"metrics clash": {func(c *app.Config) { c.Metrics.Enabled, c.Metrics.Addr = true, c.HTTP.Addr }, "metrics.addr"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := app.DefaultConfig()
			tc.mutate(cfg)
			require.ErrorContains(t, cfg.Verify(), tc.want)
		})
	}
}

func TestReadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
lookup:
  mode: http
  url: http://127.0.0.1:9999
  timeout: 2s
  cacheSize: 500
dictionary:
  backend: index
  indexPath: /tmp/words.dawg
http:
  corsAllowedOrigins: ["http://example.test"]
`), 0o644))

	cliutil.InitViper()
	viper.AddConfigPath(dir)
	cliutil.MustBindEnv("permutations.maxSymbols", cliutil.EnvName("permutations.maxSymbols"))
	t.Setenv("ANAGRAM_PERMUTATIONS_MAXSYMBOLS", "6")

	cfg, err := app.ReadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Verify())

	require.Equal(t, app.LookupHTTP, cfg.Lookup.Mode)
	require.Equal(t, "http://127.0.0.1:9999", cfg.Lookup.URL)
	require.Equal(t, 2*time.Second, cfg.Lookup.Timeout)
	require.EqualValues(t, 500, cfg.Lookup.CacheSize)
	require.Equal(t, "index", cfg.Dictionary.Backend)
	require.Equal(t, "/tmp/words.dawg", cfg.Dictionary.IndexPath)
	require.Equal(t, "/usr/share/dict/words", cfg.Dictionary.Path, "defaults survive")
	require.Equal(t, []string{"http://example.test"}, cfg.HTTP.CORSAllowedOrigins)
	require.Equal(t, 6, cfg.Permutations.MaxSymbols)
}
