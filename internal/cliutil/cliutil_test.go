package cliutil_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"anagram/internal/cliutil"
)

func TestEnvName(t *testing.T) {
	require.Equal(t, "ANAGRAM_LOOKUP_CACHESIZE", cliutil.EnvName("lookup.cacheSize"))
	require.Equal(t, "ANAGRAM_TRACE_OTLP_ENDPOINT", cliutil.EnvName("trace.otlp.endpoint"))
	require.Equal(t, "ANAGRAM_HTTP_WEB_ROOT", cliutil.EnvName("http.web-root"))
}

func TestBindFlag(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-symbols", 10, "")
	cliutil.BindFlag(flags, "max-symbols", "permutations.maxSymbols")

	require.Equal(t, 10, viper.GetInt("permutations.maxSymbols"))

	t.Setenv("ANAGRAM_PERMUTATIONS_MAXSYMBOLS", "7")
	require.Equal(t, 7, viper.GetInt("permutations.maxSymbols"))

	require.NoError(t, flags.Parse([]string{"--max-symbols", "4"}))
	require.Equal(t, 4, viper.GetInt("permutations.maxSymbols"))
}

func TestMustBindPFlagPanicsOnMissingFlag(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.Panics(t, func() {
		cliutil.MustBindPFlag("nope", nil)
	})
}
