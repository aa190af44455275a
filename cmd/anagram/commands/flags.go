package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"anagram/internal/app"
	"anagram/internal/cliutil"
)

// configKeys maps flag names to the config keys they set.
var configKeys = map[string]string{
	"log-format":            "log.format",
	"log-level":             "log.level",
	"dictionary-backend":    "dictionary.backend",
	"dictionary-path":       "dictionary.path",
	"dictionary-index-path": "dictionary.indexPath",
	"dictionary-cache-size": "dictionary.cacheSize",
	"lookup-mode":           "lookup.mode",
	"lookup-url":            "lookup.url",
	"lookup-retries":        "lookup.retries",
	"lookup-timeout":        "lookup.timeout",
	"lookup-cache-size":     "lookup.cacheSize",
	"max-symbols":           "permutations.maxSymbols",
	"disable-after-submit":  "input.disableAfterSubmit",
	"trace-enabled":         "trace.enabled",
	"trace-otlp-endpoint":   "trace.otlp.endpoint",
	"trace-sample-ratio":    "trace.sampleRatio",
}

// bindFlags binds the flags cmd defines to their config keys, and every key
// to its environment variable.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := configKeys[f.Name]; ok {
			cliutil.MustBindPFlag(key, f)
		}
	})
	for _, key := range configKeys {
		cliutil.MustBindEnv(key, cliutil.EnvName(key))
	}
}

func addDictionaryFlags(flags *pflag.FlagSet, d *app.Config) {
	flags.String("dictionary-backend", d.Dictionary.Backend, "dictionary backend: grep, memory or index")
	flags.String("dictionary-path", d.Dictionary.Path, "newline-delimited word list")
	flags.String("dictionary-index-path", d.Dictionary.IndexPath, "compiled index for the index backend (default <dictionary-path>.dawg)")
	flags.Int64("dictionary-cache-size", d.Dictionary.CacheSize, "cache up to this many dictionary answers (0 disables)")
}

func addLookupFlags(flags *pflag.FlagSet, d *app.Config) {
	flags.String("lookup-mode", d.Lookup.Mode, "lookup capability: stub, http or local")
	flags.String("lookup-url", d.Lookup.URL, "lookupd base URL for the http mode")
	flags.Int("lookup-retries", d.Lookup.Retries, "retries per failed http lookup")
	flags.Duration("lookup-timeout", d.Lookup.Timeout, "limit for a single lookup (0 means none)")
	flags.Int64("lookup-cache-size", d.Lookup.CacheSize, "cache up to this many answers across runs (0 disables)")
	addDictionaryFlags(flags, d)
}

func addTraceFlags(flags *pflag.FlagSet, d *app.Config) {
	flags.Bool("trace-enabled", d.Trace.Enabled, "export traces over OTLP")
	flags.String("trace-otlp-endpoint", d.Trace.OTLP.Endpoint, "OTLP collector address")
	flags.Float64("trace-sample-ratio", d.Trace.SampleRatio, "fraction of traces to sample")
}
