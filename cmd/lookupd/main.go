package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"anagram/internal/app"
	"anagram/internal/cliutil"
	"anagram/internal/logger"
	"anagram/internal/server"
	"anagram/internal/telemetry"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cliutil.InitViper()

	cmd := &cobra.Command{
		Use:          "lookupd",
		Short:        "Serve dictionary lookups over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindRunFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.ReadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Verify(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	defaults := app.DefaultConfig()
	flags := cmd.Flags()

	flags.String("log-format", defaults.Log.Format, "log format: text or json")
	flags.String("log-level", defaults.Log.Level, "log level: none, debug, info, warn or error")

	flags.String("http-addr", defaults.HTTP.Addr, "the host:port address to serve lookups and the page on")
	flags.StringSlice("http-cors-allowed-origins", defaults.HTTP.CORSAllowedOrigins, "specifies the CORS allowed origins")
	flags.String("http-web-root", defaults.HTTP.WebRoot, "serve the page from this directory instead of the embedded copy")

	flags.String("dictionary-backend", defaults.Dictionary.Backend, "dictionary backend: grep, memory or index")
	flags.String("dictionary-path", defaults.Dictionary.Path, "newline-delimited word list")
	flags.String("dictionary-index-path", defaults.Dictionary.IndexPath, "compiled index for the index backend (default <dictionary-path>.dawg)")
	flags.Int64("dictionary-cache-size", defaults.Dictionary.CacheSize, "cache up to this many answers (0 disables)")

	flags.Bool("metrics-enabled", defaults.Metrics.Enabled, "serve Prometheus metrics")
	flags.String("metrics-addr", defaults.Metrics.Addr, "the host:port address to serve metrics on")

	flags.Bool("trace-enabled", defaults.Trace.Enabled, "export traces over OTLP")
	flags.String("trace-otlp-endpoint", defaults.Trace.OTLP.Endpoint, "OTLP collector address")
	flags.Float64("trace-sample-ratio", defaults.Trace.SampleRatio, "fraction of traces to sample")

	return cmd
}

// bindRunFlags binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	cliutil.BindFlag(flags, "log-format", "log.format")
	cliutil.BindFlag(flags, "log-level", "log.level")
	cliutil.BindFlag(flags, "http-addr", "http.addr")
	cliutil.BindFlag(flags, "http-cors-allowed-origins", "http.corsAllowedOrigins")
	cliutil.BindFlag(flags, "http-web-root", "http.webRoot")
	cliutil.BindFlag(flags, "dictionary-backend", "dictionary.backend")
	cliutil.BindFlag(flags, "dictionary-path", "dictionary.path")
	cliutil.BindFlag(flags, "dictionary-index-path", "dictionary.indexPath")
	cliutil.BindFlag(flags, "dictionary-cache-size", "dictionary.cacheSize")
	cliutil.BindFlag(flags, "metrics-enabled", "metrics.enabled")
	cliutil.BindFlag(flags, "metrics-addr", "metrics.addr")
	cliutil.BindFlag(flags, "trace-enabled", "trace.enabled")
	cliutil.BindFlag(flags, "trace-otlp-endpoint", "trace.otlp.endpoint")
	cliutil.BindFlag(flags, "trace-sample-ratio", "trace.sampleRatio")
}

func run(ctx context.Context, cfg *app.Config) error {
	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Trace.Enabled {
		tp, err := telemetry.NewTracerProvider(
			telemetry.WithServiceName("lookupd"),
			telemetry.WithOTLPEndpoint(cfg.Trace.OTLP.Endpoint),
			telemetry.WithSamplingRatio(cfg.Trace.SampleRatio),
		)
		if err != nil {
			return err
		}
		defer func() {
			ctx := context.Background()
			if err := errors.Join(tp.ForceFlush(ctx), tp.Shutdown(ctx)); err != nil {
				log.Error("failed to shutdown tracing", zap.Error(err))
			}
		}()
	}

	srv, closeDict, err := app.NewServer(cfg, log)
	if err != nil {
		log.Error("failed to build server", zap.Error(err))
		return err
	}
	defer closeDict()

	endpoints := []server.Endpoint{{Name: "http", Addr: cfg.HTTP.Addr, Handler: srv.Handler()}}
	if cfg.Metrics.Enabled {
		endpoints = append(endpoints, server.MetricsEndpoint(cfg.Metrics.Addr))
	}
	if err := server.Serve(ctx, log, endpoints...); err != nil {
		log.Error("server failed", zap.Error(err))
		return err
	}
	return nil
}
