package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"anagram/internal/app"
	"anagram/internal/cliutil"
	"anagram/internal/logger"
	"anagram/internal/telemetry"
)

var (
	cfg *app.Config
	log logger.Logger = logger.NewNoopLogger()

	shutdownTracing = func(context.Context) error { return nil }
)

func newRootCommand() *cobra.Command {
	cliutil.InitViper()
	defaults := app.DefaultConfig()

	root := &cobra.Command{
		Use:           "anagram",
		Short:         "Find the anagrams of a word in a dictionary",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd)

			var err error
			if cfg, err = app.ReadConfig(); err != nil {
				return err
			}
			if err := cfg.Verify(); err != nil {
				return err
			}
			if log, err = logger.NewLogger(cfg.Log.Format, cfg.Log.Level); err != nil {
				return err
			}
			if cfg.Trace.Enabled {
				tp, err := telemetry.NewTracerProvider(
					telemetry.WithServiceName("anagram"),
					telemetry.WithOTLPEndpoint(cfg.Trace.OTLP.Endpoint),
					telemetry.WithSamplingRatio(cfg.Trace.SampleRatio),
				)
				if err != nil {
					return err
				}
				shutdownTracing = func(ctx context.Context) error {
					return errors.Join(tp.ForceFlush(ctx), tp.Shutdown(ctx))
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := shutdownTracing(context.Background()); err != nil {
				log.Error("failed to shutdown tracing", zap.Error(err))
			}
		},
	}

	root.PersistentFlags().String("log-format", defaults.Log.Format, "log format: text or json")
	root.PersistentFlags().String("log-level", "warn", "log level: none, debug, info, warn or error")
	addTraceFlags(root.PersistentFlags(), defaults)

	root.AddCommand(findCmd(), permuteCmd(), lookupCmd(), dictCmd())
	return root
}

func Execute() error {
	return newRootCommand().Execute()
}
