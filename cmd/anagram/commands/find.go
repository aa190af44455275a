package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"anagram/internal/app"
	"anagram/internal/lookup"
)

func findCmd() *cobra.Command {
	defaults := app.DefaultConfig()
	var (
		quiet bool
		wait  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "find [word...]",
		Short: "Look up every distinct permutation of each submitted word",
		Long: `Look up every distinct permutation of each submitted word.

Words are read one per line from stdin, or taken from the arguments. For each
word the sorted candidates are printed as Unknown, then each is looked up in
turn and printed again as WORD or NOT A WORD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			in := cmd.InOrStdin()
			if len(args) > 0 {
				in = strings.NewReader(strings.Join(args, "\n") + "\n")
			}

			w, err := app.NewWire(cfg, in, cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			defer w.Close()
			w.Display.Quiet = quiet
			if len(args) > 0 {
				w.Input.Prompt = ""
			}

			if cfg.Lookup.Mode == app.LookupHTTP && wait > 0 {
				if err := lookup.NewHTTP(cfg.Lookup.URL, lookup.WithHTTPLogger(log)).Ping(ctx, wait); err != nil {
					return err
				}
			}

			err = w.Finder.Run(ctx)
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(cmd.ErrOrStderr())
				return nil
			}
			return err
		},
	}

	flags := cmd.Flags()
	addLookupFlags(flags, defaults)
	flags.Int("max-symbols", defaults.Permutations.MaxSymbols, "reject words with more symbols than this (0 disables)")
	flags.Bool("disable-after-submit", defaults.Input.DisableAfterSubmit, "stop accepting input while a run is in flight")
	flags.BoolVarP(&quiet, "quiet", "q", false, "print only lookup outcomes")
	flags.DurationVar(&wait, "wait", 0, "in http mode, wait up to this long for lookupd to become ready")
	return cmd
}
