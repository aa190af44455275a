package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"anagram/internal/app"
	"anagram/internal/domain"
)

func lookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Look words up directly, without permuting them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lk, done, err := app.NewLookup(cfg, log)
			if err != nil {
				return err
			}
			defer done()

			for _, word := range args {
				res, err := lk.Lookup(cmd.Context(), word)
				if err != nil {
					return fmt.Errorf("lookup %q: %w", word, err)
				}
				status := domain.StatusNonWord
				if res.IsAWord() {
					status = domain.StatusWord
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", word, status)
			}
			return nil
		},
	}
	addLookupFlags(cmd.Flags(), app.DefaultConfig())
	return cmd
}
