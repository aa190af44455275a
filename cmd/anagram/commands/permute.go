package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"anagram/internal/permute"
)

func permuteCmd() *cobra.Command {
	var unsorted bool

	cmd := &cobra.Command{
		Use:   "permute <word>",
		Short: "Print the distinct permutations of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			out := cmd.OutOrStdout()

			if unsorted {
				n := 0
				for w := range permute.Words(word) {
					fmt.Fprintln(out, w)
					n++
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d permutations\n", n)
				return nil
			}

			words, err := permute.Sorted(word, cfg.Permutations.MaxSymbols)
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d permutations\n", len(words))
			return nil
		},
	}

	cmd.Flags().Int("max-symbols", permute.DefaultMaxSymbols, "reject words with more symbols than this (0 disables)")
	cmd.Flags().BoolVar(&unsorted, "unsorted", false, "stream in generation order, without the symbol limit")
	return cmd
}
