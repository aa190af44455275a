package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"anagram/internal/app"
	"anagram/internal/dictionary"
)

func dictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage word lists",
	}
	cmd.AddCommand(dictCompileCmd(), dictFingerprintCmd())
	return cmd
}

func dictCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the word list into a DAWG index for the index backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			indexPath := cfg.Dictionary.IndexPath
			if indexPath == "" {
				indexPath = cfg.Dictionary.Path + ".dawg"
			}
			n, err := dictionary.CompileIndexFile(cfg.Dictionary.Path, indexPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Compiled %d words into %s\n", n, indexPath)
			return nil
		},
	}
	addDictionaryFlags(cmd.Flags(), app.DefaultConfig())
	return cmd
}

func dictFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the word list fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := dictionary.FingerprintFile(cfg.Dictionary.Path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	addDictionaryFlags(cmd.Flags(), app.DefaultConfig())
	return cmd
}
