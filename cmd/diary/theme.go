package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zenshop/diary/theme"
)

func newThemeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Write tailwind.config.js for the CSS build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := theme.Default()
			if out == "" {
				return cfg.WriteTailwindConfig(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := cfg.WriteTailwindConfig(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}
