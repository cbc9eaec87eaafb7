package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zenshop/diary/content"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate every content file",
		Long: `Parse every markdown file under dir (default "content") and report
front matter problems. Exits non-zero if any file is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "content"
			if len(args) == 1 {
				dir = args[0]
			}
			info, err := os.Stat(dir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			posts, err := content.Load(os.DirFS(dir))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
				return fmt.Errorf("%s: content check failed", dir)
			}
			out := cmd.OutOrStdout()
			for _, p := range posts {
				fmt.Fprintf(out, "  ok  %s  %s\n", p.Date, p.Slug)
			}
			fmt.Fprintf(out, "%d posts, %d tags\n", len(posts), len(content.Tags(posts)))
			return nil
		},
	}
}
