//go:build docgen

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newCmdDocGen() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "man [dir]",
		Short: "Generate man pages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs/man"
			if len(args) > 0 {
				dir = args[0]
			}
			hdr := &doc.GenManHeader{
				Title:   "TEMPCONV",
				Section: "1",
			}
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
			root := cmd.Root()
			root.DisableAutoGenTag = true
			return doc.GenManTree(root, hdr, dir)
		},
	})

	return cmd
}

func init() {
	extraCommands = append(extraCommands, newCmdDocGen)
}
