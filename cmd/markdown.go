package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/postfmt/core/normalize"
)

var markdownCmd = &cobra.Command{
	Use:   "markdown [file]",
	Short: "Convert editor HTML into marker text (**bold**, _italic_, - items)",
	Long: `Markdown converts HTML into the marker syntax that "postfmt format"
accepts, so a draft written in a rich-text editor can be reviewed or edited
as plain text before formatting.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, _, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		md, err := normalize.NewMarkdownExporter().Export(html)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), md)
		return err
	},
}

func init() {
	rootCmd.AddCommand(markdownCmd)
}
