package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-while/go-grantdecks/internal/decks"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print slug, slide count and title of every deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tSLIDES\tTITLE")
			for _, d := range decks.Summaries() {
				fmt.Fprintf(w, "%s\t%d\t%s\n", d.Slug, d.SlideCount, d.Title)
			}
			return w.Flush()
		},
	}
}
