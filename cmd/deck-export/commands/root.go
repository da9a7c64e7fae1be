// Package commands implements the deck-export CLI
package commands

import (
	"log"

	"github.com/go-while/go-grantdecks/internal/config"
	"github.com/go-while/go-grantdecks/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	renderer *render.Renderer
	lang     string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "deck-export",
		Short:        "Export the grant slide decks as standalone HTML files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return err
			}
			renderer, err = render.New(tag)
			return err
		},
	}
	root.PersistentFlags().StringVar(&lang, "lang", "en", "language tag used to format slide counters")

	root.AddCommand(exportCmd(), listCmd())
	return root
}

// Execute runs the CLI with os.Args
func Execute(version string) error {
	config.AppVersion = version
	log.SetPrefix("[EXPORT]: ")
	return newRootCmd().Execute()
}
