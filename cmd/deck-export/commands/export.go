package commands

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-while/go-grantdecks/internal/config"
	"github.com/go-while/go-grantdecks/internal/decks"
	"github.com/go-while/go-grantdecks/internal/models"
	"github.com/go-while/go-grantdecks/internal/render"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		outDir string
		only   []string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write index.html and one <slug>.html per deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := exportSite(renderer, outDir, only)
			if err != nil {
				return err
			}
			for _, f := range written {
				log.Printf("wrote %s", f)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d files written to %s\n", len(written), outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	cmd.Flags().StringSliceVar(&only, "deck", nil, "export only these deck slugs (repeatable)")
	return cmd
}

// exportSite renders the home page and the selected decks into outDir.
// Links point at sibling files so the output works from disk.
func exportSite(r *render.Renderer, outDir string, slugs []string) ([]string, error) {
	selected := decks.All()
	if len(slugs) > 0 {
		selected = make([]*models.Deck, 0, len(slugs))
		seen := make(map[string]bool, len(slugs))
		for _, slug := range slugs {
			if seen[slug] {
				continue
			}
			seen[slug] = true
			deck, err := decks.Lookup(slug)
			if err != nil {
				return nil, err
			}
			selected = append(selected, deck)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	page := func(title string) render.PageData {
		return render.PageData{Title: title, AppVersion: config.AppVersion, Standalone: true}
	}

	var written []string
	summaries := make([]models.DeckSummary, 0, len(selected))
	for _, deck := range selected {
		summaries = append(summaries, deck.Summary())

		name := filepath.Join(outDir, deck.Slug+".html")
		if err := writeFile(name, func(f *os.File) error {
			return r.Deck(f, r.BuildDeck(page(deck.Title.Heading), deck))
		}); err != nil {
			return written, err
		}
		written = append(written, name)
	}

	index := filepath.Join(outDir, "index.html")
	home := r.BuildHome(page(render.HomeTitle), summaries, func(d models.DeckSummary) string {
		return d.Slug + ".html"
	})
	if err := writeFile(index, func(f *os.File) error {
		return r.Home(f, home)
	}); err != nil {
		return written, err
	}
	return append(written, index), nil
}

func writeFile(name string, fn func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
