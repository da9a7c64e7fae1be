// Package render turns deck content into HTML documents.
//
// Pages are assembled from base.html, the shared slide primitives in
// primitives.html and one page template. Each page gets its own template set
// because every page defines "content".
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/go-while/go-grantdecks/internal/models"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html static/deck.css
var templateFS embed.FS

const (
	PageHome  = "home.html"
	PageDeck  = "deck.html"
	PageError = "error.html"
)

// HomeTitle is the document title and top heading of the home view
const HomeTitle = "NeuroAI Grant Slide Decks"

func init() {
	message.Set(language.English, "%d decks",
		plural.Selectf(1, "%d", "=1", "%d deck", "other", "%d decks"))
	message.Set(language.English, "%d slides",
		plural.Selectf(1, "%d", "=1", "%d slide", "other", "%d slides"))
}

// PageData represents data shared by every page
type PageData struct {
	Title      string
	AppVersion string
	Standalone bool // exported file: no links to server-only assets
	Stylesheet template.CSS
}

// DeckLink represents one entry of the home page deck list
type DeckLink struct {
	Slug  string
	Title string
	Href  string
	Label string
}

// HomeData represents data for the home page
type HomeData struct {
	PageData
	Decks   []DeckLink
	Summary string
}

// SlideView represents one content slide with its position in the deck
type SlideView struct {
	Theme  models.Theme
	Slide  models.Slide
	Number int
	Label  string
}

// DeckData represents data for a deck page
type DeckData struct {
	PageData
	Deck       *models.Deck
	TitleLabel string // counter shown on the title slide
	Slides     []SlideView
}

// ErrorData represents data for the error page
type ErrorData struct {
	PageData
	StatusCode int
	Error      string
}

type themedBlock struct {
	Theme models.Theme
	Block models.Block
}

type themedBullet struct {
	Theme  models.Theme
	Bullet models.Bullet
}

// Renderer holds the parsed page templates. It is safe for concurrent use.
type Renderer struct {
	pages      map[string]*template.Template
	printer    *message.Printer
	stylesheet template.CSS
}

// New parses all embedded templates; labels are formatted for tag
func New(tag language.Tag) (*Renderer, error) {
	css, err := fs.ReadFile(templateFS, "static/deck.css")
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	funcs := template.FuncMap{
		"themed": func(t models.Theme, b models.Block) themedBlock {
			return themedBlock{Theme: t, Block: b}
		},
		"themedBullet": func(t models.Theme, b models.Bullet) themedBullet {
			return themedBullet{Theme: t, Bullet: b}
		},
		"isLast": func(i, n int) bool {
			return i == n-1
		},
	}

	r := &Renderer{
		pages:      make(map[string]*template.Template),
		printer:    message.NewPrinter(tag),
		stylesheet: template.CSS(css),
	}
	for _, page := range []string{PageHome, PageDeck, PageError} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/base.html",
			"templates/primitives.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Must panics if New failed
func Must(r *Renderer, err error) *Renderer {
	if err != nil {
		panic(err)
	}
	return r
}

// BuildHome prepares home page data; href maps a deck to its link target
func (r *Renderer) BuildHome(page PageData, summaries []models.DeckSummary, href func(models.DeckSummary) string) HomeData {
	data := HomeData{PageData: page}
	total := 0
	for _, s := range summaries {
		data.Decks = append(data.Decks, DeckLink{
			Slug:  s.Slug,
			Title: s.Title,
			Href:  href(s),
			Label: r.printer.Sprintf("%d slides", s.SlideCount),
		})
		total += s.SlideCount
	}
	data.Summary = r.printer.Sprintf("%d decks", len(summaries)) + ", " + r.printer.Sprintf("%d slides", total)
	return data
}

// BuildDeck prepares deck page data. Slide 1 is the title slide, so
// content slides are numbered from 2.
func (r *Renderer) BuildDeck(page PageData, deck *models.Deck) DeckData {
	total := deck.SlideCount()
	data := DeckData{
		PageData:   page,
		Deck:       deck,
		TitleLabel: r.printer.Sprintf("Slide %d of %d", 1, total),
	}
	for i, s := range deck.Slides {
		n := i + 2
		data.Slides = append(data.Slides, SlideView{
			Theme:  deck.Theme,
			Slide:  s,
			Number: n,
			Label:  r.printer.Sprintf("Slide %d of %d", n, total),
		})
	}
	return data
}

// Home writes the home page
func (r *Renderer) Home(w io.Writer, data HomeData) error {
	data.Stylesheet = r.stylesheet
	return r.execute(w, PageHome, data)
}

// Deck writes a deck page
func (r *Renderer) Deck(w io.Writer, data DeckData) error {
	data.Stylesheet = r.stylesheet
	return r.execute(w, PageDeck, data)
}

// Error writes the error page
func (r *Renderer) Error(w io.Writer, data ErrorData) error {
	data.Stylesheet = r.stylesheet
	return r.execute(w, PageError, data)
}

// execute renders into a buffer first so a failing template never leaves a half-written page
func (r *Renderer) execute(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("execute %s: %w", page, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", page, err)
	}
	return nil
}
