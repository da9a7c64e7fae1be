// Package models defines core data structures for go-grantdecks
package models

import "fmt"

// BlockKind selects how a Block is laid out inside a slide
type BlockKind string

const (
	BlockColumns  BlockKind = "columns"  // grouped sections side by side or stacked
	BlockBullets  BlockKind = "bullets"  // optional heading plus bullet list
	BlockTimeline BlockKind = "timeline" // optional heading plus dated entries
	BlockText     BlockKind = "text"     // free-form paragraph or quote
)

// Theme is the accent colour family a deck draws its class tokens from
type Theme struct {
	Accent string `json:"accent"` // tailwind colour name, e.g. "blue"
}

// Deck represents one grant-strategy presentation served at /<Slug>
type Deck struct {
	Slug   string     `json:"slug"`
	Name   string     `json:"name"`
	Theme  Theme      `json:"theme"`
	Title  TitleSlide `json:"title"`
	Slides []Slide    `json:"slides"`
}

// TitleSlide is the opening banner of a deck
type TitleSlide struct {
	Heading  string `json:"heading"`
	Subtitle string `json:"subtitle"`
	Tagline  string `json:"tagline"`
	Audience string `json:"audience"`
}

// Slide represents a titled section of a deck
type Slide struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// Block represents one content grouping inside a slide.
// Only the fields matching Kind are populated.
type Block struct {
	Kind       BlockKind       `json:"kind"`
	Heading    string          `json:"heading,omitempty"`
	Columns    int             `json:"columns,omitempty"`     // BlockColumns: 1 (stacked) or 2
	Sections   []Block         `json:"sections,omitempty"`    // BlockColumns
	Bullets    []Bullet        `json:"bullets,omitempty"`     // BlockBullets
	Entries    []TimelineEntry `json:"entries,omitempty"`     // BlockTimeline
	LabelWidth string          `json:"label_width,omitempty"` // BlockTimeline
	RowGap     string          `json:"row_gap,omitempty"`     // BlockTimeline: margin below every row but the last
	Text       string          `json:"text,omitempty"`        // BlockText
	Quote      bool            `json:"quote,omitempty"`
}

// Bullet is a leaf list item, optionally introduced by an emphasized lead phrase
type Bullet struct {
	Lead string `json:"lead,omitempty"`
	Text string `json:"text"`
}

// TimelineEntry pairs a date or duration label with its description
type TimelineEntry struct {
	When string `json:"when"`
	What string `json:"what"`
}

// DeckSummary represents the listing form of a deck used by the API and home page
type DeckSummary struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Path       string `json:"path"`
	SlideCount int    `json:"slide_count"`
}

// Path returns the route the deck is served at
func (d *Deck) Path() string {
	return "/" + d.Slug
}

// SlideCount returns the number of slides including the title slide
func (d *Deck) SlideCount() int {
	return len(d.Slides) + 1
}

// Summary returns the listing form of the deck
func (d *Deck) Summary() DeckSummary {
	return DeckSummary{
		Slug:       d.Slug,
		Name:       d.Name,
		Title:      d.Title.Heading,
		Path:       d.Path(),
		SlideCount: d.SlideCount(),
	}
}

// String returns the bullet as plain text, lead phrase included
func (b Bullet) String() string {
	if b.Lead == "" {
		return b.Text
	}
	return b.Lead + " " + b.Text
}

// TitleBand returns the class tokens of a slide's title band
func (t Theme) TitleBand() string {
	return fmt.Sprintf("bg-gradient-to-r from-%s-800 to-%s-600 text-white p-6 rounded-t-lg", t.Accent, t.Accent)
}

// TitleSlide returns the class tokens of the opening banner
func (t Theme) TitleSlide() string {
	return fmt.Sprintf("bg-gradient-to-r from-%s-900 to-%s-600 text-white p-8 rounded-lg shadow-lg mb-8 text-center", t.Accent, t.Accent)
}

// Heading returns the class tokens of section headings
func (t Theme) Heading() string {
	return fmt.Sprintf("text-lg font-bold text-%s-700 mb-3", t.Accent)
}

// Marker returns the class tokens of the bullet marker
func (t Theme) Marker() string {
	return fmt.Sprintf("text-%s-600 font-bold mr-2 mt-1", t.Accent)
}

// Panel returns the class tokens of the tinted timeline panel
func (t Theme) Panel() string {
	return fmt.Sprintf("bg-%s-50 p-4 rounded-lg", t.Accent)
}

// Quote returns the class tokens of an emphasized closing quote
func (t Theme) Quote() string {
	return fmt.Sprintf("mt-2 text-center text-%s-700 italic", t.Accent)
}
