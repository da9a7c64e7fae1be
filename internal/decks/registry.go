// Package decks holds the literal content of every grant slide deck
package decks

import (
	"errors"
	"fmt"

	"github.com/go-while/go-grantdecks/internal/models"
)

const (
	SlugK99R00           = "k99r00"
	SlugNSFCareer        = "nsf-career"
	SlugMcKnightScholars = "mcknight-scholars"
)

var ErrUnknownDeck = errors.New("unknown deck")

// Route binds a slug to the constructor of its deck
type Route struct {
	Slug  string
	Build func() *models.Deck
}

// Path returns the URL path the route is served at
func (r Route) Path() string {
	return "/" + r.Slug
}

// routes is the registry in home page order
var routes = []Route{
	{Slug: SlugK99R00, Build: K99R00},
	{Slug: SlugNSFCareer, Build: NSFCareer},
	{Slug: SlugMcKnightScholars, Build: McKnightScholars},
}

// Routes returns a copy of the registered routes
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// All builds every deck in registry order
func All() []*models.Deck {
	out := make([]*models.Deck, 0, len(routes))
	for _, r := range routes {
		out = append(out, r.Build())
	}
	return out
}

// Lookup builds the deck registered under slug
func Lookup(slug string) (*models.Deck, error) {
	for _, r := range routes {
		if r.Slug == slug {
			return r.Build(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDeck, slug)
}

// Summaries returns the listing form of every deck in registry order
func Summaries() []models.DeckSummary {
	out := make([]models.DeckSummary, 0, len(routes))
	for _, d := range All() {
		out = append(out, d.Summary())
	}
	return out
}
