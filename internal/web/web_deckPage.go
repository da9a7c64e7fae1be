package web

import (
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-grantdecks/internal/decks"
)

// deckPage returns the handler for one deck route.
// The deck is built per request so nothing is shared between requests.
func (s *WebServer) deckPage(route decks.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		deck := route.Build()
		data := s.Renderer.BuildDeck(s.getBaseTemplateData(deck.Title.Heading), deck)

		s.renderPage(c, func(c *gin.Context) error {
			return s.Renderer.Deck(c.Writer, data)
		})
	}
}
