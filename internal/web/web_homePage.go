// Package web provides the HTTP server and web interface for go-grantdecks
package web

import (
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-grantdecks/internal/decks"
	"github.com/go-while/go-grantdecks/internal/models"
	"github.com/go-while/go-grantdecks/internal/render"
)

// homePage handles "/": instructions plus links to every deck, no deck content
func (s *WebServer) homePage(c *gin.Context) {
	data := s.Renderer.BuildHome(s.getBaseTemplateData(render.HomeTitle), decks.Summaries(),
		func(d models.DeckSummary) string { return d.Path })

	s.renderPage(c, func(c *gin.Context) error {
		return s.Renderer.Home(c.Writer, data)
	})
}
