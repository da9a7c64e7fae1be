// Package web provides the HTTP server and web interface for go-grantdecks
package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-grantdecks/internal/config"
	"github.com/go-while/go-grantdecks/internal/decks"
)

// listDecks handles "/api/v1/decks" and returns every deck summary in home page order
func (s *WebServer) listDecks(c *gin.Context) {
	summaries := decks.Summaries()
	c.JSON(http.StatusOK, gin.H{
		"decks": summaries,
		"count": len(summaries),
	})
}

// getDeck handles "/api/v1/decks/:slug" and returns the full deck content
func (s *WebServer) getDeck(c *gin.Context) {
	deck, err := decks.Lookup(c.Param("slug"))
	if err != nil {
		if errors.Is(err, decks.ErrUnknownDeck) {
			c.JSON(http.StatusNotFound, gin.H{"error": "The requested deck does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deck)
}

// getStats handles "/api/v1/stats"
func (s *WebServer) getStats(c *gin.Context) {
	totalSlides := 0
	summaries := decks.Summaries()
	for _, d := range summaries {
		totalSlides += d.SlideCount
	}
	c.JSON(http.StatusOK, gin.H{
		"version":      config.AppVersion,
		"uptime":       time.Since(s.StartTime).Truncate(time.Second).String(),
		"total_decks":  len(summaries),
		"total_slides": totalSlides,
	})
}
