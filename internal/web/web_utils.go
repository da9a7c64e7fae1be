// Package web provides the HTTP server and web interface for go-grantdecks
package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-while/go-grantdecks/internal/config"
	"github.com/go-while/go-grantdecks/internal/render"
)

// GetPort returns the listening port from the config
func (s *WebServer) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates the page data shared by all page handlers
func (s *WebServer) getBaseTemplateData(title string) render.PageData {
	return render.PageData{
		Title:      title,
		AppVersion: config.AppVersion,
	}
}

// renderPage writes a 200 HTML page, falling back to the error page if rendering fails
func (s *WebServer) renderPage(c *gin.Context, fn func(c *gin.Context) error) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := fn(c); err != nil {
		s.renderError(c, http.StatusInternalServerError, "Template error", err.Error())
	}
}

// renderError renders an error page
func (s *WebServer) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	log.Printf("[WEB]: Error %d: %s - %s", statusCode, message, errstring)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(statusCode)
	err := s.Renderer.Error(c.Writer, render.ErrorData{
		PageData:   s.getBaseTemplateData("Error"),
		StatusCode: statusCode,
		Error:      message,
	})
	if err != nil {
		log.Printf("[WEB]: Error rendering error page: %v", err)
		c.String(statusCode, "%d %s", statusCode, message)
	}
}

// redirectHome sends unknown paths to "/". A redirect response never gets its
// own history entry, so the back button does not return to the invalid path.
func (s *WebServer) redirectHome(c *gin.Context) {
	if s.Config.Debug {
		log.Printf("[WEB]: Redirecting unknown path %s %s to /", c.Request.Method, c.Request.URL.Path)
	}
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}
