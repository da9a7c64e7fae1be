// Package web provides the HTTP server and web interface for go-grantdecks
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-grantdecks/internal/config"
	"github.com/go-while/go-grantdecks/internal/decks"
	"github.com/go-while/go-grantdecks/internal/render"
	"golang.org/x/text/language"
)

// WebServer represents the web server
type WebServer struct {
	Router    *gin.Engine
	Config    *config.WebConfig
	Renderer  *render.Renderer
	StartTime time.Time // Track server start time for uptime calculations
	server    *http.Server
}

// NewServer creates a new web server instance
func NewServer(webconfig *config.WebConfig) (*WebServer, error) {
	if webconfig.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := render.New(language.English)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if webconfig.AccessLog {
		router.Use(ApacheLogFormat())
	}

	// Configure Gin to trust reverse proxy headers
	if err := router.SetTrustedProxies(webconfig.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	s := &WebServer{
		Router:    router,
		Config:    webconfig,
		Renderer:  renderer,
		StartTime: time.Now(),
	}

	// Add reverse proxy middleware for handling X-Forwarded headers
	router.Use(s.ReverseProxyMiddleware())

	s.setupRoutes()
	return s, nil
}

// setupRoutes configures all HTTP routes.
// Only "/" and the deck paths are pages; every other path redirects home.
func (s *WebServer) setupRoutes() {
	pageMethods := []string{http.MethodGet, http.MethodHead}

	// Static files first
	s.Router.Match(pageMethods, "/static/*filepath", EmbeddedStaticHandler("/static"))
	s.Router.Match(pageMethods, "/robots.txt", EmbeddedFileHandler("static/robots.txt"))
	s.Router.Match(pageMethods, "/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Read-only JSON view of the deck content
	api := s.Router.Group("/api/v1")
	{
		api.GET("/decks", s.listDecks)
		api.GET("/decks/:slug", s.getDeck)
		api.GET("/stats", s.getStats)
	}

	s.Router.Match(pageMethods, "/", s.homePage)
	for _, route := range decks.Routes() {
		s.Router.Match(pageMethods, route.Path(), s.deckPage(route))
	}

	s.Router.NoRoute(s.redirectHome)
	s.Router.NoMethod(s.redirectHome)
}

// Handler returns the http.Handler serving all routes
func (s *WebServer) Handler() http.Handler {
	return s.Router
}

// Start starts the web server with SSL support if configured.
// It blocks until the server stops and returns http.ErrServerClosed after Shutdown.
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.ListenPort)
	s.StartTime = time.Now()
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: config.DefaultReadTimeout,
	}
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return config.ErrMissingCert
		}
		log.Printf("[WEB]: Starting HTTPS server on %s", addr)
		return s.server.ListenAndServeTLS(s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("[WEB]: Starting HTTP server on %s", addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops a started server
func (s *WebServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a reverse proxy
func (s *WebServer) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Handle X-Forwarded-Proto to detect if the original request was HTTPS
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}

		// Handle X-Forwarded-Host to get the original host
		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = strings.TrimSpace(strings.Split(host, ",")[0])
		}

		c.Next()
	}
}

// ApacheLogFormat logs requests in Apache combined log format
func ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
