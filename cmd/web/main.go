// Web server for the grant slide decks
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	prof "github.com/go-while/go-cpu-mem-profiler"
	"github.com/go-while/go-grantdecks/internal/config"
	"github.com/go-while/go-grantdecks/internal/web"
)

var (
	// command-line flags
	webport        int
	webssl         bool
	webcertFile    string
	webkeyFile     string
	webdebug       bool
	accessLog      bool
	trustedProxies string
	pprofAddr      string
)

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.IntVar(&webport, "webport", 0, "Web server port (default: 11980 (no ssl) or 19443 (webssl))")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.BoolVar(&webdebug, "webdebug", false, "Enable gin debug mode and verbose request logging")
	flag.BoolVar(&accessLog, "accesslog", false, "Write an Apache combined format access log to stderr")
	flag.StringVar(&trustedProxies, "trustedproxies", "", "Comma separated reverse proxy IPs/CIDRs (default: localhost and private networks)")
	flag.StringVar(&pprofAddr, "pprof", "", "Serve the pprof profiler web UI on this address, e.g. 127.0.0.1:51111 (default: off)")
	flag.Parse()

	log.Printf("Starting go-grantdecks: Web Server (version: %s)", appVersion)

	mainConfig := config.NewDefaultConfig()
	webConfig := mainConfig.Web

	// Environment overrides defaults, flags override environment
	if err := webConfig.ApplyEnv(); err != nil {
		log.Fatalf("[WEB]: Error loading environment: %v", err)
	}

	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	} else if webssl && webConfig.ListenPort == config.DefaultWebPort {
		webConfig.ListenPort = config.DefaultWebSSLPort
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
		log.Printf("[WEB]: SSL cert file set: %s", webConfig.CertFile)
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
		log.Printf("[WEB]: SSL key file set: %s", webConfig.KeyFile)
	}
	if webdebug {
		webConfig.Debug = true
	}
	if accessLog {
		webConfig.AccessLog = true
	}
	if trustedProxies != "" {
		webConfig.TrustedProxies = splitList(trustedProxies)
	}
	if pprofAddr != "" {
		webConfig.PprofAddr = pprofAddr
	}

	if err := webConfig.Validate(); err != nil {
		log.Fatalf("[WEB]: Invalid configuration: %v", err)
	}
	log.Printf("[WEB]: Using WEB configuration: %#v", webConfig)

	if webConfig.PprofAddr != "" {
		log.Printf("[WEB]: Starting profiler web UI on %s", webConfig.PprofAddr)
		profiler := prof.NewProf()
		go profiler.PprofWeb(webConfig.PprofAddr)
	}

	server, err := web.NewServer(webConfig)
	if err != nil {
		log.Fatalf("[WEB]: Failed to create web server: %v", err)
	}
	if webConfig.Debug {
		if files, err := web.ListEmbeddedFiles(); err == nil {
			log.Printf("[WEB]: Embedded static files: %v", files)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[WEB]: Starting go-grantdecks web server on %s://localhost:%d", webConfig.Protocol(), server.GetPort())

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	select {
	case <-ctx.Done():
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), webConfig.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WEB]: Error during shutdown: %v", err)
	}
	log.Printf("[WEB]: Graceful shutdown completed")
} // end main

// splitList splits a comma separated flag value, dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
