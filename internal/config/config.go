// Package config provides configuration management for go-grantdecks.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Default web settings
	DefaultWebPort         = 11980
	DefaultWebSSLPort      = 19443
	DefaultShutdownTimeout = 10 * time.Second
	DefaultReadTimeout     = 15 * time.Second
)

var (
	ErrInvalidPort = errors.New("invalid port")
	ErrMissingCert = errors.New("SSL enabled but cert_file or key_file not specified in config")
)

// DefaultTrustedProxies covers common reverse proxy setups (nginx on localhost or a private network)
var DefaultTrustedProxies = []string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}

// MainConfig holds the main configuration for go-grantdecks
type MainConfig struct {
	// Web interface settings
	Web *WebConfig `json:"web"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration.
// Environment variables override defaults; command-line flags override both.
type WebConfig struct {
	ListenPort      int           `json:"listen_port" env:"GRANTDECKS_WEB_PORT"`
	SSL             bool          `json:"ssl" env:"GRANTDECKS_WEB_SSL"`
	CertFile        string        `json:"cert_file,omitempty" env:"GRANTDECKS_WEB_CERT_FILE"`
	KeyFile         string        `json:"key_file,omitempty" env:"GRANTDECKS_WEB_KEY_FILE"`
	Debug           bool          `json:"debug" env:"GRANTDECKS_WEB_DEBUG"` // gin debug mode and verbose logging
	AccessLog       bool          `json:"access_log" env:"GRANTDECKS_WEB_ACCESS_LOG"`
	TrustedProxies  []string      `json:"trusted_proxies" env:"GRANTDECKS_TRUSTED_PROXIES" envSeparator:","`
	PprofAddr       string        `json:"pprof_addr,omitempty" env:"GRANTDECKS_PPROF_ADDR"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"GRANTDECKS_SHUTDOWN_TIMEOUT"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	proxies := make([]string, len(DefaultTrustedProxies))
	copy(proxies, DefaultTrustedProxies)

	maincfg := &MainConfig{
		AppVersion: AppVersion,
		Web: &WebConfig{
			ListenPort:      DefaultWebPort,
			SSL:             false,
			TrustedProxies:  proxies,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
	log.Printf("MainConfig initialized (version: %s)", maincfg.AppVersion)
	return maincfg
}

// ApplyEnv overrides fields from GRANTDECKS_* environment variables.
// Unset variables leave the current value untouched.
func (c *WebConfig) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the web configuration before the server starts
func (c *WebConfig) Validate() error {
	if c.ListenPort < 1024 || c.ListenPort > 65535 {
		return fmt.Errorf("%w: %d (must be between 1024 and 65535)", ErrInvalidPort, c.ListenPort)
	}
	if c.SSL && (c.CertFile == "" || c.KeyFile == "") {
		return ErrMissingCert
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	return nil
}

// Protocol returns the URL scheme the server listens with
func (c *WebConfig) Protocol() string {
	if c.SSL {
		return "https"
	}
	return "http"
}
