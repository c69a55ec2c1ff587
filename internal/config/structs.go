package config

import (
	"time"

	"github.com/gojira/gojira/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic bool    // enable static file browsing (for development purposes only)
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	// URL is the public base url of the site.
	URL          string  `validate:"required,url"`
	LoginURL     string  // login page, relative or absolute
	Session      Session // session settings
}
