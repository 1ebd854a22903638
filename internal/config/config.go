// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON config file, and
// environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// BaseURL is the origin the admin API client issues requests
	// against. Empty means same-origin relative requests (behind a
	// fronting proxy).
	BaseURL string

	// SessionFile is the path of the persisted session credentials.
	SessionFile string

	// Addr is the listen address of the development server (ip:port).
	Addr string

	// Config is the path to the config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// buildMode is set via ldflags. A "production" build gets no local
// base-URL fallback: requests go through the same-origin proxy.
var buildMode string

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.BaseURL, "url", "", "admin API base URL")
	flag.StringVar(&options.SessionFile, "session", "session.json", "path to persisted session file")
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, config file, and environment
// variables to set configuration values. Resolution happens once at
// process start; later env changes are not observed.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if apiURL := os.Getenv("SHOPADMIN_API_URL"); apiURL != "" {
		options.BaseURL = apiURL
	}
	if sessionFile := os.Getenv("SHOPADMIN_SESSION_FILE"); sessionFile != "" {
		options.SessionFile = sessionFile
	}
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}

	options.BaseURL = resolveBaseURL(options.BaseURL, buildMode)

	return options
}

// resolveBaseURL applies the build-mode fallback: development builds
// default to the local server, production builds to same-origin.
func resolveBaseURL(configured, mode string) string {
	if configured != "" {
		return configured
	}
	if mode == "production" {
		return ""
	}
	return "http://localhost:8080"
}
