package dataset

import (
	"net/http"
	"time"
)

const (
	defaultTableCacheSize = 4
	defaultViewCacheSize  = 512
	defaultFetchTimeout   = 60 * time.Second
)

type Config struct {
	// Source is an http(s) URL or a local path to the trip CSV.
	Source string
	// RefreshInterval re-reads a remote source periodically. Zero disables it;
	// local files are never refreshed automatically.
	RefreshInterval time.Duration
	TableCacheSize  int
	ViewCacheSize   int
	FetchTimeout    time.Duration
	HTTPClient      *http.Client
	// Mirror, when set, receives a copy of every table loaded.
	Mirror Mirror
}

func (c Config) withDefaults() Config {
	if c.TableCacheSize <= 0 {
		c.TableCacheSize = defaultTableCacheSize
	}
	if c.ViewCacheSize <= 0 {
		c.ViewCacheSize = defaultViewCacheSize
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultFetchTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.FetchTimeout}
	}
	return c
}
