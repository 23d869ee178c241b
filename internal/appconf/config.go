package appconf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultDataURL is the trip extract used when no source is configured.
const DefaultDataURL = "testdata/trips.csv"

// Config holds all the configuration settings for the server.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	// ExemptKeys are API keys that bypass rate limiting.
	ExemptKeys []string
	// DataURL is an http(s) URL or a local path to the trip CSV.
	DataURL string
	// RefreshInterval re-reads a remote DataURL periodically. Zero disables it.
	RefreshInterval time.Duration
	// DBPath enables the SQLite mirror when non-empty.
	DBPath string
}

// Defaults returns the configuration used when no flag or file sets a value.
func Defaults() Config {
	return Config{
		Port:      4000,
		Env:       Development,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
		DataURL:   DefaultDataURL,
	}
}

// File mirrors the YAML configuration file. Zero values leave the
// corresponding setting untouched.
type File struct {
	Port       int      `yaml:"port" validate:"omitempty,gt=0,lte=65535"`
	Env        string   `yaml:"env" validate:"omitempty,oneof=development test production"`
	ApiKeys    []string `yaml:"apiKeys" validate:"omitempty,dive,required"`
	ExemptKeys []string `yaml:"exemptKeys" validate:"omitempty,dive,required"`
	RateLimit  *int     `yaml:"rateLimit" validate:"omitempty,gte=0"`
	DataURL    string   `yaml:"dataURL"`
	DBPath     string   `yaml:"db"`

	// RefreshInterval is a Go duration string, e.g. "15m".
	RefreshInterval time.Duration `yaml:"refreshInterval" validate:"omitempty,gte=0"`
}

var validate = validator.New()

// LoadFile reads and validates a YAML configuration file.
func LoadFile(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if err := validate.Struct(f); err != nil {
		return f, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return f, nil
}

// Apply copies the values set in f onto cfg, except for settings whose
// flag names appear in explicit. Flags given on the command line win.
func (f File) Apply(cfg *Config, explicit map[string]bool) {
	if f.Port != 0 && !explicit["port"] {
		cfg.Port = f.Port
	}
	if f.Env != "" && !explicit["env"] {
		cfg.Env = EnvFlagToEnvironment(f.Env)
	}
	if len(f.ApiKeys) > 0 && !explicit["api-keys"] {
		cfg.ApiKeys = trimAll(f.ApiKeys)
	}
	if len(f.ExemptKeys) > 0 {
		cfg.ExemptKeys = trimAll(f.ExemptKeys)
	}
	if f.RateLimit != nil && !explicit["rate-limit"] {
		cfg.RateLimit = *f.RateLimit
	}
	if f.DataURL != "" && !explicit["data-url"] {
		cfg.DataURL = f.DataURL
	}
	if f.RefreshInterval != 0 && !explicit["refresh-interval"] {
		cfg.RefreshInterval = f.RefreshInterval
	}
	if f.DBPath != "" && !explicit["db"] {
		cfg.DBPath = f.DBPath
	}
}

// SplitKeys parses a comma separated key list, dropping blanks.
func SplitKeys(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return trimAll(strings.Split(s, ","))
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
