package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/crossuuid"
	"github.com/viant/crossuuid/source"
	"github.com/viant/crossuuid/source/system"
	"gopkg.in/yaml.v3"

	_ "github.com/viant/crossuuid/source/gofrs"
	_ "github.com/viant/crossuuid/source/guid"
	_ "github.com/viant/crossuuid/source/library"
	_ "github.com/viant/crossuuid/source/reader"
)

// Config is a serialisable representation of the generator and CLI settings.
// The zero value of Source selects the platform default source.
type Config struct {
	Source       string `json:"source,omitempty" yaml:"source,omitempty"`
	Strict       bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
	ZeroFallback bool   `json:"zeroFallback,omitempty" yaml:"zeroFallback,omitempty"`
	Count        int    `json:"count,omitempty" yaml:"count,omitempty"`
	SystemURL    string `json:"systemURL,omitempty" yaml:"systemURL,omitempty"`
}

// DefaultConfig returns a Config populated with default values
func DefaultConfig() *Config {
	return &Config{
		Count:     1,
		SystemURL: system.DefaultURL,
	}
}

// Validate returns an error describing the first invalid setting or nil
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Count <= 0 {
		return fmt.Errorf("count must be > 0")
	}
	if c.Source == "" {
		return nil
	}
	for _, name := range source.Names() {
		if name == c.Source {
			return nil
		}
	}
	return fmt.Errorf("unsupported source: %q, available: %v", c.Source, source.Names())
}

// NewSource creates the configured source, nil means the platform default
func (c *Config) NewSource() (source.Source, error) {
	switch c.Source {
	case "":
		return nil, nil
	case system.Name:
		return system.New(system.WithURL(c.SystemURL)), nil
	}
	return source.Lookup(c.Source)
}

// Options returns generator options for the configuration
func (c *Config) Options() ([]crossuuid.Option, error) {
	var options []crossuuid.Option
	src, err := c.NewSource()
	if err != nil {
		return nil, err
	}
	if src != nil {
		options = append(options, crossuuid.WithSource(src))
	}
	if c.ZeroFallback {
		options = append(options, crossuuid.WithZeroFallback(true))
	}
	return options, nil
}

// NewGenerator creates a generator for the configuration
func (c *Config) NewGenerator() (*crossuuid.Generator, error) {
	options, err := c.Options()
	if err != nil {
		return nil, err
	}
	return crossuuid.NewGenerator(options...), nil
}

// Decode decodes YAML on top of the defaults
func Decode(data []byte) (*Config, error) {
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return ret, nil
}

// Load loads YAML config from URL, an empty URL returns defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if URL == "" {
		return DefaultConfig(), nil
	}
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	ret, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return ret, nil
}
