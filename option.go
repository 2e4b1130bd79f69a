package crossuuid

import (
	"log"

	"github.com/viant/crossuuid/source"
)

// Option represents generator option
type Option func(g *Generator)

// WithSource sets the identifier source
func WithSource(src source.Source) Option {
	return func(g *Generator) {
		g.source = src
	}
}

// WithZeroFallback restores the legacy failure policy: a failed source yields the zero UUID
// and no error. The zero UUID is then indistinguishable from a cleared one.
func WithZeroFallback(enabled bool) Option {
	return func(g *Generator) {
		g.zeroFallback = enabled
	}
}

// WithLogger sets the logger used to report source failures in zero fallback mode
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}
