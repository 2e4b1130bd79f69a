package crossuuid

import (
	"fmt"
	"log"

	"github.com/viant/crossuuid/source"
)

// Generator produces UUIDs from an identifier source
type Generator struct {
	source       source.Source
	zeroFallback bool
	logger       *log.Logger
}

// Source returns the identifier source
func (g *Generator) Source() source.Source {
	return g.source
}

// Generate returns a new UUID. When the source fails the zero UUID is returned together
// with an error wrapping ErrSourceUnavailable, unless the generator was created
// WithZeroFallback(true), in which case the failure is only logged.
func (g *Generator) Generate() (UUID, error) {
	var u UUID
	err := g.GenerateInto(&u)
	return u, err
}

// GenerateInto fills u with a new identifier. u is cleared when the source fails.
func (g *Generator) GenerateInto(u *UUID) error {
	if u == nil {
		return fmt.Errorf("%w: nil UUID", ErrInvalidInput)
	}
	if err := g.source.Read((*[Size]byte)(u)); err != nil {
		u.Clear()
		if g.zeroFallback {
			g.logger.Printf("crossuuid: %v source failed, using zero UUID: %v", g.source.Name(), err)
			return nil
		}
		return fmt.Errorf("%w: %v: %w", ErrSourceUnavailable, g.source.Name(), err)
	}
	return nil
}

// NewGenerator creates a generator, the platform default source is used unless WithSource is given
func NewGenerator(options ...Option) *Generator {
	g := &Generator{logger: log.Default()}
	for _, option := range options {
		option(g)
	}
	if g.source == nil {
		g.source = defaultSource()
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate returns a new UUID from the platform default source
func Generate() (UUID, error) {
	return defaultGenerator.Generate()
}

// New returns a new UUID from the platform default source or panics
func New() UUID {
	u, err := defaultGenerator.Generate()
	if err != nil {
		panic(err)
	}
	return u
}
