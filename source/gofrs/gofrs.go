package gofrs

import (
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"
	"github.com/viant/crossuuid/source"
)

// Name is the registered source name
const Name = "gofrs"

// Source delegates to github.com/gofrs/uuid
type Source struct {
	generator uuid.Generator
}

// Name returns source name
func (s *Source) Name() string { return Name }

// Read copies a new version 4 UUID into dst
func (s *Source) Read(dst *[source.Size]byte) error {
	id, err := s.generator.NewV4()
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	*dst = id
	return nil
}

// Option represents gofrs source option
type Option func(s *Source)

// WithReader sets the randomness reader
func WithReader(reader io.Reader) Option {
	return func(s *Source) {
		s.generator = uuid.NewGenWithOptions(uuid.WithRandomReader(reader))
	}
}

// New creates a gofrs source
func New(options ...Option) *Source {
	ret := &Source{generator: uuid.DefaultGenerator}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func init() {
	source.Register(Name, func() source.Source { return New() })
}
