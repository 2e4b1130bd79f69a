package library

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/viant/crossuuid/source"
)

// Name is the registered source name
const Name = "library"

// Source delegates to github.com/google/uuid
type Source struct {
	reader io.Reader
}

// Name returns source name
func (s *Source) Name() string { return Name }

// Read copies a new random UUID into dst
func (s *Source) Read(dst *[source.Size]byte) error {
	var id uuid.UUID
	var err error
	if s.reader != nil {
		id, err = uuid.NewRandomFromReader(s.reader)
	} else {
		id, err = uuid.NewRandom()
	}
	if err != nil {
		return fmt.Errorf("failed to generate uuid: %w", err)
	}
	*dst = id
	return nil
}

// Option represents library source option
type Option func(s *Source)

// WithReader sets the randomness reader, crypto/rand is used by default
func WithReader(reader io.Reader) Option {
	return func(s *Source) {
		s.reader = reader
	}
}

// New creates a library source
func New(options ...Option) *Source {
	ret := &Source{}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func init() {
	source.Register(Name, func() source.Source { return New() })
}
