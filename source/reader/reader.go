package reader

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/viant/crossuuid/source"
)

// Name is the registered source name
const Name = "random"

// Source reads identifier bytes straight from an io.Reader
type Source struct {
	reader io.Reader
}

// Name returns source name
func (s *Source) Name() string { return Name }

// Read fills dst from the reader, a short read is an error
func (s *Source) Read(dst *[source.Size]byte) error {
	if _, err := io.ReadFull(s.reader, dst[:]); err != nil {
		return fmt.Errorf("failed to read %d bytes: %w", source.Size, err)
	}
	return nil
}

// New creates a reader source, crypto/rand is used when reader is nil
func New(reader io.Reader) *Source {
	if reader == nil {
		reader = rand.Reader
	}
	return &Source{reader: reader}
}

func init() {
	source.Register(Name, func() source.Source { return New(nil) })
}
