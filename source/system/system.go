package system

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/crossuuid/source"
)

const (
	// Name is the registered source name
	Name = "system"
	// DefaultURL is the kernel UUID facility
	DefaultURL = "file:///proc/sys/kernel/random/uuid"
)

// Source reads the UUID the operating system creates on each read of URL
type Source struct {
	fs  afs.Service
	URL string
}

// Name returns source name
func (s *Source) Name() string { return Name }

// Read fills dst with the system UUID, field boundaries (4, 2, 2, 8 bytes) are copied as is
func (s *Source) Read(dst *[source.Size]byte) error {
	data, err := s.fs.DownloadWithURL(context.Background(), s.URL)
	if err != nil {
		return fmt.Errorf("failed to read system uuid from %s: %w", s.URL, err)
	}
	id, err := uuid.ParseBytes(bytes.TrimSpace(data))
	if err != nil {
		return fmt.Errorf("failed to decode system uuid from %s: %w", s.URL, err)
	}
	copy(dst[0:4], id[0:4])
	copy(dst[4:6], id[4:6])
	copy(dst[6:8], id[6:8])
	copy(dst[8:16], id[8:16])
	return nil
}

// New creates a system source
func New(options ...Option) *Source {
	ret := &Source{URL: DefaultURL}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

func init() {
	source.Register(Name, func() source.Source { return New() })
}
