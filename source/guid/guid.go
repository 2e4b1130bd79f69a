package guid

import (
	"encoding/binary"
	"fmt"

	"github.com/viant/crossuuid/source"
)

// Name is the registered source name
const Name = "guid"

// GUID represents the structured 128 bit value returned by the OS GUID facility
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Put writes Data1, Data2 and Data3 big-endian followed by Data4 as is
func (g GUID) Put(dst *[source.Size]byte) {
	binary.BigEndian.PutUint32(dst[0:4], g.Data1)
	binary.BigEndian.PutUint16(dst[4:6], g.Data2)
	binary.BigEndian.PutUint16(dst[6:8], g.Data3)
	copy(dst[8:16], g.Data4[:])
}

// FromBytes splits 16 bytes into GUID fields, it reverses Put
func FromBytes(data [source.Size]byte) GUID {
	ret := GUID{
		Data1: binary.BigEndian.Uint32(data[0:4]),
		Data2: binary.BigEndian.Uint16(data[4:6]),
		Data3: binary.BigEndian.Uint16(data[6:8]),
	}
	copy(ret.Data4[:], data[8:16])
	return ret
}

// Source serialises GUIDs created by a generator function
type Source struct {
	generate func() (GUID, error)
}

// Name returns source name
func (s *Source) Name() string { return Name }

// Read fills dst with a new GUID
func (s *Source) Read(dst *[source.Size]byte) error {
	id, err := s.generate()
	if err != nil {
		return fmt.Errorf("failed to create guid: %w", err)
	}
	id.Put(dst)
	return nil
}

// Option represents guid source option
type Option func(s *Source)

// WithGenerator replaces the platform GUID facility
func WithGenerator(fn func() (GUID, error)) Option {
	return func(s *Source) {
		s.generate = fn
	}
}

// New creates a guid source backed by the platform GUID facility
func New(options ...Option) *Source {
	ret := &Source{generate: generateGUID}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func init() {
	source.Register(Name, func() source.Source { return New() })
}
