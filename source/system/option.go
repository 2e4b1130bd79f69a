package system

import "github.com/viant/afs"

// Option represents system source option
type Option func(s *Source)

// WithURL sets the location of the UUID facility
func WithURL(URL string) Option {
	return func(s *Source) {
		if URL != "" {
			s.URL = URL
		}
	}
}

// WithFs sets the file system service
func WithFs(fs afs.Service) Option {
	return func(s *Source) {
		s.fs = fs
	}
}
