//go:build !linux && !windows

package crossuuid

import (
	"github.com/viant/crossuuid/source"
	"github.com/viant/crossuuid/source/library"
)

func defaultSource() source.Source {
	return library.New()
}
