//go:build windows

package crossuuid

import (
	"github.com/viant/crossuuid/source"
	"github.com/viant/crossuuid/source/guid"
)

func defaultSource() source.Source {
	return guid.New()
}
