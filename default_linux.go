//go:build linux

package crossuuid

import (
	"github.com/viant/crossuuid/source"
	"github.com/viant/crossuuid/source/system"
)

func defaultSource() source.Source {
	return system.New()
}
