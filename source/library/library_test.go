package library

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/crossuuid/source"
)

func TestSource_Read(t *testing.T) {
	src := New()
	assert.Equal(t, Name, src.Name())
	var first, second [source.Size]byte
	assert.NoError(t, src.Read(&first))
	assert.NoError(t, src.Read(&second))
	assert.NotEqual(t, first, second)
}

func TestSource_WithReader(t *testing.T) {
	src := New(WithReader(bytes.NewReader(make([]byte, source.Size))))
	var actual [source.Size]byte
	assert.NoError(t, src.Read(&actual))
	assert.Equal(t, [source.Size]byte{6: 0x40, 8: 0x80}, actual)

	var dst [source.Size]byte
	err := New(WithReader(bytes.NewReader(nil))).Read(&dst)
	assert.Error(t, err)
}
