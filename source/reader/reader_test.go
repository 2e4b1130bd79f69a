package reader

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/crossuuid/source"
)

func TestSource_Read(t *testing.T) {
	testCases := []struct {
		description string
		input       []byte
		expected    [source.Size]byte
		expectErr   bool
	}{
		{
			description: "exact read",
			input:       []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
			expected:    [source.Size]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		},
		{
			description: "extra input left unread",
			input:       bytes.Repeat([]byte{0xab}, 20),
			expected:    [source.Size]byte{0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab},
		},
		{
			description: "short read",
			input:       []byte{1, 2},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		src := New(bytes.NewReader(testCase.input))
		var actual [source.Size]byte
		err := src.Read(&actual)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expected, actual, testCase.description)
	}
}

func TestNew_Default(t *testing.T) {
	src := New(nil)
	assert.Equal(t, Name, src.Name())
	var dst [source.Size]byte
	assert.NoError(t, src.Read(&dst))
}
