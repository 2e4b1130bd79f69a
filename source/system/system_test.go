package system

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/crossuuid/source"
)

func TestSource_Read(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	testCases := []struct {
		description string
		URL         string
		content     string
		expected    [source.Size]byte
		expectErr   bool
	}{
		{
			description: "kernel uuid with trailing new line",
			URL:         "mem://localhost/proc/uuid-valid",
			content:     "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9\n",
			expected:    [source.Size]byte{0x0a, 0x1b, 0x2c, 0x3d, 0x4e, 0x5f, 0x60, 0x71, 0x82, 0x93, 0xa4, 0xb5, 0xc6, 0xd7, 0xe8, 0xf9},
		},
		{
			description: "garbled facility output",
			URL:         "mem://localhost/proc/uuid-garbled",
			content:     "not a uuid",
			expectErr:   true,
		},
		{
			description: "missing facility",
			URL:         "mem://localhost/proc/uuid-missing",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		if testCase.content != "" {
			err := fs.Upload(ctx, testCase.URL, file.DefaultFileOsMode, strings.NewReader(testCase.content))
			if !assert.NoError(t, err, testCase.description) {
				continue
			}
		}
		src := New(WithFs(fs), WithURL(testCase.URL))
		assert.Equal(t, Name, src.Name())
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

func TestNew_Defaults(t *testing.T) {
	src := New(WithURL(""))
	assert.Equal(t, DefaultURL, src.URL)

	registered, err := source.Lookup(Name)
	assert.NoError(t, err)
	assert.Equal(t, Name, registered.Name())
}
